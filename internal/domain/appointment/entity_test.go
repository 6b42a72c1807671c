//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"barbershop-booking/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetails() appointment.Details {
	return appointment.Details{
		CustomerName:       "Juan Pérez",
		Email:              "juan@example.com",
		Phone:              "+57 300 123 4567",
		ServiceDescription: "Haircut + Beard Trim",
		Date:               "2025-11-20",
		Time:               "10:30",
		ProfessionalName:   "Carlos Rodríguez",
		Price:              32000,
	}
}

func TestNewAppointment(t *testing.T) {
	now := time.Date(2025, 11, 18, 9, 0, 0, 0, time.UTC)

	t.Run("starts pending", func(t *testing.T) {
		a, err := appointment.NewAppointment(newDetails(), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, appointment.StatePending, a.State())
		assert.Equal(t, now, a.CreatedAt())
		assert.Equal(t, now, a.UpdatedAt())
		assert.Equal(t, newDetails(), a.Details())
		assert.Equal(t, "Juan Pérez", a.CustomerName())
		assert.Equal(t, 32000, a.Price())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		d := newDetails()
		d.Price = 0
		_, err := appointment.NewAppointment(d, now)
		assert.NoError(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		d := newDetails()
		d.Price = -1
		_, err := appointment.NewAppointment(d, now)
		assert.ErrorIs(t, err, appointment.ErrNegativePrice)
	})
}

func TestAppointmentLifecycle(t *testing.T) {
	created := time.Date(2025, 11, 18, 9, 0, 0, 0, time.UTC)

	t.Run("happy path", func(t *testing.T) {
		a, err := appointment.NewAppointment(newDetails(), created)
		require.NoError(t, err)

		confirmed, err := a.Confirm(created.Add(time.Minute))
		require.NoError(t, err)
		started, err := confirmed.Start(created.Add(time.Hour))
		require.NoError(t, err)
		finished, err := started.Finish(created.Add(2 * time.Hour))
		require.NoError(t, err)

		assert.Equal(t, appointment.StateFinished, finished.State())
		assert.Equal(t, created.Add(2*time.Hour), finished.UpdatedAt())
		assert.Equal(t, created, finished.CreatedAt())
		assert.Equal(t, a.ID(), finished.ID())
		assert.Empty(t, finished.AllowedActions())
	})

	t.Run("transition returns a new value", func(t *testing.T) {
		a, err := appointment.NewAppointment(newDetails(), created)
		require.NoError(t, err)

		confirmed, err := a.Apply(appointment.ActionConfirm, created.Add(time.Minute))
		require.NoError(t, err)

		assert.Equal(t, appointment.StatePending, a.State())
		assert.Equal(t, appointment.StateConfirmed, confirmed.State())
	})

	t.Run("failed transition keeps the value", func(t *testing.T) {
		a, err := appointment.NewAppointment(newDetails(), created)
		require.NoError(t, err)

		got, err := a.Finish(created.Add(time.Hour))

		assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
		assert.Equal(t, a, got)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		a, err := appointment.NewAppointment(newDetails(), created)
		require.NoError(t, err)
		cancelled, err := a.Cancel(created.Add(time.Minute))
		require.NoError(t, err)

		for _, action := range allActions {
			_, err := cancelled.Apply(action, created.Add(time.Hour))
			assert.ErrorIs(t, err, appointment.ErrInvalidTransition, action)
		}
	})

	t.Run("reconstruct keeps every field", func(t *testing.T) {
		id := uuid.New()
		updated := created.Add(time.Hour)

		a := appointment.ReconstructAppointment(id, newDetails(), appointment.StateInProgress, created, updated)

		assert.Equal(t, id, a.ID())
		assert.Equal(t, appointment.StateInProgress, a.State())
		assert.Equal(t, newDetails(), a.Details())
		assert.Equal(t, updated, a.UpdatedAt())
		assert.Equal(t, []appointment.Action{appointment.ActionFinish}, a.AllowedActions())
	})
}
