//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReadStore struct {
	views map[uuid.UUID]*queries.AppointmentView
	err   error
}

func (s stubReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.views[id]
	if !ok {
		return nil, infra.NotFound("appointment", id.String())
	}
	return v, nil
}

func (s stubReadStore) List(context.Context) ([]*queries.AppointmentView, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*queries.AppointmentView, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v)
	}
	return out, nil
}

func TestAppointmentQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewAppointmentBuilder().BuildView()
	q := queries.NewAppointmentQueries(stubReadStore{views: map[uuid.UUID]*queries.AppointmentView{view.ID: view}})

	t.Run("success", func(t *testing.T) {
		got, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: not found", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, queries.ErrAppointmentNotFound))
	})

	t.Run("error: store failure", func(t *testing.T) {
		failing := queries.NewAppointmentQueries(stubReadStore{err: errors.New("boom")})

		_, err := failing.GetByID(ctx, view.ID)
		assert.True(t, errs.Is(err, queries.ErrReadFailed))

		_, err = failing.List(ctx)
		assert.True(t, errs.Is(err, queries.ErrReadFailed))
	})
}

func TestNewAppointmentView(t *testing.T) {
	t.Run("terminal state has no actions", func(t *testing.T) {
		view := builder.NewAppointmentBuilder().WithState("finished").BuildView()

		assert.Equal(t, "Finished", view.StateName)
		assert.NotNil(t, view.AllowedActions)
		assert.Empty(t, view.AllowedActions)
	})

	t.Run("in progress may only finish", func(t *testing.T) {
		view := builder.NewAppointmentBuilder().WithState("in_progress").BuildView()

		assert.Equal(t, "In Progress", view.StateName)
		assert.Equal(t, []string{"finish"}, view.AllowedActions)
	})
}
