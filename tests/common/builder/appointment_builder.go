//go:build unit || e2e

package builder

import (
	"time"

	"barbershop-booking/internal/domain/appointment"
	reqdto "barbershop-booking/internal/handler/dto/request"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID                 uuid.UUID
	CustomerName       string
	Email              string
	Phone              string
	ServiceDescription string
	Date               string
	Time               string
	ProfessionalName   string
	Price              int
	State              appointment.State
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewAppointmentBuilder defaults to a pending haircut on a Thursday morning.
func NewAppointmentBuilder() *AppointmentBuilder {
	created := time.Date(2025, 11, 18, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:                 uuid.New(),
		CustomerName:       "Juan Pérez",
		Email:              "juan@example.com",
		Phone:              "+57 300 123 4567",
		ServiceDescription: "Haircut + Beard Trim",
		Date:               "2025-11-20",
		Time:               "10:30",
		ProfessionalName:   "Carlos Rodríguez",
		Price:              32000,
		State:              appointment.StatePending,
		CreatedAt:          created,
		UpdatedAt:          created,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithState(s appointment.State) *AppointmentBuilder {
	b.State = s
	return b
}

func (b *AppointmentBuilder) WithDate(date, clock string) *AppointmentBuilder {
	b.Date = date
	b.Time = clock
	return b
}

func (b *AppointmentBuilder) details() appointment.Details {
	return appointment.Details{
		CustomerName:       b.CustomerName,
		Email:              b.Email,
		Phone:              b.Phone,
		ServiceDescription: b.ServiceDescription,
		Date:               b.Date,
		Time:               b.Time,
		ProfessionalName:   b.ProfessionalName,
		Price:              b.Price,
	}
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() appointment.Appointment {
	return appointment.ReconstructAppointment(b.ID, b.details(), b.State, b.CreatedAt, b.UpdatedAt)
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return queries.NewAppointmentView(b.BuildDomain())
}

func (b *AppointmentBuilder) BuildParams() commands.CreateAppointmentParams {
	return commands.CreateAppointmentParams{
		CustomerName:       b.CustomerName,
		Email:              b.Email,
		Phone:              b.Phone,
		Date:               b.Date,
		Time:               b.Time,
		ServiceDescription: b.ServiceDescription,
		ProfessionalName:   b.ProfessionalName,
		Price:              b.Price,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		CustomerName:       b.CustomerName,
		Email:              b.Email,
		Phone:              b.Phone,
		Date:               b.Date,
		Time:               b.Time,
		ServiceDescription: b.ServiceDescription,
		ProfessionalName:   b.ProfessionalName,
		Price:              b.Price,
	}
}
