package commands

import (
	"context"
	"log/slog"
	"strings"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/policy"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrMissingFields = errs.New("missing required fields")
	ErrWriteFailed   = errs.New("write operation failed")
)

// MissingFieldsError lists the labels of the booking fields left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Please complete: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

type CreateAppointmentParams struct {
	CustomerName       string
	Email              string
	Phone              string
	Date               string
	Time               string
	ServiceDescription string
	ProfessionalName   string
	Price              int
}

type AppointmentRepository interface {
	Create(ctx context.Context, a appointment.Appointment) error
	Update(ctx context.Context, id uuid.UUID, fn func(appointment.Appointment) (appointment.Appointment, error)) (appointment.Appointment, error)
}

type BookingValidator interface {
	ValidateBooking(date, clock string) error
}

type BookingObserver interface {
	ObserveValidation(reason string)
	ObserveTransition(action string, ok bool)
	ObserveAppointmentCreated()
}

type AppointmentCommands interface {
	ValidateBooking(ctx context.Context, date, time string) error
	Create(ctx context.Context, params CreateAppointmentParams) (*queries.AppointmentView, error)
	ApplyAction(ctx context.Context, id uuid.UUID, action string) (*queries.AppointmentView, error)
}

type appointmentUseCaseImpl struct {
	repo      AppointmentRepository
	validator BookingValidator
	observer  BookingObserver
	clock     clock.Clock
}

func NewAppointmentUseCase(
	repo AppointmentRepository,
	validator BookingValidator,
	observer BookingObserver,
	clk clock.Clock,
) AppointmentCommands {
	return &appointmentUseCaseImpl{
		repo:      repo,
		validator: validator,
		observer:  observer,
		clock:     clk,
	}
}

func (uc *appointmentUseCaseImpl) ValidateBooking(ctx context.Context, date, time string) error {
	err := uc.validator.ValidateBooking(date, time)

	var verr *policy.ValidationError
	switch {
	case err == nil:
		uc.observer.ObserveValidation("")
	case errs.As(err, &verr):
		uc.observer.ObserveValidation(string(verr.Reason))
	}
	return err
}

func (uc *appointmentUseCaseImpl) Create(ctx context.Context, params CreateAppointmentParams) (*queries.AppointmentView, error) {
	if missing := missingFields(params); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if err := uc.ValidateBooking(ctx, params.Date, params.Time); err != nil {
		return nil, err
	}

	appt, err := appointment.NewAppointment(appointment.Details{
		CustomerName:       strings.TrimSpace(params.CustomerName),
		Email:              strings.TrimSpace(params.Email),
		Phone:              strings.TrimSpace(params.Phone),
		ServiceDescription: params.ServiceDescription,
		Date:               params.Date,
		Time:               params.Time,
		ProfessionalName:   params.ProfessionalName,
		Price:              params.Price,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, appt); err != nil {
		return nil, errs.Mark(err, ErrWriteFailed)
	}
	uc.observer.ObserveAppointmentCreated()

	slog.InfoContext(ctx, "appointment created",
		slog.String("appointment_id", appt.ID().String()),
		slog.String("date", appt.Date()),
		slog.String("time", appt.Time()),
		slog.Int("price", appt.Price()),
	)
	return queries.NewAppointmentView(appt), nil
}

func (uc *appointmentUseCaseImpl) ApplyAction(ctx context.Context, id uuid.UUID, action string) (*queries.AppointmentView, error) {
	act, err := appointment.ParseAction(action)
	if err != nil {
		return nil, err
	}

	var from appointment.State
	updated, err := uc.repo.Update(ctx, id, func(current appointment.Appointment) (appointment.Appointment, error) {
		from = current.State()
		return current.Apply(act, uc.clock.Now())
	})
	if err != nil {
		switch {
		case errs.Is(err, appointment.ErrInvalidTransition):
			uc.observer.ObserveTransition(act.String(), false)
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, queries.ErrAppointmentNotFound
		default:
			return nil, errs.Mark(err, ErrWriteFailed)
		}
	}
	uc.observer.ObserveTransition(act.String(), true)

	slog.InfoContext(ctx, "appointment transitioned",
		slog.String("appointment_id", id.String()),
		slog.String("action", act.String()),
		slog.String("from", from.String()),
		slog.String("to", updated.State().String()),
	)
	return queries.NewAppointmentView(updated), nil
}

func missingFields(p CreateAppointmentParams) []string {
	fields := []struct {
		label string
		value string
	}{
		{"Name", p.CustomerName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Date", p.Date},
		{"Time", p.Time},
		{"Service", p.ServiceDescription},
		{"Professional", p.ProfessionalName},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	return missing
}
