package queries

import (
	"context"
	"time"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrReadFailed          = errs.New("read operation failed")
)

type AppointmentView struct {
	ID                 uuid.UUID `json:"id"`
	CustomerName       string    `json:"customer_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	ServiceDescription string    `json:"service_description"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	ProfessionalName   string    `json:"professional_name"`
	Price              int       `json:"price"`
	State              string    `json:"state"`
	StateName          string    `json:"state_name"`
	AllowedActions     []string  `json:"allowed_actions"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewAppointmentView(a appointment.Appointment) *AppointmentView {
	actions := a.AllowedActions()
	allowed := make([]string, len(actions))
	for i, act := range actions {
		allowed[i] = act.String()
	}

	return &AppointmentView{
		ID:                 a.ID(),
		CustomerName:       a.CustomerName(),
		Email:              a.Email(),
		Phone:              a.Phone(),
		ServiceDescription: a.ServiceDescription(),
		Date:               a.Date(),
		Time:               a.Time(),
		ProfessionalName:   a.ProfessionalName(),
		Price:              a.Price(),
		State:              a.State().String(),
		StateName:          a.State().DisplayName(),
		AllowedActions:     allowed,
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return view, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context) ([]*AppointmentView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return views, nil
}
