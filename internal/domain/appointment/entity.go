package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Details are the booking fields fixed when the appointment is created.
type Details struct {
	CustomerName       string
	Email              string
	Phone              string
	ServiceDescription string
	Date               string
	Time               string
	ProfessionalName   string
	Price              int
}

// Appointment is a value: lifecycle operations return a new Appointment and
// leave the receiver untouched.
type Appointment struct {
	id                 uuid.UUID
	customerName       string
	email              string
	phone              string
	serviceDescription string
	date               string
	time               string
	professionalName   string
	price              int
	state              State
	createdAt          time.Time
	updatedAt          time.Time
}

func NewAppointment(d Details, now time.Time) (Appointment, error) {
	if d.Price < 0 {
		return Appointment{}, ErrNegativePrice
	}
	return Appointment{
		id:                 uuid.New(),
		customerName:       d.CustomerName,
		email:              d.Email,
		phone:              d.Phone,
		serviceDescription: d.ServiceDescription,
		date:               d.Date,
		time:               d.Time,
		professionalName:   d.ProfessionalName,
		price:              d.Price,
		state:              StatePending,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructAppointment(
	id uuid.UUID,
	d Details,
	state State,
	createdAt, updatedAt time.Time,
) Appointment {
	return Appointment{
		id:                 id,
		customerName:       d.CustomerName,
		email:              d.Email,
		phone:              d.Phone,
		serviceDescription: d.ServiceDescription,
		date:               d.Date,
		time:               d.Time,
		professionalName:   d.ProfessionalName,
		price:              d.Price,
		state:              state,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Apply performs action. On failure the returned value equals a and the error
// is an *InvalidTransitionError.
func (a Appointment) Apply(action Action, at time.Time) (Appointment, error) {
	next, err := a.state.Next(action)
	if err != nil {
		return a, err
	}
	a.state = next
	a.updatedAt = at
	return a, nil
}

func (a Appointment) Confirm(at time.Time) (Appointment, error) { return a.Apply(ActionConfirm, at) }
func (a Appointment) Cancel(at time.Time) (Appointment, error)  { return a.Apply(ActionCancel, at) }
func (a Appointment) Start(at time.Time) (Appointment, error)   { return a.Apply(ActionStart, at) }
func (a Appointment) Finish(at time.Time) (Appointment, error)  { return a.Apply(ActionFinish, at) }

func (a Appointment) AllowedActions() []Action {
	return a.state.AllowedActions()
}

func (a Appointment) Details() Details {
	return Details{
		CustomerName:       a.customerName,
		Email:              a.email,
		Phone:              a.phone,
		ServiceDescription: a.serviceDescription,
		Date:               a.date,
		Time:               a.time,
		ProfessionalName:   a.professionalName,
		Price:              a.price,
	}
}

func (a Appointment) ID() uuid.UUID              { return a.id }
func (a Appointment) CustomerName() string       { return a.customerName }
func (a Appointment) Email() string              { return a.email }
func (a Appointment) Phone() string              { return a.phone }
func (a Appointment) ServiceDescription() string { return a.serviceDescription }
func (a Appointment) Date() string               { return a.date }
func (a Appointment) Time() string               { return a.time }
func (a Appointment) ProfessionalName() string   { return a.professionalName }
func (a Appointment) Price() int                 { return a.price }
func (a Appointment) State() State               { return a.state }
func (a Appointment) CreatedAt() time.Time       { return a.createdAt }
func (a Appointment) UpdatedAt() time.Time       { return a.updatedAt }
