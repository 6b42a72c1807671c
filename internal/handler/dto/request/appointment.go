package request

import (
	"strings"

	"barbershop-booking/internal/usecase/commands"
)

// Fields are not marked required here: missing values are reported together
// by the use case with a customer facing message.
type CreateAppointmentRequest struct {
	CustomerName       string `json:"customer_name" binding:"max=120"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone" binding:"max=40"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	ServiceDescription string `json:"service_description" binding:"max=200"`
	ProfessionalName   string `json:"professional_name" binding:"max=120"`
	Price              int    `json:"price" binding:"min=0"`
}

func (r CreateAppointmentRequest) ToParams() commands.CreateAppointmentParams {
	return commands.CreateAppointmentParams{
		CustomerName:       r.CustomerName,
		Email:              r.Email,
		Phone:              r.Phone,
		Date:               strings.TrimSpace(r.Date),
		Time:               strings.TrimSpace(r.Time),
		ServiceDescription: r.ServiceDescription,
		ProfessionalName:   r.ProfessionalName,
		Price:              r.Price,
	}
}

type ValidateBookingRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
