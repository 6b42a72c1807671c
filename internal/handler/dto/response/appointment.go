package response

import (
	"time"

	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID                 uuid.UUID `json:"id"`
	CustomerName       string    `json:"customerName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	ServiceDescription string    `json:"serviceDescription"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	ProfessionalName   string    `json:"professionalName"`
	Price              int       `json:"price"`
	State              string    `json:"state"`
	StateName          string    `json:"stateName"`
	AllowedActions     []string  `json:"allowedActions"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 v.ID,
		CustomerName:       v.CustomerName,
		Email:              v.Email,
		Phone:              v.Phone,
		ServiceDescription: v.ServiceDescription,
		Date:               v.Date,
		Time:               v.Time,
		ProfessionalName:   v.ProfessionalName,
		Price:              v.Price,
		State:              v.State,
		StateName:          v.StateName,
		AllowedActions:     v.AllowedActions,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromAppointmentList(views []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		res[i] = FromAppointmentView(v)
	}
	return res
}
