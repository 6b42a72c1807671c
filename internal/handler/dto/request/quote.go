package request

import (
	"time"

	"barbershop-booking/internal/usecase/queries"
)

type QuoteRequest struct {
	Service          string   `json:"service" binding:"required"`
	Extras           []string `json:"extras"`
	DayOfWeek        *int     `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	ProfessionalID   *string  `json:"professional_id"`
	IsFirstVisit     *bool    `json:"is_first_visit"`
	IsRepeatCustomer *bool    `json:"is_repeat_customer"`
}

func (r QuoteRequest) ToParams() queries.QuoteParams {
	var day *time.Weekday
	if r.DayOfWeek != nil {
		d := time.Weekday(*r.DayOfWeek)
		day = &d
	}
	return queries.QuoteParams{
		Service:          r.Service,
		Extras:           r.Extras,
		DayOfWeek:        day,
		ProfessionalID:   r.ProfessionalID,
		IsFirstVisit:     r.IsFirstVisit,
		IsRepeatCustomer: r.IsRepeatCustomer,
	}
}
