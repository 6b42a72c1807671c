package pricing

import (
	"time"

	"barbershop-booking/internal/pkg/patch"
)

// ExpertProfessionalID is the professional whose bookings carry a surcharge.
const ExpertProfessionalID = "carlos-rodriguez"

// Context holds the facts used to pick a strategy for a single quote.
type Context struct {
	DayOfWeek              time.Weekday
	SelectedProfessionalID *string
	IsFirstVisit           *bool
	IsRepeatCustomer       *bool
}

// SelectStrategy returns the first matching strategy:
// Wednesday, then the expert professional, then repeat customer, then first visit.
func SelectStrategy(ctx Context) Strategy {
	switch {
	case ctx.DayOfWeek == time.Wednesday:
		return StrategyMidweekDiscount
	case patch.Coalesce(ctx.SelectedProfessionalID, "") == ExpertProfessionalID:
		return StrategyExpertProfessionalSurcharge
	case patch.Coalesce(ctx.IsRepeatCustomer, false):
		return StrategyRepeatCustomerDiscount
	case patch.Coalesce(ctx.IsFirstVisit, false):
		return StrategyFirstVisitDiscount
	default:
		return StrategyStandard
	}
}
