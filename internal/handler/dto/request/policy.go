package request

import "barbershop-booking/internal/usecase/commands"

type UpdatePolicyRequest struct {
	OpeningTime             *string  `json:"opening_time"`
	ClosingTime             *string  `json:"closing_time"`
	CancellationNotice      *string  `json:"cancellation_notice" binding:"omitempty,max=60"`
	MidweekDiscountFraction *float64 `json:"midweek_discount_fraction"`
}

func (r UpdatePolicyRequest) ToParams() commands.UpdatePolicyParams {
	return commands.UpdatePolicyParams{
		OpeningTime:             r.OpeningTime,
		ClosingTime:             r.ClosingTime,
		CancellationNotice:      r.CancellationNotice,
		MidweekDiscountFraction: r.MidweekDiscountFraction,
	}
}

func (r UpdatePolicyRequest) IsEmpty() bool {
	return r.OpeningTime == nil &&
		r.ClosingTime == nil &&
		r.CancellationNotice == nil &&
		r.MidweekDiscountFraction == nil
}
