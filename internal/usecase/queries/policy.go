package queries

import (
	"context"

	"barbershop-booking/internal/domain/policy"
)

type PolicyView struct {
	OpeningTime             string  `json:"opening_time"`
	ClosingTime             string  `json:"closing_time"`
	CancellationNotice      string  `json:"cancellation_notice"`
	CancellationPolicyText  string  `json:"cancellation_policy_text"`
	MidweekDiscountFraction float64 `json:"midweek_discount_fraction"`
}

func NewPolicyView(p policy.Policy) *PolicyView {
	return &PolicyView{
		OpeningTime:             p.OpeningTime,
		ClosingTime:             p.ClosingTime,
		CancellationNotice:      p.CancellationNotice,
		CancellationPolicyText:  p.CancellationPolicyText(),
		MidweekDiscountFraction: p.MidweekDiscountFraction,
	}
}

type PolicyReader interface {
	Get() policy.Policy
}

type PolicyQueries interface {
	Current(ctx context.Context) *PolicyView
}

type policyQueriesImpl struct {
	reader PolicyReader
}

func NewPolicyQueries(reader PolicyReader) PolicyQueries {
	return &policyQueriesImpl{reader: reader}
}

func (q *policyQueriesImpl) Current(ctx context.Context) *PolicyView {
	return NewPolicyView(q.reader.Get())
}
