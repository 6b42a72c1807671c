package commands

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/domain/policy"
	"barbershop-booking/internal/pkg/patch"
	"barbershop-booking/internal/usecase/queries"
)

// UpdatePolicyParams is a partial update. Nil fields keep their current value.
type UpdatePolicyParams struct {
	OpeningTime             *string
	ClosingTime             *string
	CancellationNotice      *string
	MidweekDiscountFraction *float64
}

type PolicyWriter interface {
	Update(fn func(p *policy.Policy)) (policy.Policy, error)
}

type PolicyCommands interface {
	Update(ctx context.Context, params UpdatePolicyParams) (*queries.PolicyView, error)
}

type policyUseCaseImpl struct {
	writer PolicyWriter
}

func NewPolicyUseCase(writer PolicyWriter) PolicyCommands {
	return &policyUseCaseImpl{writer: writer}
}

func (uc *policyUseCaseImpl) Update(ctx context.Context, params UpdatePolicyParams) (*queries.PolicyView, error) {
	updated, err := uc.writer.Update(func(p *policy.Policy) {
		patch.Assign(&p.OpeningTime, params.OpeningTime)
		patch.Assign(&p.ClosingTime, params.ClosingTime)
		patch.Assign(&p.CancellationNotice, params.CancellationNotice)
		patch.Assign(&p.MidweekDiscountFraction, params.MidweekDiscountFraction)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking policy updated",
		slog.String("opening_time", updated.OpeningTime),
		slog.String("closing_time", updated.ClosingTime),
		slog.String("cancellation_notice", updated.CancellationNotice),
		slog.Float64("midweek_discount_fraction", updated.MidweekDiscountFraction),
	)
	return queries.NewPolicyView(updated), nil
}
