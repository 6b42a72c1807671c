package bootstrap

import (
	"log/slog"

	"barbershop-booking/internal/domain/policy"
	"barbershop-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var PolicyModule = fx.Module("policy",
	fx.Provide(
		NewPolicyStore,
	),
)

// NewPolicyStore seeds the process-wide policy from configuration.
func NewPolicyStore(cfg config.Config, logger *slog.Logger) (*policy.Store, error) {
	store, err := policy.NewStore(policy.Policy{
		OpeningTime:             cfg.Policy.OpeningTime,
		ClosingTime:             cfg.Policy.ClosingTime,
		CancellationNotice:      cfg.Policy.CancellationNotice,
		MidweekDiscountFraction: cfg.Policy.MidweekDiscountFraction,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("booking policy loaded",
		slog.String("opening_time", cfg.Policy.OpeningTime),
		slog.String("closing_time", cfg.Policy.ClosingTime),
	)
	return store, nil
}
