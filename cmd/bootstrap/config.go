package bootstrap

import (
	"time"

	"barbershop-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewShopLocation,
	),
)

func NewShopLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Shop.Location()
}
