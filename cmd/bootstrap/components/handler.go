package components

import (
	"barbershop-booking/internal/handler"
	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/observability/metrics"
	"barbershop-booking/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewAppointmentHandler,
		api.NewPolicyHandler,
		NewRateLimiter,
		NewHandlers,
		NewObservability,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

func NewHandlers(c *api.CatalogHandler, a *api.AppointmentHandler, p *api.PolicyHandler) handler.Handlers {
	return handler.Handlers{Catalog: c, Appointment: a, Policy: p}
}

func NewObservability(l *middleware.Logger, m *metrics.HTTPMetrics, g prometheus.Gatherer) handler.Observability {
	return handler.Observability{Logger: l, HTTPMetrics: m, Gatherer: g}
}
