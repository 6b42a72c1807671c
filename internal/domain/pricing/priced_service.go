package pricing

import "barbershop-booking/internal/domain/service"

// PricedService is a component together with the strategy chosen for it.
// The strategy is selected once, when the PricedService is created.
type PricedService struct {
	component service.Component
	strategy  Strategy
}

func NewPricedService(component service.Component, ctx Context) PricedService {
	return PricedService{
		component: component,
		strategy:  SelectStrategy(ctx),
	}
}

func (p PricedService) BasePrice() int {
	return p.component.Price()
}

func (p PricedService) FinalPrice() int {
	return p.strategy.Apply(p.BasePrice())
}

// Savings is negative when a surcharge applies.
func (p PricedService) Savings() int {
	return p.BasePrice() - p.FinalPrice()
}

func (p PricedService) AppliedStrategyLabel() string {
	return p.strategy.Label()
}

func (p PricedService) Strategy() Strategy           { return p.strategy }
func (p PricedService) Component() service.Component { return p.component }
func (p PricedService) Describe() string             { return p.component.Describe() }
func (p PricedService) Duration() int                { return p.component.Duration() }
