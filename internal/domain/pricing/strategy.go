package pricing

import "fmt"

// Strategy is a named price adjustment. The zero value behaves as StrategyStandard.
type Strategy string

const (
	StrategyStandard                    Strategy = "standard"
	StrategyMidweekDiscount             Strategy = "midweek_discount"
	StrategyExpertProfessionalSurcharge Strategy = "expert_professional_surcharge"
	StrategyRepeatCustomerDiscount      Strategy = "repeat_customer_discount"
	StrategyFirstVisitDiscount          Strategy = "first_visit_discount"
)

func (s Strategy) String() string { return string(s) }

// Percent is the multiplier applied to the base price, in percent.
// The midweek discount is fixed at 90 and does not follow the policy's
// configurable discount fraction.
func (s Strategy) Percent() int {
	switch s {
	case StrategyMidweekDiscount:
		return 90
	case StrategyExpertProfessionalSurcharge:
		return 120
	case StrategyRepeatCustomerDiscount:
		return 85
	case StrategyFirstVisitDiscount:
		return 95
	case StrategyStandard, "":
		return 100
	}
	panic(unknownStrategy(s))
}

func (s Strategy) Label() string {
	switch s {
	case StrategyMidweekDiscount:
		return "Midweek discount (-10%)"
	case StrategyExpertProfessionalSurcharge:
		return "Expert professional (+20%)"
	case StrategyRepeatCustomerDiscount:
		return "Repeat customer (-15%)"
	case StrategyFirstVisitDiscount:
		return "First visit (-5%)"
	case StrategyStandard, "":
		return "Standard price"
	}
	panic(unknownStrategy(s))
}

// Apply adjusts price, rounding half up to the nearest currency unit.
func (s Strategy) Apply(price int) int {
	return roundHalfUp(price*s.Percent(), 100)
}

func unknownStrategy(s Strategy) string {
	return fmt.Sprintf("pricing: unknown strategy %q", string(s))
}

func roundHalfUp(n, d int) int {
	return floorDiv(n+d/2, d)
}

func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
