//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"barbershop-booking/internal/domain/pricing"
	"barbershop-booking/internal/domain/service"
	"barbershop-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyApply(t *testing.T) {
	tests := []struct {
		strategy pricing.Strategy
		price    int
		want     int
	}{
		{pricing.StrategyStandard, 22000, 22000},
		{pricing.StrategyMidweekDiscount, 22000, 19800},
		{pricing.StrategyExpertProfessionalSurcharge, 22000, 26400},
		{pricing.StrategyRepeatCustomerDiscount, 22000, 18700},
		{pricing.StrategyFirstVisitDiscount, 22000, 20900},
		// 15 * 0.9 = 13.5
		{pricing.StrategyMidweekDiscount, 15, 14},
		// 11 * 0.85 = 9.35
		{pricing.StrategyRepeatCustomerDiscount, 11, 9},
		// 10 * 0.95 = 9.5
		{pricing.StrategyFirstVisitDiscount, 10, 10},
		{pricing.StrategyExpertProfessionalSurcharge, 0, 0},
		{pricing.Strategy(""), 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.strategy.Apply(tt.price))
		})
	}
}

func TestUnknownStrategyPanics(t *testing.T) {
	s := pricing.Strategy("loyalty_card")

	assert.PanicsWithValue(t, `pricing: unknown strategy "loyalty_card"`, func() { s.Percent() })
	assert.PanicsWithValue(t, `pricing: unknown strategy "loyalty_card"`, func() { _ = s.Label() })
	assert.Panics(t, func() { s.Apply(1000) })
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name string
		ctx  pricing.Context
		want pricing.Strategy
	}{
		{
			name: "no facts",
			ctx:  pricing.Context{DayOfWeek: time.Monday},
			want: pricing.StrategyStandard,
		},
		{
			name: "wednesday wins over everything",
			ctx: pricing.Context{
				DayOfWeek:              time.Wednesday,
				SelectedProfessionalID: patch.Ptr(pricing.ExpertProfessionalID),
				IsFirstVisit:           patch.Ptr(true),
				IsRepeatCustomer:       patch.Ptr(true),
			},
			want: pricing.StrategyMidweekDiscount,
		},
		{
			name: "expert professional wins over customer history",
			ctx: pricing.Context{
				DayOfWeek:              time.Friday,
				SelectedProfessionalID: patch.Ptr(pricing.ExpertProfessionalID),
				IsFirstVisit:           patch.Ptr(true),
				IsRepeatCustomer:       patch.Ptr(true),
			},
			want: pricing.StrategyExpertProfessionalSurcharge,
		},
		{
			name: "other professional gets no surcharge",
			ctx: pricing.Context{
				DayOfWeek:              time.Friday,
				SelectedProfessionalID: patch.Ptr("ana-gomez"),
			},
			want: pricing.StrategyStandard,
		},
		{
			name: "repeat customer wins over first visit",
			ctx: pricing.Context{
				DayOfWeek:        time.Tuesday,
				IsFirstVisit:     patch.Ptr(true),
				IsRepeatCustomer: patch.Ptr(true),
			},
			want: pricing.StrategyRepeatCustomerDiscount,
		},
		{
			name: "first visit",
			ctx: pricing.Context{
				DayOfWeek:        time.Saturday,
				IsFirstVisit:     patch.Ptr(true),
				IsRepeatCustomer: patch.Ptr(false),
			},
			want: pricing.StrategyFirstVisitDiscount,
		},
		{
			name: "explicit false flags",
			ctx: pricing.Context{
				DayOfWeek:        time.Sunday,
				IsFirstVisit:     patch.Ptr(false),
				IsRepeatCustomer: patch.Ptr(false),
			},
			want: pricing.StrategyStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.SelectStrategy(tt.ctx))
		})
	}
}

func TestPricedService(t *testing.T) {
	t.Run("haircut on wednesday", func(t *testing.T) {
		c, err := service.CreateBase(service.KindHaircut)
		require.NoError(t, err)

		p := pricing.NewPricedService(c, pricing.Context{DayOfWeek: time.Wednesday})

		assert.Equal(t, 22000, p.BasePrice())
		assert.Equal(t, 19800, p.FinalPrice())
		assert.Equal(t, 2200, p.Savings())
		assert.Equal(t, "Midweek discount (-10%)", p.AppliedStrategyLabel())
		assert.Equal(t, "Haircut", p.Describe())
		assert.Equal(t, 30, p.Duration())
	})

	t.Run("surcharge gives negative savings", func(t *testing.T) {
		c, err := service.Build(service.KindHaircut, service.ExtraBeard)
		require.NoError(t, err)

		p := pricing.NewPricedService(c, pricing.Context{
			DayOfWeek:              time.Thursday,
			SelectedProfessionalID: patch.Ptr(pricing.ExpertProfessionalID),
		})

		assert.Equal(t, 32000, p.BasePrice())
		assert.Equal(t, 38400, p.FinalPrice())
		assert.Equal(t, -6400, p.Savings())
		assert.Equal(t, "Expert professional (+20%)", p.AppliedStrategyLabel())
	})

	t.Run("pricing is idempotent", func(t *testing.T) {
		c, err := service.Build(service.KindGroomPackage, service.ExtraFacialMask)
		require.NoError(t, err)
		ctx := pricing.Context{
			DayOfWeek:        time.Monday,
			IsRepeatCustomer: patch.Ptr(true),
		}

		first := pricing.NewPricedService(c, ctx)
		second := pricing.NewPricedService(c, ctx)

		assert.Equal(t, first.FinalPrice(), second.FinalPrice())
		assert.Equal(t, first.AppliedStrategyLabel(), second.AppliedStrategyLabel())
		assert.Equal(t, first.Savings(), second.Savings())
		assert.Equal(t, first.BasePrice()-first.FinalPrice(), first.Savings())
	})

	t.Run("strategy is fixed at construction", func(t *testing.T) {
		c, err := service.CreateBase(service.KindColoring)
		require.NoError(t, err)
		ctx := pricing.Context{DayOfWeek: time.Wednesday}

		p := pricing.NewPricedService(c, ctx)
		ctx.DayOfWeek = time.Monday

		assert.Equal(t, pricing.StrategyMidweekDiscount, p.Strategy())
		assert.Equal(t, 36000, p.FinalPrice())
	})
}
