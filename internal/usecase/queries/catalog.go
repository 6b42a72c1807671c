package queries

import (
	"context"
	"log/slog"
	"time"

	"barbershop-booking/internal/domain/pricing"
	"barbershop-booking/internal/domain/service"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/patch"
)

var ErrUnknownService = errs.New("unknown service")

type OfferingView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"`
}

type CatalogView struct {
	Services             []OfferingView `json:"services"`
	Extras               []OfferingView `json:"extras"`
	ExpertProfessionalID string         `json:"expert_professional_id"`
}

type QuoteParams struct {
	Service          string
	Extras           []string
	DayOfWeek        *time.Weekday
	ProfessionalID   *string
	IsFirstVisit     *bool
	IsRepeatCustomer *bool
}

type QuoteLineView struct {
	Description string `json:"description"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
}

type QuoteView struct {
	Service       string          `json:"service"`
	Extras        []string        `json:"extras"`
	IgnoredExtras []string        `json:"ignored_extras"`
	Description   string          `json:"description"`
	Lines         []QuoteLineView `json:"lines"`
	Duration      int             `json:"duration"`
	DayOfWeek     time.Weekday    `json:"day_of_week"`
	BasePrice     int             `json:"base_price"`
	FinalPrice    int             `json:"final_price"`
	Savings       int             `json:"savings"`
	Strategy      string          `json:"strategy"`
	StrategyLabel string          `json:"strategy_label"`
}

type QuoteObserver interface {
	ObserveQuote(strategy string, finalPrice int)
}

type CatalogQueries interface {
	Catalog(ctx context.Context) *CatalogView
	Quote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type catalogQueriesImpl struct {
	clock    clock.Clock
	observer QuoteObserver
}

func NewCatalogQueries(clk clock.Clock, observer QuoteObserver) CatalogQueries {
	return &catalogQueriesImpl{clock: clk, observer: observer}
}

func (q *catalogQueriesImpl) Catalog(ctx context.Context) *CatalogView {
	kinds := service.Kinds()
	services := make([]OfferingView, len(kinds))
	for i, k := range kinds {
		services[i] = OfferingView{ID: k.String(), Name: k.Description(), Price: k.Price(), Duration: k.Duration()}
	}

	extras := service.Extras()
	extraViews := make([]OfferingView, len(extras))
	for i, e := range extras {
		extraViews[i] = OfferingView{ID: e.String(), Name: e.Label(), Price: e.Price(), Duration: e.Duration()}
	}

	return &CatalogView{
		Services:             services,
		Extras:               extraViews,
		ExpertProfessionalID: pricing.ExpertProfessionalID,
	}
}

// Quote prices a service with its extras. Unknown extras are skipped and
// reported in IgnoredExtras. DayOfWeek defaults to today in the shop's zone.
func (q *catalogQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	kind, err := service.ParseKind(params.Service)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownService)
	}

	component, err := service.CreateBase(kind)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownService)
	}

	applied := make([]string, 0, len(params.Extras))
	ignored := make([]string, 0)
	for _, raw := range params.Extras {
		extra, ok := service.ParseExtra(raw)
		if !ok {
			ignored = append(ignored, raw)
			continue
		}
		component = service.WrapWithExtra(component, extra)
		applied = append(applied, raw)
	}
	if len(ignored) > 0 {
		slog.WarnContext(ctx, "ignoring unknown extras",
			slog.String("service", kind.String()),
			slog.Any("extras", ignored),
		)
	}

	day := patch.Coalesce(params.DayOfWeek, clock.Weekday(q.clock))
	priced := pricing.NewPricedService(component, pricing.Context{
		DayOfWeek:              day,
		SelectedProfessionalID: params.ProfessionalID,
		IsFirstVisit:           params.IsFirstVisit,
		IsRepeatCustomer:       params.IsRepeatCustomer,
	})

	lines := component.Lines()
	lineViews := make([]QuoteLineView, len(lines))
	for i, l := range lines {
		lineViews[i] = QuoteLineView(l)
	}

	view := &QuoteView{
		Service:       kind.String(),
		Extras:        applied,
		IgnoredExtras: ignored,
		Description:   priced.Describe(),
		Lines:         lineViews,
		Duration:      priced.Duration(),
		DayOfWeek:     day,
		BasePrice:     priced.BasePrice(),
		FinalPrice:    priced.FinalPrice(),
		Savings:       priced.Savings(),
		Strategy:      priced.Strategy().String(),
		StrategyLabel: priced.AppliedStrategyLabel(),
	}

	if q.observer != nil {
		q.observer.ObserveQuote(view.Strategy, view.FinalPrice)
	}
	return view, nil
}
