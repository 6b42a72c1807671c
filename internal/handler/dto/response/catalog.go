package response

import (
	"barbershop-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OfferingResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"`
}

type CatalogResponse struct {
	Services             []OfferingResponse `json:"services"`
	Extras               []OfferingResponse `json:"extras"`
	ExpertProfessionalID string             `json:"expertProfessionalId"`
}

func FromCatalogView(v *queries.CatalogView) (*CatalogResponse, error) {
	res := &CatalogResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

type QuoteLineResponse struct {
	Description string `json:"description"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
}

type QuoteResponse struct {
	Service       string              `json:"service"`
	Extras        []string            `json:"extras"`
	IgnoredExtras []string            `json:"ignoredExtras"`
	Description   string              `json:"description"`
	Lines         []QuoteLineResponse `json:"lines"`
	Duration      int                 `json:"duration"`
	DayOfWeek     int                 `json:"dayOfWeek"`
	DayName       string              `json:"dayName"`
	BasePrice     int                 `json:"basePrice"`
	FinalPrice    int                 `json:"finalPrice"`
	Savings       int                 `json:"savings"`
	Strategy      string              `json:"strategy"`
	StrategyLabel string              `json:"strategyLabel"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	lines := make([]QuoteLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = QuoteLineResponse(l)
	}
	return &QuoteResponse{
		Service:       v.Service,
		Extras:        v.Extras,
		IgnoredExtras: v.IgnoredExtras,
		Description:   v.Description,
		Lines:         lines,
		Duration:      v.Duration,
		DayOfWeek:     int(v.DayOfWeek),
		DayName:       v.DayOfWeek.String(),
		BasePrice:     v.BasePrice,
		FinalPrice:    v.FinalPrice,
		Savings:       v.Savings,
		Strategy:      v.Strategy,
		StrategyLabel: v.StrategyLabel,
	}
}
