package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

var hundred = decimal.NewFromInt(100)

// SellPrice derives the sell price from cost and markup percent:
// cost × (1 + markup/100). The sell price is never stored or edited
// directly — the backend keeps it as a generated column and every panel
// that previews it recomputes from the two inputs as the user types.
func SellPrice(cost, markupPercent decimal.Decimal) decimal.Decimal {
	return cost.Mul(hundred.Add(markupPercent)).Div(hundred)
}

// SellPriceOf recomputes a part's displayed sell price from its stored
// cost and markup. Parts without pricing (or with it stripped by
// permissions) have no sell price.
func SellPriceOf(p api.Part) (decimal.Decimal, bool) {
	if p.CompanyCostPrice == nil || p.CompanyMarkupPercent == nil {
		return decimal.Decimal{}, false
	}
	return SellPrice(*p.CompanyCostPrice, *p.CompanyMarkupPercent), true
}

// SavePricing sets a part's cost and markup. The derived sell price
// comes back from the backend in the response.
// Invalidates: part/{id}, type-brand-parts/* (the chip rows show
// prices; the coordinate is unknown on this path).
func (s *Store) SavePricing(ctx context.Context, partID int, cost, markupPercent decimal.Decimal) (api.Part, error) {
	part, err := s.api.UpdatePartPricing(ctx, partID, api.PricingUpdate{
		CompanyCostPrice:     cost.String(),
		CompanyMarkupPercent: markupPercent.String(),
	})
	if err != nil {
		return api.Part{}, err
	}
	s.cache.Invalidate(querycache.PartKey(partID))
	s.cache.InvalidatePrefix(querycache.AllTypeBrandPartsPrefix())
	return part, nil
}
