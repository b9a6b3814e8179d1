package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marshallshelly/voltdesk/pkg/api"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSellPrice(t *testing.T) {
	tests := []struct {
		name   string
		cost   string
		markup string
		want   string
	}{
		{"fifty percent markup", "10.00", "50", "15"},
		{"zero markup", "10.00", "0", "10"},
		{"fractional cents", "1.99", "35", "2.6865"},
		{"zero cost", "0", "40", "0"},
		{"hundred percent", "12.50", "100", "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SellPrice(dec(tt.cost), dec(tt.markup))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("SellPrice(%s, %s) = %s, want %s", tt.cost, tt.markup, got, tt.want)
			}
		})
	}
}

func TestSellPriceOf(t *testing.T) {
	cost := dec("20.00")
	markup := dec("25")

	t.Run("both inputs present", func(t *testing.T) {
		p := api.Part{CompanyCostPrice: &cost, CompanyMarkupPercent: &markup}
		got, ok := SellPriceOf(p)
		if !ok {
			t.Fatal("expected a sell price")
		}
		if !got.Equal(dec("25")) {
			t.Errorf("got %s, want 25", got)
		}
	})

	t.Run("missing pricing", func(t *testing.T) {
		for _, p := range []api.Part{
			{},
			{CompanyCostPrice: &cost},
			{CompanyMarkupPercent: &markup},
		} {
			if _, ok := SellPriceOf(p); ok {
				t.Errorf("part %+v should have no sell price", p)
			}
		}
	})
}
