package configurator

import (
	"strings"

	"renovo/internal/domain/catalog"
)

// DefaultCoefficient applies when no market type is chosen or the answer
// matches no known coefficient.
const DefaultCoefficient = 1.0

// MarketType is the user's answer to "which real-estate market is the
// apartment on".
type MarketType string

const (
	MarketNone      MarketType = ""
	MarketPrimary   MarketType = "primary"
	MarketSecondary MarketType = "secondary"
)

// Coefficient names each market type answer resolves to, compared
// case-insensitively.
var marketCoefficientNames = map[MarketType][]string{
	MarketPrimary:   {"primary market", "первичный рынок", "primary"},
	MarketSecondary: {"secondary market", "вторичный рынок", "secondary"},
}

// ParseMarketType normalizes a free-form answer. Unknown answers map to
// MarketNone.
func ParseMarketType(s string) MarketType {
	switch m := MarketType(strings.ToLower(strings.TrimSpace(s))); m {
	case MarketPrimary, MarketSecondary:
		return m
	default:
		return MarketNone
	}
}

// ResolveCoefficient picks the multiplier for a market type from the
// configured coefficients, falling back to DefaultCoefficient.
func ResolveCoefficient(coeffs []catalog.Coefficient, market MarketType) float64 {
	names, ok := marketCoefficientNames[market]
	if !ok {
		return DefaultCoefficient
	}
	for _, c := range coeffs {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		for _, want := range names {
			if name == want {
				return c.Value
			}
		}
	}
	return DefaultCoefficient
}

type ProductLineTotal struct {
	ProductLine
	Total float64 `json:"total"`
}

type ServiceLineTotal struct {
	ServiceLine
	Total float64 `json:"total"`
}

// Breakdown is a display total; no rounding is applied.
type Breakdown struct {
	Products        []ProductLineTotal `json:"products"`
	Services        []ServiceLineTotal `json:"services"`
	ProductSubtotal float64            `json:"product_subtotal"`
	ServiceSubtotal float64            `json:"service_subtotal"`
	Coefficient     float64            `json:"coefficient"`
	Total           float64            `json:"total"`
}

// Price computes line totals and subtotals. Products are charged
// price*quantity; services price*quantity*coefficient. Quantities below 1
// count as 1.
func Price(cart *Cart, coefficient float64) Breakdown {
	b := Breakdown{
		Products:    make([]ProductLineTotal, 0, len(cart.products)),
		Services:    make([]ServiceLineTotal, 0, len(cart.services)),
		Coefficient: coefficient,
	}

	for _, l := range cart.products {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		t := l.Price * float64(qty)
		b.Products = append(b.Products, ProductLineTotal{ProductLine: l, Total: t})
		b.ProductSubtotal += t
	}

	for _, l := range cart.services {
		t := l.Price * ServiceQuantity(l.Quantity) * coefficient
		b.Services = append(b.Services, ServiceLineTotal{ServiceLine: l, Total: t})
		b.ServiceSubtotal += t
	}

	b.Total = b.ProductSubtotal + b.ServiceSubtotal
	return b
}

// ComputeTotal is the grand total of Price.
func ComputeTotal(cart *Cart, coefficient float64) float64 {
	return Price(cart, coefficient).Total
}
