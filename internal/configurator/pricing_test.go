package configurator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovo/internal/configurator"
	"renovo/internal/domain/catalog"
)

func TestApplyPreset_SkipsProductsAlreadyInCart(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(5, 100))
	c.SetProductQuantity(5, 4)

	p5, p7 := product(5, 100), product(7, 70)
	preset := catalog.Preset{Items: []catalog.PresetItem{{Product: &p5}, {Product: &p7}}}

	assert.Equal(t, 1, configurator.ApplyPreset(c, preset))

	lines := c.Products()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(5), lines[0].ProductID)
	assert.Equal(t, 4, lines[0].Quantity, "existing line is left alone")
	assert.Equal(t, int64(7), lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)

	assert.Equal(t, 0, configurator.ApplyPreset(c, preset), "second application adds nothing")
	assert.Len(t, c.Products(), 2)
}

func TestApplyPreset_SkipsDeletedProducts(t *testing.T) {
	c := configurator.NewCart()
	p1 := product(1, 10)
	preset := catalog.Preset{Items: []catalog.PresetItem{{Product: nil}, {Product: &p1}}}

	assert.Equal(t, 1, configurator.ApplyPreset(c, preset))
	assert.True(t, c.HasProduct(1))
}

func TestApplyPreset_RepeatedItemAddsOneLine(t *testing.T) {
	c := configurator.NewCart()
	p5a, p5b := product(5, 100), product(5, 100)
	preset := catalog.Preset{Items: []catalog.PresetItem{{Product: &p5a}, {Product: &p5b}}}

	assert.Equal(t, 1, configurator.ApplyPreset(c, preset))
	lines := c.Products()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestApplyPreset_Empty(t *testing.T) {
	c := configurator.NewCart()
	assert.Equal(t, 0, configurator.ApplyPreset(c, catalog.Preset{}))
	assert.Equal(t, 0, c.Len())
}

func TestPrice_MarketCoefficientAppliesToServicesOnly(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(5, 100))
	c.SetProductQuantity(5, 2)
	c.AddService(service(9, 50))

	b := configurator.Price(c, 1.2)

	assert.InDelta(t, 200, b.ProductSubtotal, 1e-9)
	assert.InDelta(t, 60, b.ServiceSubtotal, 1e-9)
	assert.InDelta(t, 260, b.Total, 1e-9)
	assert.Equal(t, 1.2, b.Coefficient)
	require.Len(t, b.Products, 1)
	assert.InDelta(t, 200, b.Products[0].Total, 1e-9)
	require.Len(t, b.Services, 1)
	assert.InDelta(t, 60, b.Services[0].Total, 1e-9)

	assert.InDelta(t, 260, configurator.ComputeTotal(c, 1.2), 1e-9)
}

func TestPrice_EmptyCart(t *testing.T) {
	b := configurator.Price(configurator.NewCart(), 1)
	assert.Zero(t, b.Total)
	assert.NotNil(t, b.Products)
	assert.NotNil(t, b.Services)
}

func TestPrice_LinearInQuantity(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(1, 37.5))
	c.AddService(service(2, 12))

	c.SetProductQuantity(1, 1)
	c.SetServiceQuantity(2, 1)
	one := configurator.ComputeTotal(c, 1.5)

	c.SetProductQuantity(1, 3)
	c.SetServiceQuantity(2, 3)
	three := configurator.ComputeTotal(c, 1.5)

	assert.InDelta(t, 3*one, three, 1e-9)
}

func TestPrice_FractionalServiceQuantity(t *testing.T) {
	c := configurator.NewCart()
	c.AddService(service(2, 400))
	c.SetServiceQuantity(2, 12.5)

	assert.InDelta(t, 5000, configurator.ComputeTotal(c, 1), 1e-9)
}

func TestResolveCoefficient(t *testing.T) {
	coeffs := []catalog.Coefficient{
		{ID: 1, Name: "Первичный рынок", Value: 1.0},
		{ID: 2, Name: "Вторичный рынок", Value: 1.2},
	}

	assert.Equal(t, 1.2, configurator.ResolveCoefficient(coeffs, configurator.MarketSecondary))
	assert.Equal(t, 1.0, configurator.ResolveCoefficient(coeffs, configurator.MarketPrimary))
	assert.Equal(t, configurator.DefaultCoefficient, configurator.ResolveCoefficient(coeffs, configurator.MarketNone))
	assert.Equal(t, configurator.DefaultCoefficient, configurator.ResolveCoefficient(nil, configurator.MarketSecondary))
}

func TestParseMarketType(t *testing.T) {
	assert.Equal(t, configurator.MarketPrimary, configurator.ParseMarketType(" Primary "))
	assert.Equal(t, configurator.MarketSecondary, configurator.ParseMarketType("secondary"))
	assert.Equal(t, configurator.MarketNone, configurator.ParseMarketType("rural"))
	assert.Equal(t, configurator.MarketNone, configurator.ParseMarketType(""))
}
