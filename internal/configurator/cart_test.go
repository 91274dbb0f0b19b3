package configurator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovo/internal/configurator"
	"renovo/internal/domain/catalog"
)

func product(id int64, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "product", Price: price}
}

func service(id int64, price float64) catalog.Service {
	return catalog.Service{ID: id, Name: "service", Price: price}
}

func TestFilterByCategory(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, CategoryID: 100},
		{ID: 2, CategoryID: 101},
		{ID: 3, CategoryID: 100},
	}

	got := configurator.FilterByCategory(products, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = configurator.FilterByCategory(products, ptr(100))
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Empty(t, configurator.FilterByCategory(products, ptr(555)))
}

func TestCart_AddProductTwiceKeepsQuantityOne(t *testing.T) {
	c := configurator.NewCart()
	assert.True(t, c.AddProduct(product(5, 100)))
	assert.False(t, c.AddProduct(product(5, 100)))

	lines := c.Products()
	require.Len(t, lines, 1)
	assert.Equal(t, configurator.ProductLine{ProductID: 5, Name: "product", Price: 100, Quantity: 1}, lines[0])
}

func TestCart_AddedLineKeepsCapturedPrice(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(5, 100))
	c.AddProduct(product(5, 999))

	assert.Equal(t, 100.0, c.Products()[0].Price)
}

func TestCart_SetProductQuantity(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(5, 100))

	assert.True(t, c.SetProductQuantity(5, 3))
	assert.True(t, c.SetProductQuantity(5, 7))
	assert.Equal(t, 7, c.Products()[0].Quantity, "last write wins")

	assert.False(t, c.SetProductQuantity(6, 2), "unknown id is ignored")
	assert.Len(t, c.Products(), 1)
}

func TestProductQuantity(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{in: 3, want: 3},
		{in: 2.9, want: 2},
		{in: 1, want: 1},
		{in: 0.5, want: 1},
		{in: 0, want: 1},
		{in: -4, want: 1},
		{in: math.NaN(), want: 1},
		{in: math.Inf(1), want: 1},
		{in: math.Inf(-1), want: 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, configurator.ProductQuantity(tc.in), "input %v", tc.in)
	}
}

func TestServiceQuantity(t *testing.T) {
	assert.Equal(t, 2.5, configurator.ServiceQuantity(2.5))
	assert.Equal(t, 1.0, configurator.ServiceQuantity(0.3))
	assert.Equal(t, 1.0, configurator.ServiceQuantity(-1))
	assert.Equal(t, 1.0, configurator.ServiceQuantity(math.NaN()))
}

func TestCart_RemoveProduct(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(1, 10))
	c.AddProduct(product(2, 20))
	c.AddProduct(product(3, 30))

	assert.True(t, c.RemoveProduct(2))
	assert.False(t, c.RemoveProduct(2))
	assert.False(t, c.HasProduct(2))

	lines := c.Products()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(3), lines[1].ProductID)
}

func TestCart_Services(t *testing.T) {
	c := configurator.NewCart()
	assert.True(t, c.AddService(service(9, 50)))
	assert.False(t, c.AddService(service(9, 50)))

	assert.True(t, c.SetServiceQuantity(9, 12.5))
	assert.True(t, c.SetServiceUnit(9, "м²"))
	assert.False(t, c.SetServiceUnit(10, "ч"))

	lines := c.Services()
	require.Len(t, lines, 1)
	assert.Equal(t, configurator.ServiceLine{ServiceID: 9, Name: "service", Price: 50, Quantity: 12.5, Unit: "м²"}, lines[0])

	assert.True(t, c.SetServiceQuantity(9, 0))
	assert.Equal(t, 1.0, c.Services()[0].Quantity)

	assert.True(t, c.RemoveService(9))
	assert.False(t, c.HasService(9))
}

func TestCart_ViewsAreCopies(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(1, 10))

	lines := c.Products()
	lines[0].Quantity = 40

	assert.Equal(t, 1, c.Products()[0].Quantity)
}

func TestCart_Clear(t *testing.T) {
	c := configurator.NewCart()
	c.AddProduct(product(1, 10))
	c.AddService(service(2, 10))
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Products())
}
