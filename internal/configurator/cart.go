package configurator

import (
	"math"

	"renovo/internal/domain/catalog"
)

type ProductLine struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type ServiceLine struct {
	ServiceID int64   `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

// Cart is the selection a configurator session builds up: at most one line
// per product id and one per service id. Every operation is total; unknown
// ids are ignored.
type Cart struct {
	products []ProductLine
	services []ServiceLine
}

func NewCart() *Cart {
	return &Cart{}
}

// ProductQuantity coerces raw input to a positive whole quantity. Fractions
// are truncated; anything that ends up below 1 (including NaN and ±Inf)
// becomes 1.
func ProductQuantity(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// ServiceQuantity coerces raw input for a service line, which may be
// fractional (square meters, hours) but never below 1.
func ServiceQuantity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 1
	}
	return v
}

// ---------- products ----------

// AddProduct inserts a line with quantity 1 unless the product is already in
// the cart. A repeated add does not bump the quantity. It reports whether a
// line was added.
func (c *Cart) AddProduct(p catalog.Product) bool {
	if c.productIndex(p.ID) >= 0 {
		return false
	}
	c.products = append(c.products, ProductLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
	return true
}

func (c *Cart) RemoveProduct(productID int64) bool {
	i := c.productIndex(productID)
	if i < 0 {
		return false
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	return true
}

func (c *Cart) SetProductQuantity(productID int64, qty float64) bool {
	i := c.productIndex(productID)
	if i < 0 {
		return false
	}
	c.products[i].Quantity = ProductQuantity(qty)
	return true
}

func (c *Cart) HasProduct(productID int64) bool {
	return c.productIndex(productID) >= 0
}

func (c *Cart) productIndex(id int64) int {
	for i := range c.products {
		if c.products[i].ProductID == id {
			return i
		}
	}
	return -1
}

// ---------- services ----------

// AddService inserts a line with quantity 1 and an empty unit unless the
// service is already in the cart.
func (c *Cart) AddService(s catalog.Service) bool {
	if c.serviceIndex(s.ID) >= 0 {
		return false
	}
	c.services = append(c.services, ServiceLine{
		ServiceID: s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Quantity:  1,
	})
	return true
}

func (c *Cart) RemoveService(serviceID int64) bool {
	i := c.serviceIndex(serviceID)
	if i < 0 {
		return false
	}
	c.services = append(c.services[:i], c.services[i+1:]...)
	return true
}

func (c *Cart) SetServiceQuantity(serviceID int64, qty float64) bool {
	i := c.serviceIndex(serviceID)
	if i < 0 {
		return false
	}
	c.services[i].Quantity = ServiceQuantity(qty)
	return true
}

func (c *Cart) SetServiceUnit(serviceID int64, unit string) bool {
	i := c.serviceIndex(serviceID)
	if i < 0 {
		return false
	}
	c.services[i].Unit = unit
	return true
}

func (c *Cart) HasService(serviceID int64) bool {
	return c.serviceIndex(serviceID) >= 0
}

func (c *Cart) serviceIndex(id int64) int {
	for i := range c.services {
		if c.services[i].ServiceID == id {
			return i
		}
	}
	return -1
}

// ---------- views ----------

// Products returns a copy of the product lines in insertion order.
func (c *Cart) Products() []ProductLine {
	out := make([]ProductLine, len(c.products))
	copy(out, c.products)
	return out
}

// Services returns a copy of the service lines in insertion order.
func (c *Cart) Services() []ServiceLine {
	out := make([]ServiceLine, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Cart) Len() int {
	return len(c.products) + len(c.services)
}

func (c *Cart) Clear() {
	c.products = nil
	c.services = nil
}
