package catalog

import (
	"strings"
	"time"
)

const (
	maxNameLength          = 255
	maxPresetNameLength    = 100
	maxPresetDescLength    = 500
	maxPresetItems         = 100
	maxAttributeUnitLength = 50
)

// Category is one node of the room → element → sub-element hierarchy.
// Rooms have a nil ParentID.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ParentID    *int64    `json:"parent_id"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsRoom reports whether the category sits at the top of the hierarchy.
func (c Category) IsRoom() bool {
	return c.ParentID == nil
}

type Attribute struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Unit  *string `json:"unit,omitempty" validate:"omitempty,max=50"`
	Value string  `json:"value" validate:"required"`
}

// ServiceRef points at a service a product is commonly paired with.
type ServiceRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int64        `json:"product_id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description *string      `json:"description,omitempty"`
	ImageURL    *string      `json:"image_url,omitempty"`
	CategoryID  int64        `json:"category_id"`
	Attributes  []Attribute  `json:"attributes"`
	Services    []ServiceRef `json:"services"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// PresetItem wraps a product of a preset. Product is nil when the product
// behind the item was removed from the catalog.
type PresetItem struct {
	Product *Product `json:"product"`
}

// Preset is a named, ordered bundle of products (a "style").
type Preset struct {
	ID          int64        `json:"preset_id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	ImageURL    *string      `json:"image_url,omitempty"`
	TotalPrice  float64      `json:"total_price"`
	Items       []PresetItem `json:"items,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Coefficient is a named multiplier applied to service prices.
type Coefficient struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ProductFilter narrows ListProducts. A zero Limit means no limit.
type ProductFilter struct {
	CategoryID *int64
	Limit      int
	Offset     int
}

// PresetInput is what admins submit when creating a preset.
type PresetInput struct {
	Name        string
	Description *string
	ImageURL    *string
	ProductIDs  []int64
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateCategory(c *Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := validateName(c.Name); err != nil {
		return err
	}
	if c.ParentID != nil && *c.ParentID == c.ID && c.ID != 0 {
		return ErrInvalidParent
	}
	return nil
}

func validateProduct(p *Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateName(p.Name); err != nil {
		return err
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.CategoryID <= 0 {
		return ErrInvalidCategory
	}
	for _, a := range p.Attributes {
		if strings.TrimSpace(a.Name) == "" {
			return ErrEmptyName
		}
		if a.Unit != nil && len(*a.Unit) > maxAttributeUnitLength {
			return ErrNameTooLong
		}
	}
	return nil
}

func validateService(s *Service) error {
	s.Name = strings.TrimSpace(s.Name)
	if err := validateName(s.Name); err != nil {
		return err
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func validatePreset(in *PresetInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrEmptyName
	}
	if len(in.Name) > maxPresetNameLength {
		return ErrNameTooLong
	}
	if in.Description != nil && len(*in.Description) > maxPresetDescLength {
		return ErrDescriptionTooLong
	}
	if len(in.ProductIDs) == 0 {
		return ErrPresetEmpty
	}
	if len(in.ProductIDs) > maxPresetItems {
		return ErrPresetTooLarge
	}
	return nil
}

func validateCoefficient(c *Coefficient) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := validateName(c.Name); err != nil {
		return err
	}
	if c.Value < 0 {
		return ErrNegativeCoefficient
	}
	return nil
}
