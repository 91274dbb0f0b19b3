package main

import (
	"context"
	"sync"

	"renovo/internal/domain/catalog"
)

// memCatalog is an in-memory catalog.Store for handler tests. It enforces the
// same not-found and depth rules the repository does.
type memCatalog struct {
	mu       sync.Mutex
	nextID   int64
	cats     []catalog.Category
	products []catalog.Product
	services []catalog.Service
	presets  []catalog.Preset
	coeffs   []catalog.Coefficient
}

var _ catalog.Store = (*memCatalog)(nil)

func ptr(v int64) *int64 { return &v }

// newMemCatalog seeds Гостиная → Пол → Ламинат with two products, one service,
// one preset and both market coefficients.
func newMemCatalog() *memCatalog {
	m := &memCatalog{nextID: 100}
	m.cats = []catalog.Category{
		{ID: 1, Name: "Гостиная"},
		{ID: 2, Name: "Пол", ParentID: ptr(1)},
		{ID: 3, Name: "Ламинат", ParentID: ptr(2)},
	}
	m.products = []catalog.Product{
		{ID: 5, Name: "Ламинат дуб", Price: 100, CategoryID: 3},
		{ID: 7, Name: "Ламинат ясень", Price: 200, CategoryID: 3},
	}
	m.services = []catalog.Service{{ID: 9, Name: "Укладка", Price: 50}}
	p5, p7 := m.products[0], m.products[1]
	m.presets = []catalog.Preset{{ID: 1, Name: "Скандинавский", TotalPrice: 300,
		Items: []catalog.PresetItem{{Product: &p5}, {Product: nil}, {Product: &p7}}}}
	m.coeffs = []catalog.Coefficient{
		{ID: 1, Name: "Первичный рынок", Value: 1},
		{ID: 2, Name: "Вторичный рынок", Value: 1.2},
	}
	return m
}

func (m *memCatalog) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memCatalog) depth(id int64) int {
	d := -1
	for cur := &id; cur != nil && d < 16; {
		var next *int64
		found := false
		for _, c := range m.cats {
			if c.ID == *cur {
				next, found = c.ParentID, true
				break
			}
		}
		if !found {
			return -1
		}
		d++
		cur = next
	}
	return d
}

func (m *memCatalog) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalog.Category(nil), m.cats...), nil
}

func (m *memCatalog) GetCategory(ctx context.Context, id int64) (*catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cats {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, catalog.ErrCategoryNotFound
}

func (m *memCatalog) CreateCategory(ctx context.Context, c *catalog.Category) (*catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ParentID != nil {
		d := m.depth(*c.ParentID)
		if d < 0 {
			return nil, catalog.ErrInvalidParent
		}
		if d+1 > 2 {
			return nil, catalog.ErrTooDeep
		}
	}
	created := *c
	created.ID = m.id()
	m.cats = append(m.cats, created)
	return &created, nil
}

func (m *memCatalog) UpdateCategory(ctx context.Context, c *catalog.Category) (*catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cats {
		if m.cats[i].ID == c.ID {
			m.cats[i].Name, m.cats[i].Description = c.Name, c.Description
			updated := m.cats[i]
			return &updated, nil
		}
	}
	return nil, catalog.ErrCategoryNotFound
}

func (m *memCatalog) DeleteCategory(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cats {
		if c.ParentID != nil && *c.ParentID == id {
			return catalog.ErrInUse
		}
	}
	for i, c := range m.cats {
		if c.ID == id {
			m.cats = append(m.cats[:i], m.cats[i+1:]...)
			return nil
		}
	}
	return catalog.ErrCategoryNotFound
}

func (m *memCatalog) ListProducts(ctx context.Context, f catalog.ProductFilter) ([]catalog.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []catalog.Product
	for _, p := range m.products {
		if f.CategoryID == nil || p.CategoryID == *f.CategoryID {
			matched = append(matched, p)
		}
	}
	total := len(matched)
	if f.Limit > 0 {
		if f.Offset >= len(matched) {
			return []catalog.Product{}, total, nil
		}
		end := min(f.Offset+f.Limit, len(matched))
		matched = matched[f.Offset:end]
	}
	return matched, total, nil
}

func (m *memCatalog) ListProductsByCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error) {
	list, _, err := m.ListProducts(ctx, catalog.ProductFilter{CategoryID: &categoryID})
	return list, err
}

func (m *memCatalog) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (m *memCatalog) CreateProduct(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.depth(p.CategoryID) != 2 {
		return nil, catalog.ErrInvalidCategory
	}
	created := *p
	created.ID = m.id()
	m.products = append(m.products, created)
	return &created, nil
}

func (m *memCatalog) UpdateProduct(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = *p
			return p, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (m *memCatalog) DeleteProduct(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return catalog.ErrProductNotFound
}

func (m *memCatalog) SetProductImage(ctx context.Context, id int64, url *string) (*string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			prev := m.products[i].ImageURL
			m.products[i].ImageURL = url
			return prev, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (m *memCatalog) ReplaceProductAttributes(ctx context.Context, productID int64, attrs []catalog.Attribute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == productID {
			m.products[i].Attributes = attrs
			return nil
		}
	}
	return catalog.ErrProductNotFound
}

func (m *memCatalog) ReplaceProductServices(ctx context.Context, productID int64, serviceIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	refs := make([]catalog.ServiceRef, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		refs = append(refs, catalog.ServiceRef{ID: id})
	}
	for i := range m.products {
		if m.products[i].ID == productID {
			m.products[i].Services = refs
			return nil
		}
	}
	return catalog.ErrProductNotFound
}

func (m *memCatalog) ListServices(ctx context.Context) ([]catalog.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalog.Service(nil), m.services...), nil
}

func (m *memCatalog) GetService(ctx context.Context, id int64) (*catalog.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, catalog.ErrServiceNotFound
}

func (m *memCatalog) CreateService(ctx context.Context, s *catalog.Service) (*catalog.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.services {
		if existing.Name == s.Name {
			return nil, catalog.ErrDuplicate
		}
	}
	created := *s
	created.ID = m.id()
	m.services = append(m.services, created)
	return &created, nil
}

func (m *memCatalog) UpdateService(ctx context.Context, s *catalog.Service) (*catalog.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == s.ID {
			m.services[i] = *s
			return s, nil
		}
	}
	return nil, catalog.ErrServiceNotFound
}

func (m *memCatalog) DeleteService(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.services {
		if s.ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return catalog.ErrServiceNotFound
}

func (m *memCatalog) ListPresets(ctx context.Context) ([]catalog.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]catalog.Preset, 0, len(m.presets))
	for _, p := range m.presets {
		p.Items = nil
		out = append(out, p)
	}
	return out, nil
}

func (m *memCatalog) ListPresetsDetailed(ctx context.Context) ([]catalog.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalog.Preset(nil), m.presets...), nil
}

func (m *memCatalog) GetPreset(ctx context.Context, id int64) (*catalog.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.presets {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, catalog.ErrPresetNotFound
}

func (m *memCatalog) CreatePreset(ctx context.Context, in catalog.PresetInput) (*catalog.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := catalog.Preset{ID: m.id(), Name: in.Name, Description: in.Description}
	for _, pid := range in.ProductIDs {
		var found *catalog.Product
		for i := range m.products {
			if m.products[i].ID == pid {
				p := m.products[i]
				found = &p
			}
		}
		if found == nil {
			return nil, catalog.ErrProductNotFound
		}
		created.TotalPrice += found.Price
		created.Items = append(created.Items, catalog.PresetItem{Product: found})
	}
	m.presets = append(m.presets, created)
	return &created, nil
}

func (m *memCatalog) SetPresetImage(ctx context.Context, id int64, url *string) (*string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.presets {
		if m.presets[i].ID == id {
			prev := m.presets[i].ImageURL
			m.presets[i].ImageURL = url
			return prev, nil
		}
	}
	return nil, catalog.ErrPresetNotFound
}

func (m *memCatalog) DeletePreset(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.presets {
		if p.ID == id {
			m.presets = append(m.presets[:i], m.presets[i+1:]...)
			return nil
		}
	}
	return catalog.ErrPresetNotFound
}

func (m *memCatalog) ListCoefficients(ctx context.Context) ([]catalog.Coefficient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalog.Coefficient(nil), m.coeffs...), nil
}

func (m *memCatalog) GetCoefficient(ctx context.Context, id int64) (*catalog.Coefficient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.coeffs {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, catalog.ErrCoefficientNotFound
}

func (m *memCatalog) CreateCoefficient(ctx context.Context, c *catalog.Coefficient) (*catalog.Coefficient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *c
	created.ID = m.id()
	m.coeffs = append(m.coeffs, created)
	return &created, nil
}

func (m *memCatalog) UpdateCoefficient(ctx context.Context, c *catalog.Coefficient) (*catalog.Coefficient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.coeffs {
		if m.coeffs[i].ID == c.ID {
			m.coeffs[i] = *c
			return c, nil
		}
	}
	return nil, catalog.ErrCoefficientNotFound
}

func (m *memCatalog) DeleteCoefficient(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.coeffs {
		if c.ID == id {
			m.coeffs = append(m.coeffs[:i], m.coeffs[i+1:]...)
			return nil
		}
	}
	return catalog.ErrCoefficientNotFound
}
