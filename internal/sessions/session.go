package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"renovo/internal/configurator"
	"renovo/internal/domain/catalog"
	"renovo/internal/snapshot"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownProduct   = errors.New("product is not in the catalog")
	ErrUnknownService   = errors.New("service is not in the catalog")
	ErrUnknownPreset    = errors.New("preset is not in the catalog")
	ErrInvalidSelection = errors.New("category cannot be selected at this point")
)

// Session is one user's configurator state. All methods serialize on the
// session's mutex, so each request runs to completion before the next one
// touches the same session.
//
// Every operation takes the snapshot the request was served with. When it is
// newer than the one the session last saw, the selection is rebased onto it
// first. Cart lines keep the prices captured when they were added.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu        sync.Mutex
	snap      *snapshot.Snapshot
	selection *configurator.Selection
	cart      *configurator.Cart
	market    configurator.MarketType
	touchedAt time.Time
}

func newSession(snap *snapshot.Snapshot, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		snap:      snap,
		selection: configurator.NewSelection(snap.Categories),
		cart:      configurator.NewCart(),
		touchedAt: now,
	}
}

func (s *Session) syncLocked(snap *snapshot.Snapshot) {
	if snap == nil || snap == s.snap {
		return
	}
	if s.snap != nil && snap.Version < s.snap.Version {
		return
	}
	s.snap = snap
	s.selection.Rebase(snap.Categories)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.touchedAt = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

func (s *Session) SelectRoom(snap *snapshot.Snapshot, id int64) error {
	return s.selectLocked(snap, func(sel *configurator.Selection) bool { return sel.SelectRoom(id) })
}

func (s *Session) SelectElement(snap *snapshot.Snapshot, id int64) error {
	return s.selectLocked(snap, func(sel *configurator.Selection) bool { return sel.SelectElement(id) })
}

func (s *Session) SelectSubElement(snap *snapshot.Snapshot, id int64) error {
	return s.selectLocked(snap, func(sel *configurator.Selection) bool { return sel.SelectSubElement(id) })
}

func (s *Session) selectLocked(snap *snapshot.Snapshot, fn func(*configurator.Selection) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(snap)
	if !fn(s.selection) {
		return ErrInvalidSelection
	}
	return nil
}

// AddProduct puts a catalog product in the cart. Adding a product that is
// already there changes nothing.
func (s *Session) AddProduct(snap *snapshot.Snapshot, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(snap)

	p, ok := s.snap.Product(productID)
	if !ok {
		return ErrUnknownProduct
	}
	s.cart.AddProduct(*p)
	return nil
}

func (s *Session) RemoveProduct(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveProduct(productID)
}

func (s *Session) SetProductQuantity(productID int64, qty float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetProductQuantity(productID, qty)
}

func (s *Session) AddService(snap *snapshot.Snapshot, serviceID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(snap)

	sv, ok := s.snap.Service(serviceID)
	if !ok {
		return ErrUnknownService
	}
	s.cart.AddService(*sv)
	return nil
}

func (s *Session) RemoveService(serviceID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveService(serviceID)
}

// UpdateService sets the quantity and/or unit of a service line; nil fields
// are left as they are.
func (s *Session) UpdateService(serviceID int64, qty *float64, unit *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty != nil {
		s.cart.SetServiceQuantity(serviceID, *qty)
	}
	if unit != nil {
		s.cart.SetServiceUnit(serviceID, *unit)
	}
}

// ApplyPreset merges a catalog preset into the cart and reports how many
// products were added.
func (s *Session) ApplyPreset(snap *snapshot.Snapshot, presetID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(snap)

	p, ok := s.snap.Preset(presetID)
	if !ok {
		return 0, ErrUnknownPreset
	}
	return configurator.ApplyPreset(s.cart, *p), nil
}

func (s *Session) SetMarket(market configurator.MarketType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.market = market
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Selection describes the drilled-down path and what can be chosen next.
type Selection struct {
	Stage       string             `json:"stage"`
	Room        *catalog.Category  `json:"room"`
	Element     *catalog.Category  `json:"element"`
	SubElement  *catalog.Category  `json:"sub_element"`
	Rooms       []catalog.Category `json:"rooms"`
	Elements    []catalog.Category `json:"elements"`
	SubElements []catalog.Category `json:"sub_elements"`
}

// View is everything the configurator page renders for a session.
type View struct {
	SessionID      uuid.UUID               `json:"session_id"`
	CatalogVersion uint64                  `json:"catalog_version"`
	Selection      Selection               `json:"selection"`
	Products       []catalog.Product       `json:"products"`
	Market         configurator.MarketType `json:"market"`
	Pricing        configurator.Breakdown  `json:"pricing"`
}

func (s *Session) View(snap *snapshot.Snapshot) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(snap)

	sel := s.selection
	return View{
		SessionID:      s.ID,
		CatalogVersion: s.snap.Version,
		Selection: Selection{
			Stage:       sel.Stage().String(),
			Room:        sel.Room(),
			Element:     sel.Element(),
			SubElement:  sel.SubElement(),
			Rooms:       sel.Rooms(),
			Elements:    sel.Elements(),
			SubElements: sel.SubElements(),
		},
		Products: configurator.FilterByCategory(s.snap.Products, sel.SubElementID()),
		Market:   s.market,
		Pricing:  s.priceLocked(),
	}
}

// Price returns the current breakdown using the coefficient of the chosen
// market type.
func (s *Session) Price(snap *snapshot.Snapshot) configurator.Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(snap)
	return s.priceLocked()
}

func (s *Session) priceLocked() configurator.Breakdown {
	coeff := configurator.ResolveCoefficient(s.snap.Coefficients, s.market)
	return configurator.Price(s.cart, coeff)
}
