package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"renovo/internal/configurator"
	"renovo/internal/domain/catalog"
)

const DefaultTTL = 5 * time.Minute

// ErrStale is returned by Refresh when a load that started later has already
// been installed; the result of the older load is dropped.
var ErrStale = errors.New("catalog snapshot is older than the installed one")

// Source is the slice of catalog.Store a snapshot is loaded from.
type Source interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	ListProducts(ctx context.Context, f catalog.ProductFilter) ([]catalog.Product, int, error)
	ListServices(ctx context.Context) ([]catalog.Service, error)
	ListPresetsDetailed(ctx context.Context) ([]catalog.Preset, error)
	ListCoefficients(ctx context.Context) ([]catalog.Coefficient, error)
}

// Snapshot is an immutable view of the whole catalog as the configurator
// needs it. Callers must not modify the slices.
type Snapshot struct {
	Version      uint64
	LoadedAt     time.Time
	Categories   []catalog.Category
	Tree         *configurator.Tree
	Products     []catalog.Product
	Services     []catalog.Service
	Presets      []catalog.Preset
	Coefficients []catalog.Coefficient

	products map[int64]*catalog.Product
	services map[int64]*catalog.Service
	presets  map[int64]*catalog.Preset
}

func New(version uint64, categories []catalog.Category, products []catalog.Product,
	services []catalog.Service, presets []catalog.Preset, coeffs []catalog.Coefficient) *Snapshot {

	s := &Snapshot{
		Version:      version,
		LoadedAt:     time.Now(),
		Categories:   categories,
		Tree:         configurator.BuildTree(categories),
		Products:     products,
		Services:     services,
		Presets:      presets,
		Coefficients: coeffs,
		products:     make(map[int64]*catalog.Product, len(products)),
		services:     make(map[int64]*catalog.Service, len(services)),
		presets:      make(map[int64]*catalog.Preset, len(presets)),
	}
	for i := range products {
		s.products[products[i].ID] = &products[i]
	}
	for i := range services {
		s.services[services[i].ID] = &services[i]
	}
	for i := range presets {
		s.presets[presets[i].ID] = &presets[i]
	}
	return s
}

func (s *Snapshot) Product(id int64) (*catalog.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func (s *Snapshot) Service(id int64) (*catalog.Service, bool) {
	sv, ok := s.services[id]
	return sv, ok
}

func (s *Snapshot) Preset(id int64) (*catalog.Preset, bool) {
	p, ok := s.presets[id]
	return p, ok
}

// Loader keeps the latest catalog snapshot in memory and reloads it from the
// source once it is older than the TTL or after Invalidate.
type Loader struct {
	src    Source
	ttl    time.Duration
	logger *zap.SugaredLogger

	seq atomic.Uint64

	mu      sync.RWMutex
	current *Snapshot
	dirty   bool
	// last load sequence issued before the most recent Invalidate; only a
	// load started after it may clear dirty
	invalidatedAt uint64

	// loads are coalesced: concurrent Get calls wait on the same refresh
	loadMu sync.Mutex
}

func NewLoader(src Source, ttl time.Duration, logger *zap.SugaredLogger) *Loader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Loader{src: src, ttl: ttl, logger: logger}
}

// Current returns the installed snapshot without triggering a load; nil
// before the first successful load.
func (l *Loader) Current() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *Loader) fresh() (*Snapshot, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.current != nil && !l.dirty && time.Since(l.current.LoadedAt) < l.ttl {
		return l.current, true
	}
	return l.current, false
}

// Get returns a fresh snapshot, loading one when the cached snapshot expired
// or was invalidated. If the reload fails but an older snapshot exists, the
// older one is served and the failure is logged.
func (l *Loader) Get(ctx context.Context) (*Snapshot, error) {
	if s, ok := l.fresh(); ok {
		return s, nil
	}

	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	// another caller may have refreshed while we waited
	if s, ok := l.fresh(); ok {
		return s, nil
	}

	s, err := l.Refresh(ctx)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, ErrStale) {
		return l.Current(), nil
	}
	if prev := l.Current(); prev != nil {
		l.logger.Warnw("catalog reload failed, serving previous snapshot", "version", prev.Version, "error", err)
		return prev, nil
	}
	return nil, err
}

// Refresh loads a snapshot unconditionally and installs it unless a load that
// started later got installed first, in which case ErrStale is returned.
func (l *Loader) Refresh(ctx context.Context) (*Snapshot, error) {
	version := l.seq.Add(1)

	s, err := l.load(ctx, version)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil && l.current.Version > version {
		l.logger.Infow("discarding stale catalog snapshot", "version", version, "installed", l.current.Version)
		return nil, ErrStale
	}
	l.current = s
	if version > l.invalidatedAt {
		l.dirty = false
	}

	if len(s.Tree.Anomalies) > 0 {
		l.logger.Warnw("category tree anomalies", "version", version, "anomalies", s.Tree.Anomalies)
	}
	return s, nil
}

// Invalidate marks the installed snapshot as outdated; the next Get reloads.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.dirty = true
	l.invalidatedAt = l.seq.Load()
	l.mu.Unlock()
}

func (l *Loader) load(ctx context.Context, version uint64) (*Snapshot, error) {
	categories, err := l.src.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	// limit 0 lists every product
	products, _, err := l.src.ListProducts(ctx, catalog.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	services, err := l.src.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	presets, err := l.src.ListPresetsDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	coeffs, err := l.src.ListCoefficients(ctx)
	if err != nil {
		return nil, fmt.Errorf("load coefficients: %w", err)
	}
	return New(version, categories, products, services, presets, coeffs), nil
}
