package catalog_test

import (
	"context"
	"testing"
	"time"

	"renovo/internal/domain/catalog"
	"renovo/internal/migrator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbName = "renovo"
	dbUser = "renovo"
	dbPass = "renovo"
)

type RepositorySuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repo      *catalog.Repository
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPass),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2*time.Minute),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	res, err := migrator.Run(dsn, migrator.Options{Mode: migrator.Up})
	s.Require().NoError(err)
	s.Require().False(res.Dirty)

	s.pool, err = pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)
	s.repo = catalog.NewRepository(s.pool)
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `
		TRUNCATE preset_items, presets, product_services, product_attributes,
		         products, services, categories RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

// tree creates room → element → sub-element and returns their ids.
func (s *RepositorySuite) tree() (room, element, sub int64) {
	r, err := s.repo.CreateCategory(s.ctx, &catalog.Category{Name: "Кухня"})
	s.Require().NoError(err)
	e, err := s.repo.CreateCategory(s.ctx, &catalog.Category{Name: "Стены", ParentID: &r.ID})
	s.Require().NoError(err)
	sub1, err := s.repo.CreateCategory(s.ctx, &catalog.Category{Name: "Плитка", ParentID: &e.ID})
	s.Require().NoError(err)
	return r.ID, e.ID, sub1.ID
}

func (s *RepositorySuite) TestCategories_DepthIsLimited() {
	_, _, sub := s.tree()

	_, err := s.repo.CreateCategory(s.ctx, &catalog.Category{Name: "Четвёртый", ParentID: &sub})
	s.ErrorIs(err, catalog.ErrTooDeep)

	missing := int64(999)
	_, err = s.repo.CreateCategory(s.ctx, &catalog.Category{Name: "Сирота", ParentID: &missing})
	s.ErrorIs(err, catalog.ErrInvalidParent)

	_, err = s.repo.CreateCategory(s.ctx, &catalog.Category{Name: "  "})
	s.ErrorIs(err, catalog.ErrEmptyName)
}

func (s *RepositorySuite) TestCategories_UpdateRejectsCycles() {
	room, element, sub := s.tree()

	_, err := s.repo.UpdateCategory(s.ctx, &catalog.Category{ID: room, Name: "Кухня", ParentID: &sub})
	s.ErrorIs(err, catalog.ErrInvalidParent)

	// moving the element (height 1) under a sub-element would nest four levels
	other, err := s.repo.CreateCategory(s.ctx, &catalog.Category{Name: "Ванная"})
	s.Require().NoError(err)
	_, err = s.repo.UpdateCategory(s.ctx, &catalog.Category{ID: element, Name: "Стены", ParentID: &other.ID})
	s.NoError(err)
	_, err = s.repo.UpdateCategory(s.ctx, &catalog.Category{ID: element, Name: "Стены", ParentID: &sub})
	s.ErrorIs(err, catalog.ErrInvalidParent)

	list, err := s.repo.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 4)
}

func (s *RepositorySuite) TestCategories_DeleteInUse() {
	room, _, _ := s.tree()
	s.ErrorIs(s.repo.DeleteCategory(s.ctx, room), catalog.ErrInUse)
	s.ErrorIs(s.repo.DeleteCategory(s.ctx, 12345), catalog.ErrCategoryNotFound)
}

func (s *RepositorySuite) TestProducts_CreateWithRelations() {
	room, _, sub := s.tree()
	svc, err := s.repo.CreateService(s.ctx, &catalog.Service{Name: "Укладка плитки", Price: 800})
	s.Require().NoError(err)

	unit := "мм"
	p, err := s.repo.CreateProduct(s.ctx, &catalog.Product{
		Name:       "Керамогранит",
		Price:      1450.5,
		CategoryID: sub,
		Attributes: []catalog.Attribute{
			{Name: "Толщина", Unit: &unit, Value: "9"},
			{Name: "Цвет", Value: "серый"},
		},
		Services: []catalog.ServiceRef{{ID: svc.ID}},
	})
	s.Require().NoError(err)
	s.InDelta(1450.5, p.Price, 1e-9)
	s.Require().Len(p.Attributes, 2)
	s.Equal("Толщина", p.Attributes[0].Name)
	s.Require().Len(p.Services, 1)
	s.Equal("Укладка плитки", p.Services[0].Name)

	_, err = s.repo.CreateProduct(s.ctx, &catalog.Product{Name: "Не туда", Price: 1, CategoryID: room})
	s.ErrorIs(err, catalog.ErrInvalidCategory)

	_, err = s.repo.CreateProduct(s.ctx, &catalog.Product{
		Name: "Без услуги", Price: 1, CategoryID: sub,
		Services: []catalog.ServiceRef{{ID: 777}},
	})
	s.ErrorIs(err, catalog.ErrServiceNotFound)

	page, total, err := s.repo.ListProducts(s.ctx, catalog.ProductFilter{CategoryID: &sub, Limit: 10})
	s.Require().NoError(err)
	s.Equal(1, total, "failed creates must roll back")
	s.Len(page, 1)
}

func (s *RepositorySuite) TestProducts_PaginationAndImage() {
	_, _, sub := s.tree()
	for i := 0; i < 5; i++ {
		_, err := s.repo.CreateProduct(s.ctx, &catalog.Product{Name: "Плитка", Price: float64(100 + i), CategoryID: sub})
		s.Require().NoError(err)
	}

	page, total, err := s.repo.ListProducts(s.ctx, catalog.ProductFilter{Limit: 2, Offset: 4})
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Len(page, 1)

	page, total, err = s.repo.ListProducts(s.ctx, catalog.ProductFilter{Limit: 2, Offset: 10})
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Empty(page)

	url := "https://res.cloudinary.com/demo/image/upload/v1/products/a.jpg"
	prev, err := s.repo.SetProductImage(s.ctx, 1, &url)
	s.Require().NoError(err)
	s.Nil(prev)
	prev, err = s.repo.SetProductImage(s.ctx, 1, nil)
	s.Require().NoError(err)
	s.Require().NotNil(prev)
	s.Equal(url, *prev)

	_, err = s.repo.SetProductImage(s.ctx, 999, nil)
	s.ErrorIs(err, catalog.ErrProductNotFound)
}

func (s *RepositorySuite) TestPresets_KeepSlotOfDeletedProduct() {
	_, _, sub := s.tree()
	a, err := s.repo.CreateProduct(s.ctx, &catalog.Product{Name: "A", Price: 100, CategoryID: sub})
	s.Require().NoError(err)
	b, err := s.repo.CreateProduct(s.ctx, &catalog.Product{Name: "B", Price: 200, CategoryID: sub})
	s.Require().NoError(err)

	_, err = s.repo.CreatePreset(s.ctx, catalog.PresetInput{Name: "Пусто"})
	s.ErrorIs(err, catalog.ErrPresetEmpty)
	_, err = s.repo.CreatePreset(s.ctx, catalog.PresetInput{Name: "Битый", ProductIDs: []int64{a.ID, 999}})
	s.ErrorIs(err, catalog.ErrProductNotFound)

	p, err := s.repo.CreatePreset(s.ctx, catalog.PresetInput{Name: "Лофт", ProductIDs: []int64{b.ID, a.ID}})
	s.Require().NoError(err)
	s.InDelta(300, p.TotalPrice, 1e-9)
	s.Require().Len(p.Items, 2)
	s.Equal(b.ID, p.Items[0].Product.ID)

	s.Require().NoError(s.repo.DeleteProduct(s.ctx, b.ID))

	got, err := s.repo.GetPreset(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Items, 2)
	s.Nil(got.Items[0].Product)
	s.Equal(a.ID, got.Items[1].Product.ID)

	list, err := s.repo.ListPresetsDetailed(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RepositorySuite) TestCoefficients_SeededAndUnique() {
	list, err := s.repo.ListCoefficients(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	_, err = s.repo.CreateCoefficient(s.ctx, &catalog.Coefficient{Name: "Вторичный рынок", Value: 2})
	s.ErrorIs(err, catalog.ErrDuplicate)
	_, err = s.repo.CreateCoefficient(s.ctx, &catalog.Coefficient{Name: "Новый", Value: -1})
	s.ErrorIs(err, catalog.ErrNegativeCoefficient)
}

func (s *RepositorySuite) TestWithTx_RollsBack() {
	err := s.repo.WithTx(s.ctx, func(tx *catalog.Repository) error {
		_, err := tx.CreateService(s.ctx, &catalog.Service{Name: "Временная", Price: 1})
		require.NoError(s.T(), err)
		return assert.AnError
	})
	s.ErrorIs(err, assert.AnError)

	list, err := s.repo.ListServices(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}
