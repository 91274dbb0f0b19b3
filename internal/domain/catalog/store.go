package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"renovo/internal/infra/dbx"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrPresetNotFound      = errors.New("preset not found")
	ErrCoefficientNotFound = errors.New("coefficient not found")

	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNameTooLong         = errors.New("name is too long")
	ErrDescriptionTooLong  = errors.New("description is too long")
	ErrNegativePrice       = errors.New("price must be >= 0")
	ErrNegativeCoefficient = errors.New("coefficient value must be >= 0")
	ErrInvalidCategory     = errors.New("product must reference an existing sub-element category")
	ErrInvalidParent       = errors.New("invalid parent category")
	ErrTooDeep             = errors.New("categories nest at most three levels (room, element, sub-element)")
	ErrPresetEmpty         = errors.New("preset must contain at least one product")
	ErrPresetTooLarge      = errors.New("preset cannot contain more than 100 products")
	ErrDuplicate           = errors.New("resource already exists")
	ErrInUse               = errors.New("resource is referenced by other records")
)

// Postgres SQLSTATE codes we translate into sentinels.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Depth of a sub-element, the deepest level products attach to.
const maxCategoryDepth = 2

// Store is the data access abstraction for the catalog: categories, products
// (with attributes and paired services), services, presets and coefficients.
// Implemented by Repository on top of pgx.
type Store interface {
	// Categories
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) (*Category, error)
	UpdateCategory(ctx context.Context, c *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// Products
	ListProducts(ctx context.Context, f ProductFilter) ([]Product, int, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SetProductImage(ctx context.Context, id int64, url *string) (previous *string, err error)
	ReplaceProductAttributes(ctx context.Context, productID int64, attrs []Attribute) error
	ReplaceProductServices(ctx context.Context, productID int64, serviceIDs []int64) error

	// Services
	ListServices(ctx context.Context) ([]Service, error)
	GetService(ctx context.Context, id int64) (*Service, error)
	CreateService(ctx context.Context, s *Service) (*Service, error)
	UpdateService(ctx context.Context, s *Service) (*Service, error)
	DeleteService(ctx context.Context, id int64) error

	// Presets
	ListPresets(ctx context.Context) ([]Preset, error)
	ListPresetsDetailed(ctx context.Context) ([]Preset, error)
	GetPreset(ctx context.Context, id int64) (*Preset, error)
	CreatePreset(ctx context.Context, in PresetInput) (*Preset, error)
	SetPresetImage(ctx context.Context, id int64, url *string) (previous *string, err error)
	DeletePreset(ctx context.Context, id int64) error

	// Coefficients
	ListCoefficients(ctx context.Context) ([]Coefficient, error)
	GetCoefficient(ctx context.Context, id int64) (*Coefficient, error)
	CreateCoefficient(ctx context.Context, c *Coefficient) (*Coefficient, error)
	UpdateCoefficient(ctx context.Context, c *Coefficient) (*Coefficient, error)
	DeleteCoefficient(ctx context.Context, id int64) error
}

type Repository struct {
	db   dbx.Querier
	psql sq.StatementBuilderType
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{
		db:   q,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ------------------------------------
// Transaction helper
// ------------------------------------

// WithTx runs fn against a repository bound to a single transaction. When the
// repository is already transactional, pgx turns Begin into a savepoint.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Printf("warning: rollback failed: %v", err)
		}
	}()

	if err := fn(&Repository{db: tx, psql: r.psql}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
