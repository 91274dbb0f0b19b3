package catalog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var productColumns = []string{
	"product_id", "name", "price", "description", "image_url", "category_id", "created_at",
}

func scanProduct(row pgx.Row, p *Product, extra ...any) error {
	dest := append([]any{
		&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CategoryID, &p.CreatedAt,
	}, extra...)
	return row.Scan(dest...)
}

// ListProducts returns a page of products plus the total matching count.
// Attributes and paired services are loaded for every returned product.
func (r *Repository) ListProducts(ctx context.Context, f ProductFilter) ([]Product, int, error) {
	qb := r.psql.
		Select(append(productColumns, "COUNT(*) OVER() AS total_count")...).
		From("products").
		OrderBy("product_id")

	if f.CategoryID != nil {
		qb = qb.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if f.Limit > 0 {
		offset := f.Offset
		if offset < 0 {
			offset = 0
		}
		qb = qb.Limit(uint64(f.Limit)).Offset(uint64(offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build products query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		list  = make([]Product, 0)
		total int
	)
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p, &total); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}

	// Paged past the end: no rows but the total can still be > 0.
	if len(list) == 0 && f.Offset > 0 {
		cq := r.psql.Select("COUNT(*)").From("products")
		if f.CategoryID != nil {
			cq = cq.Where(sq.Eq{"category_id": *f.CategoryID})
		}
		countSQL, countArgs, err := cq.ToSql()
		if err != nil {
			return nil, 0, fmt.Errorf("build count query: %w", err)
		}
		if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
	}

	if err := r.attachProductRelations(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *Repository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	list, _, err := r.ListProducts(ctx, ProductFilter{CategoryID: &categoryID})
	return list, err
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (*Product, error) {
	query, args, err := r.psql.Select(productColumns...).From("products").Where(sq.Eq{"product_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product query: %w", err)
	}

	var p Product
	if err := scanProduct(r.db.QueryRow(ctx, query, args...), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	list := []Product{p}
	if err := r.attachProductRelations(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// productsByIDs loads the given products keyed by id; unknown ids are absent
// from the result.
func (r *Repository) productsByIDs(ctx context.Context, ids []int64) (map[int64]Product, error) {
	out := make(map[int64]Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := r.psql.Select(productColumns...).From("products").
		Where(sq.Expr("product_id = ANY(?)", ids)).
		OrderBy("product_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("products by ids: %w", err)
	}
	defer rows.Close()

	var list []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	if err := r.attachProductRelations(ctx, list); err != nil {
		return nil, err
	}
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

// attachProductRelations fills Attributes and Services in place with two
// batched queries.
func (r *Repository) attachProductRelations(ctx context.Context, list []Product) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, len(list))
	index := make(map[int64]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
		index[list[i].ID] = i
		list[i].Attributes = make([]Attribute, 0)
		list[i].Services = make([]ServiceRef, 0)
	}

	attrRows, err := r.db.Query(ctx, `
		SELECT product_id, name, unit, value
		FROM product_attributes
		WHERE product_id = ANY($1)
		ORDER BY product_id, position, attribute_id`, ids)
	if err != nil {
		return fmt.Errorf("load attributes: %w", err)
	}
	for attrRows.Next() {
		var (
			pid int64
			a   Attribute
		)
		if err := attrRows.Scan(&pid, &a.Name, &a.Unit, &a.Value); err != nil {
			attrRows.Close()
			return fmt.Errorf("scan attribute: %w", err)
		}
		if i, ok := index[pid]; ok {
			list[i].Attributes = append(list[i].Attributes, a)
		}
	}
	attrRows.Close()
	if err := attrRows.Err(); err != nil {
		return fmt.Errorf("attribute rows: %w", err)
	}

	svcRows, err := r.db.Query(ctx, `
		SELECT ps.product_id, s.service_id, s.name
		FROM product_services ps
		INNER JOIN services s ON s.service_id = ps.service_id
		WHERE ps.product_id = ANY($1)
		ORDER BY ps.product_id, s.service_id`, ids)
	if err != nil {
		return fmt.Errorf("load product services: %w", err)
	}
	defer svcRows.Close()
	for svcRows.Next() {
		var (
			pid int64
			ref ServiceRef
		)
		if err := svcRows.Scan(&pid, &ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("scan product service: %w", err)
		}
		if i, ok := index[pid]; ok {
			list[i].Services = append(list[i].Services, ref)
		}
	}
	if err := svcRows.Err(); err != nil {
		return fmt.Errorf("product service rows: %w", err)
	}
	return nil
}

// CreateProduct inserts the product together with its attributes and service
// references in one transaction. The category must be a sub-element.
func (r *Repository) CreateProduct(ctx context.Context, p *Product) (*Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var id int64
	err := r.WithTx(ctx, func(tx *Repository) error {
		if err := tx.requireSubElement(ctx, p.CategoryID); err != nil {
			return err
		}

		const q = `
			INSERT INTO products (name, price, description, image_url, category_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING product_id`
		if err := tx.db.QueryRow(ctx, q, p.Name, p.Price, p.Description, p.ImageURL, p.CategoryID).Scan(&id); err != nil {
			if pgCode(err) == pgForeignKeyViolation {
				return ErrInvalidCategory
			}
			return fmt.Errorf("create product: %w", err)
		}

		if err := tx.ReplaceProductAttributes(ctx, id, p.Attributes); err != nil {
			return err
		}
		return tx.ReplaceProductServices(ctx, id, serviceIDs(p.Services))
	})
	if err != nil {
		return nil, err
	}

	return r.GetProduct(ctx, id)
}

func (r *Repository) UpdateProduct(ctx context.Context, p *Product) (*Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := r.WithTx(ctx, func(tx *Repository) error {
		if err := tx.requireSubElement(ctx, p.CategoryID); err != nil {
			return err
		}

		const q = `
			UPDATE products
			SET name = $1, price = $2, description = $3, category_id = $4
			WHERE product_id = $5`
		cmd, err := tx.db.Exec(ctx, q, p.Name, p.Price, p.Description, p.CategoryID, p.ID)
		if err != nil {
			if pgCode(err) == pgForeignKeyViolation {
				return ErrInvalidCategory
			}
			return fmt.Errorf("update product: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return ErrProductNotFound
		}

		if err := tx.ReplaceProductAttributes(ctx, p.ID, p.Attributes); err != nil {
			return err
		}
		return tx.ReplaceProductServices(ctx, p.ID, serviceIDs(p.Services))
	})
	if err != nil {
		return nil, err
	}

	return r.GetProduct(ctx, p.ID)
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SetProductImage stores a new image URL (nil clears it) and hands back the
// previous one so the caller can drop the old asset.
func (r *Repository) SetProductImage(ctx context.Context, id int64, url *string) (*string, error) {
	var previous *string
	const q = `
		UPDATE products p
		SET image_url = $1
		FROM (SELECT product_id, image_url FROM products WHERE product_id = $2 FOR UPDATE) old
		WHERE p.product_id = old.product_id
		RETURNING old.image_url`
	if err := r.db.QueryRow(ctx, q, url, id).Scan(&previous); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("set product image: %w", err)
	}
	return previous, nil
}

// ReplaceProductAttributes swaps the attribute list of a product, keeping the
// submitted order.
func (r *Repository) ReplaceProductAttributes(ctx context.Context, productID int64, attrs []Attribute) error {
	return r.WithTx(ctx, func(tx *Repository) error {
		if _, err := tx.db.Exec(ctx, `DELETE FROM product_attributes WHERE product_id = $1`, productID); err != nil {
			return fmt.Errorf("clear attributes: %w", err)
		}

		const q = `
			INSERT INTO product_attributes (product_id, name, unit, value, position)
			VALUES ($1, $2, $3, $4, $5)`
		for i, a := range attrs {
			if _, err := tx.db.Exec(ctx, q, productID, a.Name, a.Unit, a.Value, i); err != nil {
				if pgCode(err) == pgForeignKeyViolation {
					return ErrProductNotFound
				}
				return fmt.Errorf("insert attribute: %w", err)
			}
		}
		return nil
	})
}

// ReplaceProductServices swaps the set of services paired with a product.
// Duplicate ids collapse into one reference.
func (r *Repository) ReplaceProductServices(ctx context.Context, productID int64, ids []int64) error {
	return r.WithTx(ctx, func(tx *Repository) error {
		if _, err := tx.db.Exec(ctx, `DELETE FROM product_services WHERE product_id = $1`, productID); err != nil {
			return fmt.Errorf("clear product services: %w", err)
		}

		const q = `
			INSERT INTO product_services (product_id, service_id)
			VALUES ($1, $2)
			ON CONFLICT (product_id, service_id) DO NOTHING`
		for _, sid := range ids {
			if _, err := tx.db.Exec(ctx, q, productID, sid); err != nil {
				if pgCode(err) == pgForeignKeyViolation {
					return ErrServiceNotFound
				}
				return fmt.Errorf("insert product service: %w", err)
			}
		}
		return nil
	})
}

func (r *Repository) requireSubElement(ctx context.Context, categoryID int64) error {
	depth, err := r.categoryDepth(ctx, categoryID)
	if err != nil {
		if errors.Is(err, ErrInvalidParent) {
			return ErrInvalidCategory
		}
		return err
	}
	if depth != maxCategoryDepth {
		return ErrInvalidCategory
	}
	return nil
}

func serviceIDs(refs []ServiceRef) []int64 {
	ids := make([]int64, 0, len(refs))
	for _, s := range refs {
		ids = append(ids, s.ID)
	}
	return ids
}
