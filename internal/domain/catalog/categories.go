package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const categoryColumns = `category_id, name, parent_id, description, created_at`

func scanCategory(row pgx.Row, c *Category) error {
	return row.Scan(&c.ID, &c.Name, &c.ParentID, &c.Description, &c.CreatedAt)
}

// ListCategories returns the flat category list in id order, the shape the
// configurator builds its tree from.
func (r *Repository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return list, nil
}

func (r *Repository) GetCategory(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE category_id = $1`, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return &c, nil
}

func (r *Repository) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	if err := validateCategory(c); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if c.ParentID != nil {
		depth, err := r.categoryDepth(ctx, *c.ParentID)
		if err != nil {
			return nil, err
		}
		if depth+1 > maxCategoryDepth {
			return nil, ErrTooDeep
		}
	}

	const q = `
		INSERT INTO categories (name, parent_id, description)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns

	created := &Category{}
	if err := scanCategory(r.db.QueryRow(ctx, q, c.Name, c.ParentID, c.Description), created); err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, ErrInvalidParent
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// UpdateCategory rewrites name, description and parent. Re-parenting is
// rejected when it would create a cycle or push any descendant below the
// sub-element level.
func (r *Repository) UpdateCategory(ctx context.Context, c *Category) (*Category, error) {
	if err := validateCategory(c); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := r.GetCategory(ctx, c.ID); err != nil {
		return nil, err
	}

	if c.ParentID != nil {
		descendants, height, err := r.categorySubtree(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if _, ok := descendants[*c.ParentID]; ok {
			return nil, ErrInvalidParent
		}
		depth, err := r.categoryDepth(ctx, *c.ParentID)
		if err != nil {
			return nil, err
		}
		if depth+1+height > maxCategoryDepth {
			return nil, ErrTooDeep
		}
	}

	const q = `
		UPDATE categories
		SET name = $1, parent_id = $2, description = $3
		WHERE category_id = $4
		RETURNING ` + categoryColumns

	updated := &Category{}
	if err := scanCategory(r.db.QueryRow(ctx, q, c.Name, c.ParentID, c.Description, c.ID), updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		if pgCode(err) == pgForeignKeyViolation {
			return nil, ErrInvalidParent
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return ErrInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// categoryDepth walks parent links upward; a room has depth 0. A missing
// category is reported as ErrInvalidParent since callers only ask about
// would-be parents.
func (r *Repository) categoryDepth(ctx context.Context, id int64) (int, error) {
	const q = `
		WITH RECURSIVE up AS (
			SELECT category_id, parent_id, 0 AS lvl
			FROM categories
			WHERE category_id = $1
			UNION ALL
			SELECT c.category_id, c.parent_id, up.lvl + 1
			FROM categories c
			INNER JOIN up ON c.category_id = up.parent_id
			WHERE up.lvl < 16
		)
		SELECT COALESCE(MAX(lvl), -1) FROM up`

	var depth int
	if err := r.db.QueryRow(ctx, q, id).Scan(&depth); err != nil {
		return 0, fmt.Errorf("category depth: %w", err)
	}
	if depth < 0 {
		return 0, ErrInvalidParent
	}
	return depth, nil
}

// categorySubtree returns the ids below id (id included) and the height of
// that subtree; a leaf has height 0.
func (r *Repository) categorySubtree(ctx context.Context, id int64) (map[int64]struct{}, int, error) {
	const q = `
		WITH RECURSIVE down AS (
			SELECT category_id, 0 AS lvl
			FROM categories
			WHERE category_id = $1
			UNION ALL
			SELECT c.category_id, down.lvl + 1
			FROM categories c
			INNER JOIN down ON c.parent_id = down.category_id
			WHERE down.lvl < 16
		)
		SELECT category_id, lvl FROM down`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, 0, fmt.Errorf("category subtree: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	height := 0
	for rows.Next() {
		var (
			cid int64
			lvl int
		)
		if err := rows.Scan(&cid, &lvl); err != nil {
			return nil, 0, fmt.Errorf("scan subtree: %w", err)
		}
		ids[cid] = struct{}{}
		if lvl > height {
			height = lvl
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}
	return ids, height, nil
}
