package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const coefficientColumns = `coefficient_id, name, value`

func scanCoefficient(row pgx.Row, c *Coefficient) error {
	return row.Scan(&c.ID, &c.Name, &c.Value)
}

func (r *Repository) ListCoefficients(ctx context.Context) ([]Coefficient, error) {
	rows, err := r.db.Query(ctx, `SELECT `+coefficientColumns+` FROM coefficients ORDER BY coefficient_id`)
	if err != nil {
		return nil, fmt.Errorf("list coefficients: %w", err)
	}
	defer rows.Close()

	list := make([]Coefficient, 0)
	for rows.Next() {
		var c Coefficient
		if err := scanCoefficient(rows, &c); err != nil {
			return nil, fmt.Errorf("scan coefficient: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return list, nil
}

func (r *Repository) GetCoefficient(ctx context.Context, id int64) (*Coefficient, error) {
	var c Coefficient
	if err := scanCoefficient(r.db.QueryRow(ctx, `SELECT `+coefficientColumns+` FROM coefficients WHERE coefficient_id = $1`, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoefficientNotFound
		}
		return nil, fmt.Errorf("get coefficient: %w", err)
	}
	return &c, nil
}

func (r *Repository) CreateCoefficient(ctx context.Context, c *Coefficient) (*Coefficient, error) {
	if err := validateCoefficient(c); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created := &Coefficient{}
	err := scanCoefficient(r.db.QueryRow(ctx, `
		INSERT INTO coefficients (name, value)
		VALUES ($1, $2)
		RETURNING `+coefficientColumns, c.Name, c.Value), created)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create coefficient: %w", err)
	}
	return created, nil
}

func (r *Repository) UpdateCoefficient(ctx context.Context, c *Coefficient) (*Coefficient, error) {
	if err := validateCoefficient(c); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated := &Coefficient{}
	err := scanCoefficient(r.db.QueryRow(ctx, `
		UPDATE coefficients
		SET name = $1, value = $2
		WHERE coefficient_id = $3
		RETURNING `+coefficientColumns, c.Name, c.Value, c.ID), updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoefficientNotFound
		}
		if pgCode(err) == pgUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update coefficient: %w", err)
	}
	return updated, nil
}

func (r *Repository) DeleteCoefficient(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM coefficients WHERE coefficient_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coefficient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrCoefficientNotFound
	}
	return nil
}
