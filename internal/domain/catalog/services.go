package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const serviceColumns = `service_id, name, description, price`

func scanService(row pgx.Row, s *Service) error {
	return row.Scan(&s.ID, &s.Name, &s.Description, &s.Price)
}

func (r *Repository) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY service_id`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	list := make([]Service, 0)
	for rows.Next() {
		var s Service
		if err := scanService(rows, &s); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return list, nil
}

func (r *Repository) GetService(ctx context.Context, id int64) (*Service, error) {
	var s Service
	if err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE service_id = $1`, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

func (r *Repository) CreateService(ctx context.Context, s *Service) (*Service, error) {
	if err := validateService(s); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	const q = `
		INSERT INTO services (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING ` + serviceColumns

	created := &Service{}
	if err := scanService(r.db.QueryRow(ctx, q, s.Name, s.Description, s.Price), created); err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create service: %w", err)
	}
	return created, nil
}

func (r *Repository) UpdateService(ctx context.Context, s *Service) (*Service, error) {
	if err := validateService(s); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	const q = `
		UPDATE services
		SET name = $1, description = $2, price = $3
		WHERE service_id = $4
		RETURNING ` + serviceColumns

	updated := &Service{}
	if err := scanService(r.db.QueryRow(ctx, q, s.Name, s.Description, s.Price, s.ID), updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		if pgCode(err) == pgUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return updated, nil
}

func (r *Repository) DeleteService(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM services WHERE service_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}
