package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const presetColumns = `preset_id, name, description, image_url, total_price, created_at`

func scanPreset(row pgx.Row, p *Preset) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.TotalPrice, &p.CreatedAt)
}

// ListPresets returns presets without their items.
func (r *Repository) ListPresets(ctx context.Context) ([]Preset, error) {
	rows, err := r.db.Query(ctx, `SELECT `+presetColumns+` FROM presets ORDER BY preset_id`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	list := make([]Preset, 0)
	for rows.Next() {
		var p Preset
		if err := scanPreset(rows, &p); err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return list, nil
}

// ListPresetsDetailed returns every preset with its items and full products.
func (r *Repository) ListPresetsDetailed(ctx context.Context) ([]Preset, error) {
	list, err := r.ListPresets(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.attachPresetItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) GetPreset(ctx context.Context, id int64) (*Preset, error) {
	var p Preset
	if err := scanPreset(r.db.QueryRow(ctx, `SELECT `+presetColumns+` FROM presets WHERE preset_id = $1`, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("get preset: %w", err)
	}

	list := []Preset{p}
	if err := r.attachPresetItems(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// attachPresetItems loads items in position order. An item whose product was
// deleted keeps its slot with a nil Product.
func (r *Repository) attachPresetItems(ctx context.Context, list []Preset) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, len(list))
	index := make(map[int64]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
		index[list[i].ID] = i
		list[i].Items = make([]PresetItem, 0)
	}

	rows, err := r.db.Query(ctx, `
		SELECT preset_id, product_id
		FROM preset_items
		WHERE preset_id = ANY($1)
		ORDER BY preset_id, position, preset_item_id`, ids)
	if err != nil {
		return fmt.Errorf("load preset items: %w", err)
	}

	type itemRef struct {
		presetID  int64
		productID *int64
	}
	var (
		refs       []itemRef
		productIDs []int64
	)
	for rows.Next() {
		var ref itemRef
		if err := rows.Scan(&ref.presetID, &ref.productID); err != nil {
			rows.Close()
			return fmt.Errorf("scan preset item: %w", err)
		}
		refs = append(refs, ref)
		if ref.productID != nil {
			productIDs = append(productIDs, *ref.productID)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("preset item rows: %w", err)
	}

	products, err := r.productsByIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	for _, ref := range refs {
		i, ok := index[ref.presetID]
		if !ok {
			continue
		}
		var item PresetItem
		if ref.productID != nil {
			if p, ok := products[*ref.productID]; ok {
				item.Product = &p
			}
		}
		list[i].Items = append(list[i].Items, item)
	}
	return nil
}

// CreatePreset stores a preset whose total_price is the sum of its products'
// current prices.
func (r *Repository) CreatePreset(ctx context.Context, in PresetInput) (*Preset, error) {
	if err := validatePreset(&in); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var id int64
	err := r.WithTx(ctx, func(tx *Repository) error {
		products, err := tx.productsByIDs(ctx, in.ProductIDs)
		if err != nil {
			return err
		}

		var total float64
		for _, pid := range in.ProductIDs {
			p, ok := products[pid]
			if !ok {
				return fmt.Errorf("product %d: %w", pid, ErrProductNotFound)
			}
			total += p.Price
		}

		const q = `
			INSERT INTO presets (name, description, image_url, total_price)
			VALUES ($1, $2, $3, $4)
			RETURNING preset_id`
		if err := tx.db.QueryRow(ctx, q, in.Name, in.Description, in.ImageURL, total).Scan(&id); err != nil {
			if pgCode(err) == pgUniqueViolation {
				return ErrDuplicate
			}
			return fmt.Errorf("create preset: %w", err)
		}

		const itemQ = `
			INSERT INTO preset_items (preset_id, product_id, position)
			VALUES ($1, $2, $3)`
		for pos, pid := range in.ProductIDs {
			if _, err := tx.db.Exec(ctx, itemQ, id, pid, pos); err != nil {
				return fmt.Errorf("insert preset item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetPreset(ctx, id)
}

func (r *Repository) SetPresetImage(ctx context.Context, id int64, url *string) (*string, error) {
	var previous *string
	const q = `
		UPDATE presets p
		SET image_url = $1
		FROM (SELECT preset_id, image_url FROM presets WHERE preset_id = $2 FOR UPDATE) old
		WHERE p.preset_id = old.preset_id
		RETURNING old.image_url`
	if err := r.db.QueryRow(ctx, q, url, id).Scan(&previous); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("set preset image: %w", err)
	}
	return previous, nil
}

func (r *Repository) DeletePreset(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM presets WHERE preset_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrPresetNotFound
	}
	return nil
}
