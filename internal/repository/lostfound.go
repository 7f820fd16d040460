package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"campus/backend/internal/db"
	"campus/backend/internal/model"
)

type LostFoundRepo struct {
	store *db.Store
}

func NewLostFoundRepo(store *db.Store) *LostFoundRepo {
	return &LostFoundRepo{store: store}
}

func (r *LostFoundRepo) Insert(ctx context.Context, item model.LostFoundItem) error {
	_, err := r.store.Pool.Exec(ctx, `
		INSERT INTO lost_found_items (id, type, item_name, description, location, contact_email, contact_name, image_base64, mime_type, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, item.ID, item.Type, item.ItemName, item.Description, item.Location, item.ContactEmail, item.ContactName, item.ImageBase64, item.MimeType, item.Date, item.Status)
	if err != nil {
		return fmt.Errorf("insert lost and found item: %w", err)
	}
	return nil
}

// ListActive never returns resolved items. Search is a case-insensitive
// substring match on item name or description.
func (r *LostFoundRepo) ListActive(ctx context.Context, filter model.LostFoundFilter) ([]model.LostFoundItem, error) {
	var items []model.LostFoundItem
	err := pgxscan.Select(ctx, r.store.Pool, &items, `
		SELECT id, type, item_name, description, location, contact_email, contact_name, image_base64, mime_type, date, status
		FROM lost_found_items
		WHERE status = 'active'
		  AND ($1::text = '' OR type = $1::text)
		  AND ($2::text = '' OR strpos(lower(item_name), lower($2::text)) > 0 OR strpos(lower(description), lower($2::text)) > 0)
		ORDER BY date DESC
	`, string(filter.Type), filter.Search)
	if err != nil {
		return nil, fmt.Errorf("list lost and found items: %w", err)
	}
	return items, nil
}

func (r *LostFoundRepo) Get(ctx context.Context, id string) (model.LostFoundItem, error) {
	var item model.LostFoundItem
	err := pgxscan.Get(ctx, r.store.Pool, &item, `
		SELECT id, type, item_name, description, location, contact_email, contact_name, image_base64, mime_type, date, status
		FROM lost_found_items
		WHERE id = $1
	`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return model.LostFoundItem{}, model.NotFoundError("Item")
		}
		return model.LostFoundItem{}, fmt.Errorf("get lost and found item: %w", err)
	}
	return item, nil
}

func (r *LostFoundRepo) Resolve(ctx context.Context, id string) error {
	tag, err := r.store.Pool.Exec(ctx, `UPDATE lost_found_items SET status = 'resolved' WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("resolve lost and found item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.NotFoundError("Item")
	}
	return nil
}
