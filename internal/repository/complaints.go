package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"campus/backend/internal/db"
	"campus/backend/internal/model"
)

type ComplaintRepo struct {
	store *db.Store
}

func NewComplaintRepo(store *db.Store) *ComplaintRepo {
	return &ComplaintRepo{store: store}
}

func (r *ComplaintRepo) Insert(ctx context.Context, c model.Complaint) error {
	_, err := r.store.Pool.Exec(ctx, `
		INSERT INTO complaints (id, title, description, location, category, contact_email, image_base64, mime_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, c.ID, c.Title, c.Description, c.Location, c.Category, c.ContactEmail, c.ImageBase64, c.MimeType, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

// List returns complaints newest first, restricted to status when it is non-empty.
func (r *ComplaintRepo) List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error) {
	var complaints []model.Complaint
	err := pgxscan.Select(ctx, r.store.Pool, &complaints, `
		SELECT id, title, description, location, category, contact_email, image_base64, mime_type, status, created_at, updated_at
		FROM complaints
		WHERE $1::text = '' OR status = $1::text
		ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus always moves updated_at forward, even when at does not exceed
// the stored value.
func (r *ComplaintRepo) UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus, at time.Time) error {
	tag, err := r.store.Pool.Exec(ctx, `
		UPDATE complaints
		SET status = $2, updated_at = GREATEST($3::timestamptz, updated_at + INTERVAL '1 microsecond')
		WHERE id = $1
	`, id, status, at)
	if err != nil {
		return fmt.Errorf("update complaint status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.NotFoundError("Complaint")
	}
	return nil
}
