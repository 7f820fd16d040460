package registry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campus/backend/internal/auth"
	"campus/backend/internal/metrics"
	"campus/backend/internal/model"
)

type ComplaintStore interface {
	Insert(ctx context.Context, c model.Complaint) error
	List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus, at time.Time) error
}

type Complaints struct {
	store ComplaintStore
	now   func() time.Time
}

func NewComplaints(store ComplaintStore) *Complaints {
	return &Complaints{store: store, now: time.Now}
}

// Create files a Pending complaint on behalf of email.
func (c *Complaints) Create(ctx context.Context, in model.NewComplaint, email string) (model.Complaint, error) {
	if !in.Category.Valid() {
		return model.Complaint{}, model.Invalid("category", "must be one of waste, maintenance, other")
	}
	now := c.now().UTC()
	complaint := model.Complaint{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Category:     in.Category,
		ContactEmail: auth.NormalizeEmail(email),
		ImageBase64:  in.ImageBase64,
		MimeType:     in.MimeType,
		Status:       model.ComplaintPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.store.Insert(ctx, complaint); err != nil {
		return model.Complaint{}, err
	}
	metrics.ComplaintsCreatedTotal.Inc()
	return complaint, nil
}

// List ignores a status filter outside the known set.
func (c *Complaints) List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error) {
	if !status.Valid() {
		status = ""
	}
	return c.store.List(ctx, status)
}

// UpdateStatus accepts any known status; states may be skipped or repeated.
func (c *Complaints) UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus) error {
	if !status.Valid() {
		return model.Invalid("status", "must be one of Pending, In Progress, Resolved")
	}
	if err := c.store.UpdateStatus(ctx, id, status, c.now().UTC()); err != nil {
		return err
	}
	metrics.ComplaintStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	return nil
}
