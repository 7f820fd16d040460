package registry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campus/backend/internal/auth"
	"campus/backend/internal/metrics"
	"campus/backend/internal/model"
)

type LostFoundStore interface {
	Insert(ctx context.Context, item model.LostFoundItem) error
	ListActive(ctx context.Context, filter model.LostFoundFilter) ([]model.LostFoundItem, error)
	Get(ctx context.Context, id string) (model.LostFoundItem, error)
	Resolve(ctx context.Context, id string) error
}

type LostFound struct {
	store LostFoundStore
	now   func() time.Time
}

func NewLostFound(store LostFoundStore) *LostFound {
	return &LostFound{store: store, now: time.Now}
}

func (l *LostFound) Create(ctx context.Context, in model.NewLostFoundItem, email string) (model.LostFoundItem, error) {
	if !in.Type.Valid() {
		return model.LostFoundItem{}, model.Invalid("type", "must be lost or found")
	}
	item := model.LostFoundItem{
		ID:           uuid.NewString(),
		Type:         in.Type,
		ItemName:     in.ItemName,
		Description:  in.Description,
		Location:     in.Location,
		ContactEmail: auth.NormalizeEmail(email),
		ContactName:  in.ContactName,
		ImageBase64:  in.ImageBase64,
		MimeType:     in.MimeType,
		Date:         l.now().UTC(),
		Status:       model.ItemActive,
	}
	if err := l.store.Insert(ctx, item); err != nil {
		return model.LostFoundItem{}, err
	}
	metrics.LostFoundItemsTotal.WithLabelValues(string(in.Type)).Inc()
	return item, nil
}

// List returns active items newest first. An unknown type filter is ignored
// and the search text is matched as given.
func (l *LostFound) List(ctx context.Context, filter model.LostFoundFilter) ([]model.LostFoundItem, error) {
	if !filter.Type.Valid() {
		filter.Type = ""
	}
	return l.store.ListActive(ctx, filter)
}

// Resolve is allowed for the poster and for admins.
func (l *LostFound) Resolve(ctx context.Context, id string, actor model.Identity) error {
	item, err := l.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && auth.NormalizeEmail(actor.Email) != item.ContactEmail {
		return model.NewError(model.ErrForbidden, "Only the poster or an admin can resolve this item")
	}
	return l.store.Resolve(ctx, id)
}
