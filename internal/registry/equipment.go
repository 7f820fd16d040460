package registry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"campus/backend/internal/auth"
	"campus/backend/internal/metrics"
	"campus/backend/internal/model"
)

type EquipmentStore interface {
	List(ctx context.Context) ([]model.Equipment, error)
	SeedIfEmpty(ctx context.Context, items []model.Equipment) (bool, error)
	Book(ctx context.Context, id, email string, at time.Time) error
	Apply(ctx context.Context, id string, patch model.EquipmentPatch) error
}

type Equipment struct {
	store  EquipmentStore
	seed   bool
	logger *zap.Logger
	now    func() time.Time
}

func NewEquipment(store EquipmentStore, seed bool, logger *zap.Logger) *Equipment {
	return &Equipment{store: store, seed: seed, logger: logger, now: time.Now}
}

// DemoEquipment is the inventory a fresh deployment starts with.
func DemoEquipment(now time.Time) []model.Equipment {
	holder := "student@iiitd.ac.in"
	issuedAt := now.UTC()
	item := func(name string, status model.EquipmentStatus) model.Equipment {
		return model.Equipment{ID: uuid.NewString(), Name: name, Status: status}
	}
	tt2 := item("TT Bat #2", model.EquipmentIssued)
	tt2.IssuedTo = &holder
	tt2.IssuedAt = &issuedAt
	return []model.Equipment{
		item("Badminton Racket #1", model.EquipmentAvailable),
		item("Badminton Racket #2", model.EquipmentAvailable),
		item("TT Bat #1", model.EquipmentAvailable),
		tt2,
		item("Football", model.EquipmentAvailable),
		item("Cricket Bat", model.EquipmentUnderMaintenance),
		item("Tennis Racket", model.EquipmentAvailable),
	}
}

// EnsureSeeded inserts the demo inventory if and only if the store is empty.
func (e *Equipment) EnsureSeeded(ctx context.Context) error {
	seeded, err := e.store.SeedIfEmpty(ctx, DemoEquipment(e.now()))
	if err != nil {
		return err
	}
	if seeded {
		e.logger.Info("seeded demo equipment")
	}
	return nil
}

func (e *Equipment) List(ctx context.Context) ([]model.Equipment, error) {
	items, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 || !e.seed {
		return items, nil
	}
	if err := e.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return e.store.List(ctx)
}

func (e *Equipment) Book(ctx context.Context, id, email string) error {
	err := e.store.Book(ctx, id, auth.NormalizeEmail(email), e.now().UTC())
	metrics.EquipmentBookingsTotal.WithLabelValues(bookingOutcome(err)).Inc()
	return err
}

// SetStatus is the admin override. Available always clears the issued fields;
// Issued with a holder stamps them; otherwise they are left untouched.
func (e *Equipment) SetStatus(ctx context.Context, id string, status model.EquipmentStatus, issuedTo *string) error {
	if !status.Valid() {
		return model.Invalid("status", "must be one of Available, Issued, Under Maintenance")
	}
	patch := model.EquipmentPatch{Status: status}
	switch {
	case status == model.EquipmentAvailable:
		patch.SetIssued = true
	case status == model.EquipmentIssued && issuedTo != nil && strings.TrimSpace(*issuedTo) != "":
		holder := auth.NormalizeEmail(*issuedTo)
		at := e.now().UTC()
		patch.SetIssued = true
		patch.IssuedTo = &holder
		patch.IssuedAt = &at
	}
	return e.store.Apply(ctx, id, patch)
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return "booked"
	case errors.Is(err, model.ErrConflict):
		return "conflict"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
