package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"campus/backend/internal/db"
	"campus/backend/internal/model"
)

// seedLockKey serializes concurrent first-time seeders via pg_advisory_xact_lock.
const seedLockKey int64 = 0x63616d707573

type EquipmentRepo struct {
	store *db.Store
}

func NewEquipmentRepo(store *db.Store) *EquipmentRepo {
	return &EquipmentRepo{store: store}
}

func (r *EquipmentRepo) List(ctx context.Context) ([]model.Equipment, error) {
	var items []model.Equipment
	err := pgxscan.Select(ctx, r.store.Pool, &items, `
		SELECT id, name, status, issued_to, issued_at
		FROM sports_equipment
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return items, nil
}

func (r *EquipmentRepo) Get(ctx context.Context, id string) (model.Equipment, error) {
	var item model.Equipment
	err := pgxscan.Get(ctx, r.store.Pool, &item, `
		SELECT id, name, status, issued_to, issued_at
		FROM sports_equipment
		WHERE id = $1
	`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return model.Equipment{}, model.NotFoundError("Equipment")
		}
		return model.Equipment{}, fmt.Errorf("get equipment: %w", err)
	}
	return item, nil
}

// SeedIfEmpty inserts items only when the table holds no rows. It reports
// whether this call performed the insert.
func (r *EquipmentRepo) SeedIfEmpty(ctx context.Context, items []model.Equipment) (bool, error) {
	seeded := false
	err := r.store.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
			return err
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sports_equipment)`).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}
		for _, item := range items {
			if _, err := tx.Exec(ctx, `
				INSERT INTO sports_equipment (id, name, status, issued_to, issued_at)
				VALUES ($1, $2, $3, $4, $5)
			`, item.ID, item.Name, item.Status, item.IssuedTo, item.IssuedAt); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed equipment: %w", err)
	}
	return seeded, nil
}

// Book issues the item only if it is still Available, in one conditional statement.
func (r *EquipmentRepo) Book(ctx context.Context, id, email string, at time.Time) error {
	tag, err := r.store.Pool.Exec(ctx, `
		UPDATE sports_equipment
		SET status = $2, issued_to = $3, issued_at = $4
		WHERE id = $1 AND status = $5
	`, id, model.EquipmentIssued, email, at, model.EquipmentAvailable)
	if err != nil {
		return fmt.Errorf("book equipment: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return model.ConflictError("Equipment not available")
}

func (r *EquipmentRepo) Apply(ctx context.Context, id string, patch model.EquipmentPatch) error {
	var (
		query string
		args  []any
	)
	if patch.SetIssued {
		query = `UPDATE sports_equipment SET status = $2, issued_to = $3, issued_at = $4 WHERE id = $1`
		args = []any{id, patch.Status, patch.IssuedTo, patch.IssuedAt}
	} else {
		query = `UPDATE sports_equipment SET status = $2 WHERE id = $1`
		args = []any{id, patch.Status}
	}
	tag, err := r.store.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update equipment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.NotFoundError("Equipment")
	}
	return nil
}
