package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"campus/backend/internal/db"
	"campus/backend/internal/model"
)

type FeedbackRepo struct {
	store *db.Store
}

func NewFeedbackRepo(store *db.Store) *FeedbackRepo {
	return &FeedbackRepo{store: store}
}

func (r *FeedbackRepo) Insert(ctx context.Context, fb model.MessFeedback) error {
	_, err := r.store.Pool.Exec(ctx, `
		INSERT INTO mess_feedback (id, email, meal_type, rating, comment, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, fb.ID, fb.Email, fb.MealType, fb.Rating, fb.Comment, fb.Timestamp)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) Totals(ctx context.Context) ([]model.RatingTotals, error) {
	var totals []model.RatingTotals
	err := pgxscan.Select(ctx, r.store.Pool, &totals, `
		SELECT meal_type, SUM(rating)::bigint AS rating_sum, COUNT(*) AS rating_count
		FROM mess_feedback
		GROUP BY meal_type
	`)
	if err != nil {
		return nil, fmt.Errorf("aggregate feedback: %w", err)
	}
	return totals, nil
}
