package registry

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"campus/backend/internal/auth"
	"campus/backend/internal/metrics"
	"campus/backend/internal/model"
)

type FeedbackStore interface {
	Insert(ctx context.Context, fb model.MessFeedback) error
	Totals(ctx context.Context) ([]model.RatingTotals, error)
}

type Mess struct {
	store FeedbackStore
	now   func() time.Time
}

func NewMess(store FeedbackStore) *Mess {
	return &Mess{store: store, now: time.Now}
}

// Menu is static; only the date follows the UTC calendar.
func (m *Mess) Menu() model.MessMenu {
	return model.MessMenu{
		Date:      m.now().UTC().Format("2006-01-02"),
		Breakfast: []string{"Idli Sambhar", "Vada", "Chutney", "Tea/Coffee"},
		Lunch:     []string{"Rajma Chawal", "Roti", "Salad", "Curd"},
		Snacks:    []string{"Samosa", "Tea", "Biscuits"},
		Dinner:    []string{"Paneer Butter Masala", "Roti", "Dal", "Rice", "Salad"},
	}
}

func (m *Mess) SubmitFeedback(ctx context.Context, in model.NewFeedback, email string) error {
	if !in.MealType.Valid() {
		return model.Invalid("meal_type", "must be one of breakfast, lunch, snacks, dinner")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Invalid("rating", "must be an integer between 1 and 5")
	}
	fb := model.MessFeedback{
		ID:        uuid.NewString(),
		Email:     auth.NormalizeEmail(email),
		MealType:  in.MealType,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Timestamp: m.now().UTC(),
	}
	if err := m.store.Insert(ctx, fb); err != nil {
		return err
	}
	metrics.MessFeedbackTotal.WithLabelValues(string(in.MealType)).Inc()
	return nil
}

// RatingsSummary reports every meal type; meals without feedback are 0.
func (m *Mess) RatingsSummary(ctx context.Context) (map[model.MealType]float64, error) {
	totals, err := m.store.Totals(ctx)
	if err != nil {
		return nil, err
	}
	summary := make(map[model.MealType]float64, len(model.MealTypes))
	for _, meal := range model.MealTypes {
		summary[meal] = 0
	}
	for _, total := range totals {
		if _, ok := summary[total.MealType]; !ok || total.Count == 0 {
			continue
		}
		summary[total.MealType] = roundOneDecimal(float64(total.Sum) / float64(total.Count))
	}
	return summary, nil
}

// roundOneDecimal rounds on the exact binary value, so 4.35 (stored just
// below the tie) becomes 4.3.
func roundOneDecimal(value float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 1, 64), 64)
	return rounded
}
