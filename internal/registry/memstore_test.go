package registry

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"campus/backend/internal/model"
)

// memEquipment honours the same conditional-update contract as the Postgres repo.
type memEquipment struct {
	mu    sync.Mutex
	items []model.Equipment
	seeds int
}

func (m *memEquipment) List(context.Context) ([]model.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Equipment(nil), m.items...), nil
}

func (m *memEquipment) SeedIfEmpty(_ context.Context, items []model.Equipment) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.items) > 0 {
		return false, nil
	}
	m.items = append(m.items, items...)
	m.seeds++
	return true, nil
}

func (m *memEquipment) Book(_ context.Context, id, email string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		if m.items[i].Status != model.EquipmentAvailable {
			return model.ConflictError("Equipment not available")
		}
		m.items[i].Status = model.EquipmentIssued
		m.items[i].IssuedTo = &email
		m.items[i].IssuedAt = &at
		return nil
	}
	return model.NotFoundError("Equipment")
}

func (m *memEquipment) Apply(_ context.Context, id string, patch model.EquipmentPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		m.items[i].Status = patch.Status
		if patch.SetIssued {
			m.items[i].IssuedTo = patch.IssuedTo
			m.items[i].IssuedAt = patch.IssuedAt
		}
		return nil
	}
	return model.NotFoundError("Equipment")
}

func (m *memEquipment) get(id string) model.Equipment {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.ID == id {
			return item
		}
	}
	return model.Equipment{}
}

type memComplaints struct {
	mu    sync.Mutex
	items map[string]model.Complaint
}

func newMemComplaints() *memComplaints {
	return &memComplaints{items: map[string]model.Complaint{}}
}

func (m *memComplaints) Insert(_ context.Context, c model.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[c.ID] = c
	return nil
}

func (m *memComplaints) List(_ context.Context, status model.ComplaintStatus) ([]model.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Complaint
	for _, c := range m.items {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memComplaints) UpdateStatus(_ context.Context, id string, status model.ComplaintStatus, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return model.NotFoundError("Complaint")
	}
	next := c.UpdatedAt.Add(time.Microsecond)
	if at.After(next) {
		next = at
	}
	c.Status = status
	c.UpdatedAt = next
	m.items[id] = c
	return nil
}

type memFeedback struct {
	mu    sync.Mutex
	items []model.MessFeedback
}

func (m *memFeedback) Insert(_ context.Context, fb model.MessFeedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, fb)
	return nil
}

func (m *memFeedback) Totals(context.Context) ([]model.RatingTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byMeal := map[model.MealType]*model.RatingTotals{}
	for _, fb := range m.items {
		total, ok := byMeal[fb.MealType]
		if !ok {
			total = &model.RatingTotals{MealType: fb.MealType}
			byMeal[fb.MealType] = total
		}
		total.Sum += int64(fb.Rating)
		total.Count++
	}
	var out []model.RatingTotals
	for _, total := range byMeal {
		out = append(out, *total)
	}
	return out, nil
}

type memLostFound struct {
	mu    sync.Mutex
	items map[string]model.LostFoundItem
}

func newMemLostFound() *memLostFound {
	return &memLostFound{items: map[string]model.LostFoundItem{}}
}

func (m *memLostFound) Insert(_ context.Context, item model.LostFoundItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *memLostFound) ListActive(_ context.Context, filter model.LostFoundFilter) ([]model.LostFoundItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	search := strings.ToLower(filter.Search)
	var out []model.LostFoundItem
	for _, item := range m.items {
		if item.Status != model.ItemActive {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.ItemName), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memLostFound) Get(_ context.Context, id string) (model.LostFoundItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return model.LostFoundItem{}, model.NotFoundError("Item")
	}
	return item, nil
}

func (m *memLostFound) Resolve(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return model.NotFoundError("Item")
	}
	item.Status = model.ItemResolved
	m.items[id] = item
	return nil
}

// tickingClock advances by step on every call.
func tickingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := current
		current = current.Add(step)
		return now
	}
}
