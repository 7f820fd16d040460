package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campus/backend/internal/audit"
	"campus/backend/internal/auth"
	"campus/backend/internal/config"
	"campus/backend/internal/http/mocks"
	"campus/backend/internal/model"
)

const (
	testSecret = "test-secret"
	testIssuer = "campus-catalyst"
	testAdmin  = "admin@iiitd.ac.in"
)

type memoryRevocations struct {
	mu  sync.Mutex
	ids map[string]time.Duration
}

func (m *memoryRevocations) Revoke(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[id] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[id]
	return ok, nil
}

type testEnv struct {
	equipment  *mocks.MockEquipmentRegistry
	complaints *mocks.MockComplaintRegistry
	mess       *mocks.MockMessRegistry
	lostFound  *mocks.MockLostFoundRegistry
	auditor    *mocks.MockAuditor
	tokens     *auth.TokenService
	handler    http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		equipment:  mocks.NewMockEquipmentRegistry(ctrl),
		complaints: mocks.NewMockComplaintRegistry(ctrl),
		mess:       mocks.NewMockMessRegistry(ctrl),
		lostFound:  mocks.NewMockLostFoundRegistry(ctrl),
		auditor:    mocks.NewMockAuditor(ctrl),
		tokens: auth.NewTokenService(testSecret, testIssuer, testAdmin,
			auth.WithRevocations(&memoryRevocations{ids: map[string]time.Duration{}})),
	}
	server := NewServer(config.Config{CORSOrigins: []string{"http://localhost:3000"}}, Dependencies{
		Tokens:     env.tokens,
		Equipment:  env.equipment,
		Complaints: env.complaints,
		Mess:       env.mess,
		LostFound:  env.lostFound,
		Audit:      env.auditor,
	})
	env.handler = server.Router()
	return env
}

func (e *testEnv) ignoreAudit() {
	e.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()
}

func (e *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	issued, err := e.tokens.Issue(email)
	require.NoError(t, err)
	return issued.Token
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.ignoreAudit()

	rec := env.do(http.MethodPost, "/api/auth/login", `{"email":"student@iiitd.ac.in"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "student", body["role"])
	assert.Equal(t, "student@iiitd.ac.in", body["email"])
	assert.Equal(t, "Student", body["name"])
	assert.NotEmpty(t, body["token"])

	rec = env.do(http.MethodPost, "/api/auth/login", `{"email":"Admin@IIITD.ac.in"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decodeBody(t, rec)["role"])

	rec = env.do(http.MethodPost, "/api/auth/login", `{"email":"someone@gmail.com"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Only IIIT email addresses are allowed", decodeBody(t, rec)["detail"])

	rec = env.do(http.MethodPost, "/api/auth/login", `{"email":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeAndLogout(t *testing.T) {
	env := newTestEnv(t)
	env.ignoreAudit()
	token := env.token(t, "jane.doe@iiitd.ac.in")

	rec := env.do(http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"jane.doe@iiitd.ac.in","role":"student","name":"Jane Doe"}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/auth/logout", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token revoked", decodeBody(t, rec)["detail"])
}

func TestAuthFailures(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/sports/book", `{"equipment_id":"eq-1"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid authorization header", decodeBody(t, rec)["detail"])

	rec = env.do(http.MethodPost, "/api/mess/feedback", `{"meal_type":"lunch","rating":4}`, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, rec)["detail"])

	past := time.Now().Add(-8 * 24 * time.Hour)
	stale := auth.NewTokenService(testSecret, testIssuer, testAdmin, auth.WithClock(func() time.Time { return past }))
	issued, err := stale.Issue("student@iiitd.ac.in")
	require.NoError(t, err)
	rec = env.do(http.MethodPost, "/api/complaints", `{}`, issued.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token expired", decodeBody(t, rec)["detail"])
}

func TestEquipmentStatusRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/api/sports/equipment/eq-1/status", `{"status":"Available"}`, env.token(t, "student@iiitd.ac.in"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Admin access required", body["detail"])
	assert.Equal(t, "forbidden", body["error"])

	rec = env.do(http.MethodPut, "/api/complaints/c-1/status", `{"status":"Resolved"}`, env.token(t, "student@iiitd.ac.in"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminSetsEquipmentStatus(t *testing.T) {
	env := newTestEnv(t)
	env.ignoreAudit()
	holder := "student@iiitd.ac.in"
	env.equipment.EXPECT().SetStatus(gomock.Any(), "eq-1", model.EquipmentIssued, &holder).Return(nil)
	env.equipment.EXPECT().SetStatus(gomock.Any(), "missing", model.EquipmentAvailable, nil).Return(model.NotFoundError("Equipment"))

	rec := env.do(http.MethodPut, "/api/sports/equipment/eq-1/status", `{"status":"Issued","issued_to":"student@iiitd.ac.in"}`, env.token(t, testAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Equipment status updated successfully", decodeBody(t, rec)["message"])

	rec = env.do(http.MethodPut, "/api/sports/equipment/missing/status", `{"status":"Available"}`, env.token(t, testAdmin))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Equipment not found", decodeBody(t, rec)["detail"])
}

func TestBookEquipment(t *testing.T) {
	env := newTestEnv(t)
	env.ignoreAudit()
	token := env.token(t, "student@iiitd.ac.in")

	gomock.InOrder(
		env.equipment.EXPECT().Book(gomock.Any(), "eq-1", "student@iiitd.ac.in").Return(nil),
		env.equipment.EXPECT().Book(gomock.Any(), "eq-1", "student@iiitd.ac.in").Return(model.ConflictError("Equipment not available")),
		env.equipment.EXPECT().Book(gomock.Any(), "nope", "student@iiitd.ac.in").Return(model.NotFoundError("Equipment")),
	)

	rec := env.do(http.MethodPost, "/api/sports/book", `{"equipment_id":"eq-1"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Equipment booked successfully", decodeBody(t, rec)["message"])

	rec = env.do(http.MethodPost, "/api/sports/book", `{"equipment_id":"eq-1"}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Equipment not available", decodeBody(t, rec)["detail"])

	rec = env.do(http.MethodPost, "/api/sports/book", `{"equipment_id":"nope"}`, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Equipment not found", decodeBody(t, rec)["detail"])
}

func TestListEquipment(t *testing.T) {
	env := newTestEnv(t)
	holder := "student@iiitd.ac.in"
	issuedAt := time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)
	env.equipment.EXPECT().List(gomock.Any()).Return([]model.Equipment{
		{ID: "eq-1", Name: "Football", Status: model.EquipmentAvailable},
		{ID: "eq-2", Name: "TT Bat #2", Status: model.EquipmentIssued, IssuedTo: &holder, IssuedAt: &issuedAt},
	}, nil)

	rec := env.do(http.MethodGet, "/api/sports/equipment", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":"eq-1","name":"Football","status":"Available","issued_to":null,"issued_at":null},
		{"id":"eq-2","name":"TT Bat #2","status":"Issued","issued_to":"student@iiitd.ac.in","issued_at":"2026-01-10T08:30:00Z"}
	]`, rec.Body.String())
}

func TestInternalErrorsAreHidden(t *testing.T) {
	env := newTestEnv(t)
	env.equipment.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	rec := env.do(http.MethodGet, "/api/sports/equipment", "", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, rec)["detail"])
}

func TestMessEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.ignoreAudit()
	env.mess.EXPECT().Menu().Return(model.MessMenu{
		Date:      "2026-01-10",
		Breakfast: []string{"Idli Sambhar"},
		Lunch:     []string{"Rajma Chawal"},
		Snacks:    []string{"Samosa"},
		Dinner:    []string{"Dal"},
	})
	env.mess.EXPECT().RatingsSummary(gomock.Any()).Return(map[model.MealType]float64{
		model.MealBreakfast: 0, model.MealLunch: 4, model.MealSnacks: 0, model.MealDinner: 4.3,
	}, nil)
	comment := "Tasty"
	env.mess.EXPECT().SubmitFeedback(gomock.Any(), model.NewFeedback{MealType: model.MealLunch, Rating: 4, Comment: &comment}, "student@iiitd.ac.in").Return(nil)
	env.mess.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Invalid("rating", "must be an integer between 1 and 5"))

	rec := env.do(http.MethodGet, "/api/mess/menu", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-01-10", decodeBody(t, rec)["date"])

	rec = env.do(http.MethodGet, "/api/mess/ratings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"breakfast":0,"lunch":4,"snacks":0,"dinner":4.3}`, rec.Body.String())

	token := env.token(t, "student@iiitd.ac.in")
	rec = env.do(http.MethodPost, "/api/mess/feedback", `{"meal_type":"lunch","rating":4,"comment":"Tasty"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Feedback submitted successfully", decodeBody(t, rec)["message"])

	rec = env.do(http.MethodPost, "/api/mess/feedback", `{"meal_type":"lunch","rating":9}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeBody(t, rec)["error"])
}

func TestCreateComplaintUsesCallerEmail(t *testing.T) {
	env := newTestEnv(t)
	env.ignoreAudit()
	env.complaints.EXPECT().Create(gomock.Any(), model.NewComplaint{
		Title:       "Broken tap",
		Description: "Leaking all night",
		Location:    "Hostel B",
		Category:    model.CategoryMaintenance,
	}, "student@iiitd.ac.in").Return(model.Complaint{ID: "c-1"}, nil)

	body := `{"title":"Broken tap","description":"Leaking all night","location":"Hostel B","category":"maintenance","contact_email":"someone@else.com"}`
	rec := env.do(http.MethodPost, "/api/complaints", body, env.token(t, "student@iiitd.ac.in"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Complaint submitted successfully","id":"c-1"}`, rec.Body.String())
}

func TestListComplaints(t *testing.T) {
	env := newTestEnv(t)
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	env.complaints.EXPECT().List(gomock.Any(), model.ComplaintResolved).Return(nil, nil)
	env.complaints.EXPECT().List(gomock.Any(), model.ComplaintStatus("")).Return([]model.Complaint{{
		ID: "c-1", Title: "Bin", Description: "Full", Location: "Library", Category: model.CategoryWaste,
		ContactEmail: "student@iiitd.ac.in", Status: model.ComplaintPending, CreatedAt: created, UpdatedAt: created,
	}}, nil)

	rec := env.do(http.MethodGet, "/api/complaints?status=Resolved", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/complaints", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Pending", items[0]["status"])
	assert.Equal(t, "2026-01-10T08:00:00Z", items[0]["created_at"])
	assert.Nil(t, items[0]["imageBase64"])
}

func TestComplaintStatusUpdateIsAudited(t *testing.T) {
	env := newTestEnv(t)
	var recorded audit.Entry
	env.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry audit.Entry) {
		recorded = entry
	}).Times(1)
	env.complaints.EXPECT().UpdateStatus(gomock.Any(), "c-1", model.ComplaintInProgress).Return(nil)
	env.complaints.EXPECT().UpdateStatus(gomock.Any(), "c-2", model.ComplaintResolved).Return(model.NotFoundError("Complaint"))

	rec := env.do(http.MethodPut, "/api/complaints/c-1/status", `{"status":"In Progress"}`, env.token(t, testAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Complaint status updated successfully", decodeBody(t, rec)["message"])

	assert.Equal(t, http.MethodPut, recorded.Method)
	assert.Equal(t, "/api/complaints/{complaintId}/status", recorded.Route)
	assert.Equal(t, testAdmin, recorded.Actor)
	assert.Equal(t, "c-1", recorded.EntityID)
	assert.Equal(t, http.StatusOK, recorded.Status)

	rec = env.do(http.MethodPut, "/api/complaints/c-2/status", `{"status":"Resolved"}`, env.token(t, testAdmin))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Complaint not found", decodeBody(t, rec)["detail"])
}

func TestLostFoundEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.ignoreAudit()
	token := env.token(t, "student@iiitd.ac.in")

	env.lostFound.EXPECT().List(gomock.Any(), model.LostFoundFilter{Type: model.ItemLost, Search: "bottle"}).Return([]model.LostFoundItem{{
		ID: "i-1", Type: model.ItemLost, ItemName: "Blue Water Bottle", Status: model.ItemActive,
	}}, nil)
	env.lostFound.EXPECT().Create(gomock.Any(), gomock.Any(), "student@iiitd.ac.in").Return(model.LostFoundItem{ID: "i-2", Type: model.ItemFound}, nil)
	env.lostFound.EXPECT().Resolve(gomock.Any(), "i-1", model.Identity{Email: "student@iiitd.ac.in", Role: model.RoleStudent, DisplayName: "Student"}).
		Return(model.NewError(model.ErrForbidden, "Only the poster or an admin can resolve this item"))

	rec := env.do(http.MethodGet, "/api/lost-found/items?type=lost&search=bottle", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blue Water Bottle")

	rec = env.do(http.MethodPost, "/api/lost-found/item", `{"type":"found","item_name":"Keys","description":"Bunch of keys","location":"Gym","contact_name":"Jane"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Found item posted successfully","id":"i-2"}`, rec.Body.String())

	rec = env.do(http.MethodPut, "/api/lost-found/items/i-1/resolve", "", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/complaints", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Authorization, Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))

	req = httptest.NewRequest(http.MethodOptions, "/api/complaints", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcardAllowsCredentialedOrigins(t *testing.T) {
	server := NewServer(config.Config{CORSOrigins: []string{"*"}}, Dependencies{
		Tokens: auth.NewTokenService(testSecret, testIssuer, testAdmin),
	})
	handler := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://campus.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://campus.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")

	req = httptest.NewRequest(http.MethodOptions, "/api/lost-found/item", nil)
	req.Header.Set("Origin", "http://campus.example")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	req.Header.Set("Access-Control-Request-Headers", "x-requested-with")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://campus.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "PATCH", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "X-Requested-With", rec.Header().Get("Access-Control-Allow-Headers"))
}
