package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"campus/backend/internal/audit"
	"campus/backend/internal/auth"
	"campus/backend/internal/config"
	"campus/backend/internal/model"
)

//go:generate mockgen -destination=mocks/registries.go -package=mocks campus/backend/internal/http EquipmentRegistry,ComplaintRegistry,MessRegistry,LostFoundRegistry,Auditor

type EquipmentRegistry interface {
	List(ctx context.Context) ([]model.Equipment, error)
	Book(ctx context.Context, id, email string) error
	SetStatus(ctx context.Context, id string, status model.EquipmentStatus, issuedTo *string) error
}

type ComplaintRegistry interface {
	Create(ctx context.Context, in model.NewComplaint, email string) (model.Complaint, error)
	List(ctx context.Context, status model.ComplaintStatus) ([]model.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus) error
}

type MessRegistry interface {
	Menu() model.MessMenu
	SubmitFeedback(ctx context.Context, in model.NewFeedback, email string) error
	RatingsSummary(ctx context.Context) (map[model.MealType]float64, error)
}

type LostFoundRegistry interface {
	Create(ctx context.Context, in model.NewLostFoundItem, email string) (model.LostFoundItem, error)
	List(ctx context.Context, filter model.LostFoundFilter) ([]model.LostFoundItem, error)
	Resolve(ctx context.Context, id string, actor model.Identity) error
}

type Auditor interface {
	Record(ctx context.Context, entry audit.Entry)
}

type Dependencies struct {
	Tokens     *auth.TokenService
	Equipment  EquipmentRegistry
	Complaints ComplaintRegistry
	Mess       MessRegistry
	LostFound  LostFoundRegistry
	Audit      Auditor
	Logger     *zap.Logger
}

type Server struct {
	cfg        config.Config
	tokens     *auth.TokenService
	guard      *auth.Guard
	equipment  EquipmentRegistry
	complaints ComplaintRegistry
	mess       MessRegistry
	lostFound  LostFoundRegistry
	audit      Auditor
	logger     *zap.Logger
}

func NewServer(cfg config.Config, deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:        cfg,
		tokens:     deps.Tokens,
		guard:      auth.NewGuard(deps.Tokens),
		equipment:  deps.Equipment,
		complaints: deps.Complaints,
		mess:       deps.Mess,
		lostFound:  deps.LostFound,
		audit:      deps.Audit,
		logger:     logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, s.observe, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  s.originAllowed,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.With(s.requireUser).Get("/auth/me", s.handleMe)
		r.With(s.requireUser).Post("/auth/logout", s.handleLogout)

		r.Get("/mess/menu", s.handleGetMenu)
		r.With(s.requireUser).Post("/mess/feedback", s.handleSubmitFeedback)
		r.Get("/mess/ratings", s.handleGetRatings)

		r.Get("/sports/equipment", s.handleListEquipment)
		r.With(s.requireUser).Post("/sports/book", s.handleBookEquipment)
		r.With(s.requireAdmin).Put("/sports/equipment/{equipmentId}/status", s.handleSetEquipmentStatus)

		r.Get("/lost-found/items", s.handleListLostFound)
		r.With(s.requireUser).Post("/lost-found/item", s.handleCreateLostFound)
		r.With(s.requireUser).Put("/lost-found/items/{itemId}/resolve", s.handleResolveLostFound)

		r.Get("/complaints", s.handleListComplaints)
		r.With(s.requireUser).Post("/complaints", s.handleCreateComplaint)
		r.With(s.requireAdmin).Put("/complaints/{complaintId}/status", s.handleUpdateComplaintStatus)
	})

	return r
}

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type errorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func decodeJSON(r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return &model.ValidationError{Reason: "Invalid request body"}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail, Error: code})
}

// statusForError maps the domain taxonomy onto HTTP. Conflicts are reported
// as 400, which is what existing clients check for.
func statusForError(err error) (int, string) {
	switch {
	case model.IsValidation(err):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, model.ErrConflict):
		return http.StatusBadRequest, "conflict"
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "server_error"
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusForError(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		detail = "Internal server error"
	}
	writeError(w, status, code, detail)
}
