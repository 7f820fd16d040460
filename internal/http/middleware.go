package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"campus/backend/internal/audit"
	"campus/backend/internal/auth"
	"campus/backend/internal/metrics"
)

type claimsKey struct{}

type requestInfoKey struct{}

// requestInfo is filled in by inner handlers so that observe can report
// who acted on what once the response is written.
type requestInfo struct {
	actor    string
	entityID string
}

func infoFromContext(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}

func setActor(ctx context.Context, email string) {
	if info := infoFromContext(ctx); info != nil {
		info.actor = email
	}
}

func setEntity(ctx context.Context, id string) {
	if info := infoFromContext(ctx); info != nil {
		info.entityID = id
	}
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims
}

func (s *Server) requireUser(next http.Handler) http.Handler {
	return s.authenticate(next, s.guard.RequireUser)
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return s.authenticate(next, s.guard.RequireAdmin)
}

func (s *Server) authenticate(next http.Handler, check func(context.Context, string) (*auth.Claims, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := check(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			s.fail(w, r, err)
			return
		}
		setActor(r.Context(), claims.Email)
		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// observe logs each request, records its latency and emits an audit entry
// for successful POST and PUT requests under /api.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		info := &requestInfo{}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		r = r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info))

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())

		fields := []zap.Field{
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		}
		if info.actor != "" {
			fields = append(fields, zap.String("email", info.actor))
		}
		if status >= http.StatusInternalServerError {
			s.logger.Error("http request", fields...)
		} else {
			s.logger.Info("http request", fields...)
		}

		if s.audit == nil || status >= http.StatusBadRequest || !strings.HasPrefix(r.URL.Path, "/api/") {
			return
		}
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			return
		}
		s.audit.Record(r.Context(), audit.Entry{
			Timestamp: start.UTC(),
			RequestID: middleware.GetReqID(r.Context()),
			Method:    r.Method,
			Route:     route,
			Actor:     info.actor,
			Status:    status,
			EntityID:  info.entityID,
		})
	})
}

// originAllowed echoes the request origin even for a "*" entry, since
// browsers reject a literal wildcard on credentialed responses.
func (s *Server) originAllowed(_ *http.Request, origin string) bool {
	for _, allowed := range s.cfg.CORSOrigins {
		allowed = strings.TrimSpace(allowed)
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
