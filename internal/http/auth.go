package http

import (
	"net/http"

	"campus/backend/internal/metrics"
	"campus/backend/internal/model"
)

type loginRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string     `json:"token"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	Name  string     `json:"name"`
}

type meResponse struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	Name  string     `json:"name"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	issued, err := s.tokens.Issue(req.Email)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	metrics.LoginsTotal.WithLabelValues(string(issued.Claims.Role)).Inc()
	setActor(r.Context(), issued.Claims.Email)
	writeJSON(w, http.StatusOK, loginResponse{
		Token: issued.Token,
		Email: issued.Claims.Email,
		Role:  issued.Claims.Role,
		Name:  issued.Claims.Name,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	writeJSON(w, http.StatusOK, meResponse{Email: claims.Email, Role: claims.Role, Name: claims.Name})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.tokens.Revoke(r.Context(), claimsFromContext(r.Context())); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
