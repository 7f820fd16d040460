package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"campus/backend/internal/model"
)

type equipmentResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Status   model.EquipmentStatus `json:"status"`
	IssuedTo *string               `json:"issued_to"`
	IssuedAt *time.Time            `json:"issued_at"`
}

type bookRequest struct {
	EquipmentID string `json:"equipment_id"`
}

type equipmentStatusRequest struct {
	Status   model.EquipmentStatus `json:"status"`
	IssuedTo *string               `json:"issued_to"`
}

func (s *Server) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := s.equipment.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := make([]equipmentResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, equipmentResponse{
			ID:       item.ID,
			Name:     item.Name,
			Status:   item.Status,
			IssuedTo: item.IssuedTo,
			IssuedAt: item.IssuedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBookEquipment(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	setEntity(r.Context(), req.EquipmentID)
	claims := claimsFromContext(r.Context())
	if err := s.equipment.Book(r.Context(), req.EquipmentID, claims.Email); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Equipment booked successfully"})
}

func (s *Server) handleSetEquipmentStatus(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "equipmentId")
	setEntity(r.Context(), equipmentID)
	var req equipmentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.equipment.SetStatus(r.Context(), equipmentID, req.Status, req.IssuedTo); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Equipment status updated successfully"})
}
