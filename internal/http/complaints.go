package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"campus/backend/internal/model"
)

type complaintResponse struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Location     string                  `json:"location"`
	Category     model.ComplaintCategory `json:"category"`
	ContactEmail string                  `json:"contact_email"`
	ImageBase64  *string                 `json:"imageBase64"`
	MimeType     *string                 `json:"mimeType"`
	Status       model.ComplaintStatus   `json:"status"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

type createComplaintRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Location    string                  `json:"location"`
	Category    model.ComplaintCategory `json:"category"`
	ImageBase64 *string                 `json:"imageBase64"`
	MimeType    *string                 `json:"mimeType"`
}

type complaintStatusRequest struct {
	Status model.ComplaintStatus `json:"status"`
}

func (s *Server) handleListComplaints(w http.ResponseWriter, r *http.Request) {
	status := model.ComplaintStatus(r.URL.Query().Get("status"))
	complaints, err := s.complaints.List(r.Context(), status)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := make([]complaintResponse, 0, len(complaints))
	for _, c := range complaints {
		resp = append(resp, complaintResponse{
			ID:           c.ID,
			Title:        c.Title,
			Description:  c.Description,
			Location:     c.Location,
			Category:     c.Category,
			ContactEmail: c.ContactEmail,
			ImageBase64:  c.ImageBase64,
			MimeType:     c.MimeType,
			Status:       c.Status,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req createComplaintRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	claims := claimsFromContext(r.Context())
	complaint, err := s.complaints.Create(r.Context(), model.NewComplaint{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		ImageBase64: req.ImageBase64,
		MimeType:    req.MimeType,
	}, claims.Email)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	setEntity(r.Context(), complaint.ID)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Complaint submitted successfully", ID: complaint.ID})
}

func (s *Server) handleUpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	complaintID := chi.URLParam(r, "complaintId")
	setEntity(r.Context(), complaintID)
	var req complaintStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.complaints.UpdateStatus(r.Context(), complaintID, req.Status); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Complaint status updated successfully"})
}
