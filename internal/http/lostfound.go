package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"campus/backend/internal/model"
)

type lostFoundResponse struct {
	ID           string                `json:"id"`
	Type         model.LostFoundType   `json:"type"`
	ItemName     string                `json:"item_name"`
	Description  string                `json:"description"`
	Location     string                `json:"location"`
	ContactEmail string                `json:"contact_email"`
	ContactName  string                `json:"contact_name"`
	ImageBase64  *string               `json:"imageBase64"`
	MimeType     *string               `json:"mimeType"`
	Date         time.Time             `json:"date"`
	Status       model.LostFoundStatus `json:"status"`
}

type createLostFoundRequest struct {
	Type        model.LostFoundType `json:"type"`
	ItemName    string              `json:"item_name"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	ContactName string              `json:"contact_name"`
	ImageBase64 *string             `json:"imageBase64"`
	MimeType    *string             `json:"mimeType"`
}

func (s *Server) handleListLostFound(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.LostFoundFilter{
		Type:   model.LostFoundType(query.Get("type")),
		Search: query.Get("search"),
	}
	items, err := s.lostFound.List(r.Context(), filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := make([]lostFoundResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, lostFoundResponse{
			ID:           item.ID,
			Type:         item.Type,
			ItemName:     item.ItemName,
			Description:  item.Description,
			Location:     item.Location,
			ContactEmail: item.ContactEmail,
			ContactName:  item.ContactName,
			ImageBase64:  item.ImageBase64,
			MimeType:     item.MimeType,
			Date:         item.Date,
			Status:       item.Status,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateLostFound(w http.ResponseWriter, r *http.Request) {
	var req createLostFoundRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	claims := claimsFromContext(r.Context())
	item, err := s.lostFound.Create(r.Context(), model.NewLostFoundItem{
		Type:        req.Type,
		ItemName:    req.ItemName,
		Description: req.Description,
		Location:    req.Location,
		ContactName: req.ContactName,
		ImageBase64: req.ImageBase64,
		MimeType:    req.MimeType,
	}, claims.Email)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	setEntity(r.Context(), item.ID)
	label := cases.Title(language.Und).String(string(item.Type))
	writeJSON(w, http.StatusOK, messageResponse{Message: label + " item posted successfully", ID: item.ID})
}

func (s *Server) handleResolveLostFound(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	setEntity(r.Context(), itemID)
	claims := claimsFromContext(r.Context())
	if err := s.lostFound.Resolve(r.Context(), itemID, claims.Identity()); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Item marked as resolved"})
}
