package http

import (
	"net/http"

	"campus/backend/internal/model"
)

type menuResponse struct {
	Date      string   `json:"date"`
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Snacks    []string `json:"snacks"`
	Dinner    []string `json:"dinner"`
}

type feedbackRequest struct {
	MealType model.MealType `json:"meal_type"`
	Rating   int            `json:"rating"`
	Comment  *string        `json:"comment"`
}

func (s *Server) handleGetMenu(w http.ResponseWriter, _ *http.Request) {
	menu := s.mess.Menu()
	writeJSON(w, http.StatusOK, menuResponse{
		Date:      menu.Date,
		Breakfast: menu.Breakfast,
		Lunch:     menu.Lunch,
		Snacks:    menu.Snacks,
		Dinner:    menu.Dinner,
	})
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	claims := claimsFromContext(r.Context())
	in := model.NewFeedback{MealType: req.MealType, Rating: req.Rating, Comment: req.Comment}
	if err := s.mess.SubmitFeedback(r.Context(), in, claims.Email); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Feedback submitted successfully"})
}

func (s *Server) handleGetRatings(w http.ResponseWriter, r *http.Request) {
	summary, err := s.mess.RatingsSummary(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
