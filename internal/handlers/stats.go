package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AnshRaj112/portfolio-backend/internal/models"
	"github.com/AnshRaj112/portfolio-backend/internal/store"
)

// StatsHandler summarizes recent submissions for the admin dashboard.
type StatsHandler struct {
	Store store.CommentStore
}

func NewStatsHandler(s store.CommentStore) *StatsHandler {
	return &StatsHandler{Store: s}
}

// Get handles GET /api/admin/stats. Stats are computed over the same window
// the dashboard displays: the 100 most recent submissions.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.Store.ListRecent(ctx, recentCommentsLimit)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ComputeStats(comments, time.Now()))
}
