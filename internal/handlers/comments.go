package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AnshRaj112/portfolio-backend/internal/services"
	"github.com/AnshRaj112/portfolio-backend/internal/store"
)

// recentCommentsLimit caps the public listing; there is no pagination.
const recentCommentsLimit = 100

// CreateCommentRequest represents the request to create a comment
type CreateCommentRequest struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Rating  *int   `json:"rating"`
}

// CreateCommentResponse represents the response after creating a comment
type CreateCommentResponse struct {
	InsertedID string `json:"insertedId"`
}

// ErrorResponse is the JSON body for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// CommentHandler serves the guestbook endpoints.
type CommentHandler struct {
	Store store.CommentStore
	Cache *services.CommentCache
}

func NewCommentHandler(s store.CommentStore, cache *services.CommentCache) *CommentHandler {
	return &CommentHandler{Store: s, Cache: cache}
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	insertedID, err := h.Store.Create(ctx, req.Name, req.Comment, req.Rating)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, store.ErrMissingFields) || errors.Is(err, store.ErrInvalidRating) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	h.Cache.Invalidate(ctx)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateCommentResponse{InsertedID: insertedID})
}

// List handles GET /api/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	comments, ok := h.Cache.Get(ctx)
	if !ok {
		var err error
		comments, err = h.Store.ListRecent(ctx, recentCommentsLimit)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}
		h.Cache.Set(ctx, comments)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comments)
}

// Delete handles DELETE /api/comments?id=<hex>
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	commentID := r.URL.Query().Get("id")
	if commentID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Comment ID is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Deleting an id that no longer exists still reports success; the admin
	// page may race its own refresh.
	if err := h.Store.Delete(ctx, commentID); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	h.Cache.Invalidate(ctx)

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
