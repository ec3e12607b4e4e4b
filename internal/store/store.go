package store

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/AnshRaj112/portfolio-backend/internal/models"
)

var (
	// ErrMissingFields is returned when a submission lacks a name or comment.
	ErrMissingFields = errors.New("missing fields: name and comment are required")
	// ErrInvalidRating is returned for ratings outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrNotFound is returned when a named blob does not exist.
	ErrNotFound = errors.New("not found")
)

// CommentStore holds guestbook submissions.
type CommentStore interface {
	// Create validates and inserts a submission, returning its new id.
	// A nil or zero rating is stored as null.
	Create(ctx context.Context, name, comment string, rating *int) (string, error)
	// ListRecent returns up to limit submissions, newest first.
	ListRecent(ctx context.Context, limit int64) ([]models.Comment, error)
	// Delete removes a submission by id. Deleting an unknown id is not an
	// error; callers cannot use Delete to probe for existence.
	Delete(ctx context.Context, id string) error
}

// BlobStore holds named binary assets.
type BlobStore interface {
	// Put replaces any existing blob under name with the bytes read from
	// src. The replace is delete-then-write, not atomic: a failure in
	// between can leave the name absent, and a concurrent Get may miss.
	Put(ctx context.Context, name string, src io.Reader) error
	// Get returns the full contents of the named blob, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
}

// validateSubmission applies the shared creation rules: name and comment
// must be non-empty after trimming, rating either absent or 1-5. A zero
// rating means "no rating" and is normalized to nil, matching how the
// frontend sends unrated contact form submissions.
func validateSubmission(name, comment string, rating *int) (*int, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(comment) == "" {
		return nil, ErrMissingFields
	}
	if rating == nil || *rating == 0 {
		return nil, nil
	}
	if *rating < 1 || *rating > 5 {
		return nil, ErrInvalidRating
	}
	return rating, nil
}
