package store

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/AnshRaj112/portfolio-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCommentStore is an in-memory CommentStore for unit tests and local
// development without a database. It applies the same validation rules as
// the Mongo-backed store.
type MemoryCommentStore struct {
	mu       sync.RWMutex
	comments []models.Comment
}

func NewMemoryCommentStore() *MemoryCommentStore {
	return &MemoryCommentStore{}
}

func (s *MemoryCommentStore) Create(ctx context.Context, name, comment string, rating *int) (string, error) {
	rating, err := validateSubmission(name, comment, rating)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc := models.Comment{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Comment:   comment,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	s.comments = append(s.comments, doc)
	return doc.ID.Hex(), nil
}

func (s *MemoryCommentStore) ListRecent(ctx context.Context, limit int64) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Comment{}
	// Insertion order is creation order, so walk backwards for newest first.
	for i := len(s.comments) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, s.comments[i])
	}
	return out, nil
}

func (s *MemoryCommentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.comments {
		if c.ID.Hex() == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryBlobStore is an in-memory BlobStore for unit tests.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Put(ctx context.Context, name string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[name] = data
	return nil
}

func (s *MemoryBlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
