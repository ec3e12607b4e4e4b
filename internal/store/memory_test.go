package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestMemoryCommentStore_CreateAndListRecent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCommentStore()

	first, err := s.Create(ctx, "alice", "first comment", intPtr(4))
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := s.Create(ctx, "bob", "second comment", nil)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	comments, err := s.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	// Newest first
	require.Equal(t, "bob", comments[0].Name)
	require.Nil(t, comments[0].Rating)
	require.False(t, comments[0].HasRating())
	require.Equal(t, "alice", comments[1].Name)
	require.NotNil(t, comments[1].Rating)
	require.Equal(t, 4, *comments[1].Rating)
}

func TestMemoryCommentStore_ListRecentLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCommentStore()
	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx, "n", "c", nil)
		require.NoError(t, err)
	}
	comments, err := s.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, comments, 3)
}

func TestMemoryCommentStore_Validation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCommentStore()

	_, err := s.Create(ctx, "", "hello", nil)
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Create(ctx, "alice", "   ", nil)
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Create(ctx, "alice", "hello", intPtr(6))
	require.ErrorIs(t, err, ErrInvalidRating)

	_, err = s.Create(ctx, "alice", "hello", intPtr(-1))
	require.ErrorIs(t, err, ErrInvalidRating)

	// Nothing was inserted by the failed creates
	comments, err := s.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Empty(t, comments)

	// Zero means "no rating", stored as null
	_, err = s.Create(ctx, "alice", "hello", intPtr(0))
	require.NoError(t, err)
	comments, err = s.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Nil(t, comments[0].Rating)
}

func TestMemoryCommentStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCommentStore()

	id, err := s.Create(ctx, "alice", "to be removed", nil)
	require.NoError(t, err)
	keep, err := s.Create(ctx, "bob", "to be kept", nil)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	comments, err := s.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, keep, comments[0].ID.Hex())

	// Unknown ids are indistinguishable from success and change nothing
	require.NoError(t, s.Delete(ctx, "64b0c0ffee0000000000dead"))
	comments, err = s.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestMemoryBlobStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryBlobStore()

	payload := []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0x01}
	require.NoError(t, s.Put(ctx, "x", bytes.NewReader(payload)))

	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Len(t, got, len(payload))
}

func TestMemoryBlobStore_Replace(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryBlobStore()

	require.NoError(t, s.Put(ctx, "x", bytes.NewReader([]byte("version A"))))
	require.NoError(t, s.Put(ctx, "x", bytes.NewReader([]byte("version B - longer"))))

	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, []byte("version B - longer"), got)
}

func TestMemoryBlobStore_Missing(t *testing.T) {
	s := NewMemoryBlobStore()
	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
