package store

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testDB connects to the MongoDB given by MONGO_TEST_URI, or skips. Each
// call gets a throwaway database that is dropped on cleanup.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping MongoDB integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("portfolio_test_" + time.Now().Format("20060102150405"))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db.Drop(ctx)
		client.Disconnect(ctx)
	})
	return db
}

func TestMongoCommentStore_Integration(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewMongoCommentStore(db)

	first, err := s.Create(ctx, "alice", "first", intPtr(4))
	require.NoError(t, err)
	second, err := s.Create(ctx, "bob", "second", nil)
	require.NoError(t, err)

	comments, err := s.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, second, comments[0].ID.Hex())
	require.Nil(t, comments[0].Rating)
	require.Equal(t, first, comments[1].ID.Hex())
	require.Equal(t, 4, *comments[1].Rating)
	require.False(t, comments[0].CreatedAt.Before(comments[1].CreatedAt))

	require.NoError(t, s.Delete(ctx, first))
	require.NoError(t, s.Delete(ctx, first)) // repeat delete is still success
	comments, err = s.ListRecent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestGridFSBlobStore_Integration(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s, err := NewGridFSBlobStore(db)
	require.NoError(t, err)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "x", bytes.NewReader([]byte("version A"))))
	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, []byte("version A"), got)

	// Replacement fully supersedes the old blob
	require.NoError(t, s.Put(ctx, "x", bytes.NewReader([]byte("version B - longer"))))
	got, err = s.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, []byte("version B - longer"), got)

	// Only one metadata document remains for the name
	n, err := db.Collection("fs.files").CountDocuments(ctx, bson.M{"filename": "x"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}
