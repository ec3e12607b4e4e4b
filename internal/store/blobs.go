package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// GridFSBlobStore keeps named binary assets in MongoDB GridFS. Lookup is by
// exact filename against the fs.files metadata collection.
type GridFSBlobStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSBlobStore(db *mongo.Database) (*GridFSBlobStore, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &GridFSBlobStore{bucket: bucket}, nil
}

func (s *GridFSBlobStore) Put(ctx context.Context, name string, src io.Reader) error {
	existing, err := s.lookup(ctx, name)
	if err != nil && err != ErrNotFound {
		return err
	}
	// Delete-then-write: a failure between the two leaves the name absent,
	// and a concurrent Get may observe it. Acceptable for a single small
	// asset re-uploaded rarely.
	if err == nil {
		if delErr := s.bucket.Delete(existing); delErr != nil {
			return fmt.Errorf("delete existing %s: %w", name, delErr)
		}
	}

	if deadline, ok := ctx.Deadline(); ok {
		s.bucket.SetWriteDeadline(deadline)
	}
	if _, err := s.bucket.UploadFromStream(name, src); err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	return nil
}

func (s *GridFSBlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	fileID, err := s.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		s.bucket.SetReadDeadline(deadline)
	}
	// The whole blob is buffered in memory. Fine while the only asset is a
	// small APK; anything larger should stream chunks straight to the
	// response instead.
	var buf bytes.Buffer
	if _, err := s.bucket.DownloadToStream(fileID, &buf); err != nil {
		return nil, fmt.Errorf("download %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (s *GridFSBlobStore) lookup(ctx context.Context, name string) (primitive.ObjectID, error) {
	var file struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := s.bucket.GetFilesCollection().FindOne(ctx, bson.M{"filename": name}).Decode(&file)
	if err == mongo.ErrNoDocuments {
		return primitive.NilObjectID, ErrNotFound
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return file.ID, nil
}
