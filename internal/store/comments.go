package store

import (
	"context"
	"time"

	"github.com/AnshRaj112/portfolio-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCommentStore is the MongoDB-backed CommentStore over the "comments"
// collection.
type MongoCommentStore struct {
	col *mongo.Collection
}

func NewMongoCommentStore(db *mongo.Database) *MongoCommentStore {
	return &MongoCommentStore{col: db.Collection("comments")}
}

func (s *MongoCommentStore) Create(ctx context.Context, name, comment string, rating *int) (string, error) {
	rating, err := validateSubmission(name, comment, rating)
	if err != nil {
		return "", err
	}

	doc := models.Comment{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Comment:   comment,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID.Hex(), nil
}

func (s *MongoCommentStore) ListRecent(ctx context.Context, limit int64) ([]models.Comment, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"createdAt": -1}) // newest first
	findOptions.SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *MongoCommentStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids cannot match anything; same outcome as a miss.
		return nil
	}
	// DeletedCount is deliberately ignored: the API does not distinguish
	// "deleted" from "nothing to delete".
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
