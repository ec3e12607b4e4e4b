package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is one guestbook submission. The contact form on the site posts
// into the same collection, encoding email and subject inside the comment
// body, so a "contact message" is derived from the text rather than stored
// as its own field.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Comment   string             `bson:"comment" json:"comment"`
	Rating    *int               `bson:"rating" json:"rating"` // nil means no rating given
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// IsContactMessage reports whether the body looks like a structured contact
// form submission. Matches the admin page heuristic: both markers present.
func (c Comment) IsContactMessage() bool {
	return strings.Contains(c.Comment, "Email:") && strings.Contains(c.Comment, "Subject:")
}

func (c Comment) HasRating() bool {
	return c.Rating != nil
}
