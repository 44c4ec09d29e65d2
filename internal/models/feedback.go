// internal/models/feedback.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID                primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Rating            int                `json:"rating" bson:"rating"`
	Comment           *string            `json:"comment" bson:"comment"`
	MinecraftUsername *string            `json:"minecraft_username" bson:"minecraft_username"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}

// FeedbackView is the public shape of a feedback document. ID is null when the
// document carries no identifier.
type FeedbackView struct {
	ID *string `json:"id"`
	Feedback
}

func (f Feedback) View() FeedbackView {
	view := FeedbackView{Feedback: f}
	if !f.ID.IsZero() {
		id := f.ID.Hex()
		view.ID = &id
	}
	return view
}
