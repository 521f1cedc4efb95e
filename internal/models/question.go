package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Question struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question   string             `bson:"question" json:"question"`
	Category   string             `bson:"category" json:"category"`
	Difficulty int                `bson:"difficulty" json:"difficulty"`
	FollowUp   string             `bson:"follow_up,omitempty" json:"follow_up,omitempty"`
	EventID    primitive.ObjectID `bson:"event_id,omitempty" json:"event_id,omitempty"`
	CreatedBy  primitive.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

type QuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
	FollowUp   string `json:"follow_up"`
	EventID    string `json:"event_id"`
}

type GenerateQuestionsRequest struct {
	Topic      string `json:"topic"`
	Difficulty int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
	Count      int    `json:"count" validate:"omitempty,min=1"`
}

// GeneratedQuestion is a suggestion candidate, not a stored document.
type GeneratedQuestion struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
	FollowUp   string `json:"follow_up,omitempty"`
}
