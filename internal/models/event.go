package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventOpen      EventStatus = "open"
	EventFull      EventStatus = "full"
	EventCancelled EventStatus = "cancelled"
	EventCompleted EventStatus = "completed"
)

type ParticipantStatus string

const (
	ParticipantRegistered ParticipantStatus = "registered"
	ParticipantAttended   ParticipantStatus = "attended"
	ParticipantCancelled  ParticipantStatus = "cancelled"
)

type Location struct {
	VenueName string `bson:"venue_name" json:"venue_name"`
	Address   string `bson:"address" json:"address"`
}

type Capacity struct {
	Maximum              int `bson:"maximum" json:"maximum"`
	CurrentRegistrations int `bson:"current_registrations" json:"current_registrations"`
}

type Pricing struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

// Host carries a snapshot of the organizer's name next to the reference,
// so event listings don't need a users lookup.
type Host struct {
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name   string             `bson:"name" json:"name"`
}

type Participant struct {
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name   string             `bson:"name" json:"name"`
	Status ParticipantStatus  `bson:"status" json:"status"`
}

type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Date         time.Time          `bson:"date" json:"date"`
	Location     Location           `bson:"location" json:"location"`
	Capacity     Capacity           `bson:"capacity" json:"capacity"`
	Pricing      Pricing            `bson:"pricing" json:"pricing"`
	Host         Host               `bson:"host" json:"host"`
	Status       EventStatus        `bson:"status" json:"status"`
	Participants []Participant      `bson:"participants" json:"participants"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type EventRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date" validate:"required"`
	Location    Location    `json:"location"`
	Capacity    Capacity    `json:"capacity"`
	Pricing     Pricing     `json:"pricing"`
	Status      EventStatus `json:"status" validate:"omitempty,oneof=draft open full cancelled completed"`
}
