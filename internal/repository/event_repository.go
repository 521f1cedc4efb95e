package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ekinokr/eventmate-backend/internal/models"
)

type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection: db.Collection("events"),
	}
}

func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetName("events_date"),
	})
	if err != nil {
		return fmt.Errorf("events indexes: %w", err)
	}
	return nil
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	res, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &event, nil
}

// ListByDate returns every event, earliest first.
func (r *EventRepository) ListByDate(ctx context.Context) ([]models.Event, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.collection.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	for cur.Next(ctx) {
		var event models.Event
		if err := cur.Decode(&event); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, event)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list events cursor: %w", err)
	}
	return events, nil
}
