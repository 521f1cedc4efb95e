package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ekinokr/eventmate-backend/internal/models"
)

var ErrEventNotFound = errors.New("event not found")

// EventRepository persists event documents. GetByID returns (nil, nil)
// when no document matches; ListByDate sorts ascending by event date.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	ListByDate(ctx context.Context) ([]models.Event, error)
}

type EventService struct {
	eventRepo EventRepository
	userRepo  UserRepository
}

func NewEventService(eventRepo EventRepository, userRepo UserRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.ListByDate(ctx)
}

// GetEvent treats a malformed id the same as a missing document.
func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// CreateEvent looks up the caller to snapshot their name onto host.name.
// Capacity, pricing and date ranges are not validated here.
func (s *EventService) CreateEvent(ctx context.Context, userID string, req models.EventRequest) (*models.Event, error) {
	hostID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	host, err := s.userRepo.GetByID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, ErrUserNotFound
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Pricing:     req.Pricing,
		Host: models.Host{
			UserID: host.ID,
			Name:   host.Name,
		},
		Status:       req.Status,
		Participants: []models.Participant{},
		CreatedAt:    time.Now().UTC(),
	}

	// Defaults
	event.Capacity.CurrentRegistrations = 0
	if event.Pricing.Currency == "" {
		event.Pricing.Currency = "TRY"
	}
	if event.Status == "" {
		event.Status = models.EventOpen
	}

	return s.eventRepo.Create(ctx, event)
}
