package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ekinokr/eventmate-backend/internal/models"
)

// mockEventRepository is a map-backed EventRepository whose ListByDate
// mirrors the mongo sort.
type mockEventRepository struct {
	events map[primitive.ObjectID]*models.Event
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{
		events: make(map[primitive.ObjectID]*models.Event),
	}
}

func (r *mockEventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.ID = primitive.NewObjectID()
	r.events[event.ID] = event
	return event, nil
}

func (r *mockEventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return r.events[id], nil
}

func (r *mockEventRepository) ListByDate(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	for _, e := range r.events {
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

func newTestEventService() (*EventService, *mockEventRepository, *mockUserRepository) {
	eventRepo := newMockEventRepository()
	userRepo := newMockUserRepository()
	return NewEventService(eventRepo, userRepo), eventRepo, userRepo
}

func seedUser(t *testing.T, userRepo *mockUserRepository, name string) *models.User {
	t.Helper()
	user, err := userRepo.Create(context.Background(), &models.User{
		Name:  name,
		Email: name + "@example.com",
		Role:  models.RoleOrganizer,
	})
	require.NoError(t, err)
	return user
}

func TestCreateEventSnapshotsHost(t *testing.T) {
	svc, _, userRepo := newTestEventService()
	host := seedUser(t, userRepo, "zeynep")

	event, err := svc.CreateEvent(context.Background(), host.ID.Hex(), models.EventRequest{
		Title: "Friday Mixer",
		Date:  time.Date(2026, 10, 2, 19, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, host.ID, event.Host.UserID)
	assert.Equal(t, "zeynep", event.Host.Name)
}

func TestCreateEventDefaults(t *testing.T) {
	svc, _, userRepo := newTestEventService()
	host := seedUser(t, userRepo, "zeynep")

	event, err := svc.CreateEvent(context.Background(), host.ID.Hex(), models.EventRequest{
		Title:    "Friday Mixer",
		Date:     time.Date(2026, 10, 2, 19, 0, 0, 0, time.UTC),
		Capacity: models.Capacity{Maximum: 40, CurrentRegistrations: 12},
		Pricing:  models.Pricing{Amount: 150},
	})
	require.NoError(t, err)

	assert.Equal(t, models.EventOpen, event.Status)
	assert.Equal(t, "TRY", event.Pricing.Currency)
	assert.Equal(t, 0, event.Capacity.CurrentRegistrations, "registrations always start at zero")
	assert.NotNil(t, event.Participants)
	assert.Empty(t, event.Participants)
}

func TestCreateEventUnknownHost(t *testing.T) {
	svc, _, _ := newTestEventService()

	_, err := svc.CreateEvent(context.Background(), primitive.NewObjectID().Hex(), models.EventRequest{
		Title: "Orphan Event",
		Date:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListEventsSortedByDate(t *testing.T) {
	svc, _, userRepo := newTestEventService()
	host := seedUser(t, userRepo, "zeynep")

	// Insert out of order.
	dates := []time.Time{
		time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := svc.CreateEvent(context.Background(), host.ID.Hex(), models.EventRequest{Title: "e", Date: d})
		require.NoError(t, err)
	}

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.Before(events[i-1].Date))
	}
}

func TestGetEventInvalidID(t *testing.T) {
	svc, _, _ := newTestEventService()

	_, err := svc.GetEvent(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetEventMissing(t *testing.T) {
	svc, _, _ := newTestEventService()

	_, err := svc.GetEvent(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrEventNotFound)
}
