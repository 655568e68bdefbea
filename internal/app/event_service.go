package app

import (
	"context"
	"errors"
	"time"

	"github.com/eventstack/events-api/internal/clock"
	"github.com/eventstack/events-api/internal/domain"
)

// EventRepository is the storage surface the service needs: key lookup,
// unconditional put, targeted partial update, delete, and a full scan with
// an optional status filter.
type EventRepository interface {
	GetEvent(ctx context.Context, eventID string) (domain.Event, error)
	PutEvent(ctx context.Context, event domain.Event) error
	UpdateEvent(ctx context.Context, eventID string, changes domain.EventChanges, updatedAt string) (domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListEvents(ctx context.Context, status string) ([]domain.Event, error)
}

type EventService struct {
	repo  EventRepository
	clock clock.Clock
}

func NewEventService(repo EventRepository, clk clock.Clock) *EventService {
	return &EventService{
		repo:  repo,
		clock: clk,
	}
}

type CreateEventInput struct {
	EventID     string
	Title       string
	Description string
	Date        string
	Location    string
	Capacity    int
	Organizer   string
	Status      string
}

// CreateEvent stores a new event after checking the id is unused. The
// existence check and the put are two separate store calls; two concurrent
// creates with the same id can both pass the check (known limitation).
func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	_, err := s.repo.GetEvent(ctx, in.EventID)
	if err == nil {
		return domain.Event{}, domain.ErrEventAlreadyExists
	}
	if !errors.Is(err, domain.ErrEventNotFound) {
		return domain.Event{}, err
	}

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	now := timestamp(s.clock.Now())

	event := domain.Event{
		EventID:     in.EventID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Capacity:    in.Capacity,
		Organizer:   in.Organizer,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.PutEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	return s.repo.GetEvent(ctx, eventID)
}

// ListEvents returns all events, or only those whose status equals the
// filter when one is given. Both modes are a single unbounded scan; records
// beyond one scan page are omitted (known limitation).
func (s *EventService) ListEvents(ctx context.Context, status string) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx, status)
}

// UpdateEvent applies the supplied fields to an existing event in one
// partial-attribute store operation, forcing updatedAt to now. Fields not
// supplied are left untouched in storage.
func (s *EventService) UpdateEvent(ctx context.Context, eventID string, changes domain.EventChanges) (domain.Event, error) {
	if _, err := s.repo.GetEvent(ctx, eventID); err != nil {
		return domain.Event{}, err
	}
	if changes.IsEmpty() {
		return domain.Event{}, domain.ErrNoFieldsToUpdate
	}
	return s.repo.UpdateEvent(ctx, eventID, changes, timestamp(s.clock.Now()))
}

// DeleteEvent removes an event after checking it exists. The check and the
// delete are two separate store calls; a concurrent delete between them is
// unobserved (known limitation).
func (s *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	if _, err := s.repo.GetEvent(ctx, eventID); err != nil {
		return err
	}
	return s.repo.DeleteEvent(ctx, eventID)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
