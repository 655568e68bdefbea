package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventstack/events-api/internal/clock"
	"github.com/eventstack/events-api/internal/domain"
)

type fakeEventRepo struct {
	stored domain.Event

	getErr    error
	putErr    error
	updateErr error
	deleteErr error
	listErr   error

	putEvent      domain.Event
	putCalled     bool
	updateCalled  bool
	updateChanges domain.EventChanges
	updatedAt     string
	deleteCalled  bool
	listStatus    string
}

func (f *fakeEventRepo) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	if f.getErr != nil {
		return domain.Event{}, f.getErr
	}
	return f.stored, nil
}

func (f *fakeEventRepo) PutEvent(ctx context.Context, event domain.Event) error {
	f.putCalled = true
	f.putEvent = event
	return f.putErr
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, eventID string, changes domain.EventChanges, updatedAt string) (domain.Event, error) {
	f.updateCalled = true
	f.updateChanges = changes
	f.updatedAt = updatedAt
	if f.updateErr != nil {
		return domain.Event{}, f.updateErr
	}
	return f.stored, nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, eventID string) error {
	f.deleteCalled = true
	return f.deleteErr
}

func (f *fakeEventRepo) ListEvents(ctx context.Context, status string) ([]domain.Event, error) {
	f.listStatus = status
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []domain.Event{f.stored}, nil
}

func TestEventService_CreateEvent_StampsTimestamps(t *testing.T) {
	repo := &fakeEventRepo{getErr: domain.ErrEventNotFound}
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewEventService(repo, clock.NewFixed(now))

	got, err := svc.CreateEvent(context.Background(), CreateEventInput{
		EventID:   "e1",
		Title:     "Launch",
		Capacity:  50,
		Organizer: "Ops",
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if got.CreatedAt != "2024-01-01T12:00:00Z" {
		t.Fatalf("expected createdAt 2024-01-01T12:00:00Z, got %q", got.CreatedAt)
	}
	if got.CreatedAt != got.UpdatedAt {
		t.Fatalf("expected createdAt == updatedAt, got %q / %q", got.CreatedAt, got.UpdatedAt)
	}
	if !repo.putCalled {
		t.Fatalf("expected put to be called")
	}
}

func TestEventService_CreateEvent_DefaultsStatus(t *testing.T) {
	repo := &fakeEventRepo{getErr: domain.ErrEventNotFound}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	got, err := svc.CreateEvent(context.Background(), CreateEventInput{EventID: "e1"})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Fatalf("expected status %q, got %q", domain.StatusActive, got.Status)
	}
}

func TestEventService_CreateEvent_KeepsSuppliedStatus(t *testing.T) {
	repo := &fakeEventRepo{getErr: domain.ErrEventNotFound}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	got, err := svc.CreateEvent(context.Background(), CreateEventInput{EventID: "e1", Status: "draft"})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if got.Status != "draft" {
		t.Fatalf("expected status draft, got %q", got.Status)
	}
}

func TestEventService_CreateEvent_RejectsDuplicate(t *testing.T) {
	repo := &fakeEventRepo{stored: domain.Event{EventID: "e1"}}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{EventID: "e1"})
	if err != domain.ErrEventAlreadyExists {
		t.Fatalf("expected ErrEventAlreadyExists, got %v", err)
	}
	if repo.putCalled {
		t.Fatalf("expected put not to be called")
	}
}

func TestEventService_CreateEvent_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &fakeEventRepo{getErr: storeErr}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{EventID: "e1"})
	if err != storeErr {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	repo := &fakeEventRepo{getErr: domain.ErrEventNotFound}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	title := "x"
	_, err := svc.UpdateEvent(context.Background(), "e1", domain.EventChanges{Title: &title})
	if err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if repo.updateCalled {
		t.Fatalf("expected update not to be called")
	}
}

func TestEventService_UpdateEvent_RejectsEmptyChanges(t *testing.T) {
	repo := &fakeEventRepo{stored: domain.Event{EventID: "e1"}}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	_, err := svc.UpdateEvent(context.Background(), "e1", domain.EventChanges{})
	if err != domain.ErrNoFieldsToUpdate {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
	if repo.updateCalled {
		t.Fatalf("expected update not to be called")
	}
}

func TestEventService_UpdateEvent_PassesTimestamp(t *testing.T) {
	repo := &fakeEventRepo{stored: domain.Event{EventID: "e1"}}
	now := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	svc := NewEventService(repo, clock.NewFixed(now))

	capacity := 75
	_, err := svc.UpdateEvent(context.Background(), "e1", domain.EventChanges{Capacity: &capacity})
	if err != nil {
		t.Fatalf("update event: %v", err)
	}
	if repo.updatedAt != "2024-06-01T08:30:00Z" {
		t.Fatalf("expected updatedAt 2024-06-01T08:30:00Z, got %q", repo.updatedAt)
	}
	if repo.updateChanges.Capacity == nil || *repo.updateChanges.Capacity != 75 {
		t.Fatalf("expected capacity change to reach the repository")
	}
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	repo := &fakeEventRepo{getErr: domain.ErrEventNotFound}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	err := svc.DeleteEvent(context.Background(), "e1")
	if err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if repo.deleteCalled {
		t.Fatalf("expected delete not to be called")
	}
}

func TestEventService_DeleteEvent_Deletes(t *testing.T) {
	repo := &fakeEventRepo{stored: domain.Event{EventID: "e1"}}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	if err := svc.DeleteEvent(context.Background(), "e1"); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if !repo.deleteCalled {
		t.Fatalf("expected delete to be called")
	}
}

func TestEventService_ListEvents_PassesFilter(t *testing.T) {
	repo := &fakeEventRepo{stored: domain.Event{EventID: "e1", Status: "active"}}
	svc := NewEventService(repo, clock.NewFixed(time.Now()))

	events, err := svc.ListEvents(context.Background(), "active")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if repo.listStatus != "active" {
		t.Fatalf("expected status filter to reach the repository, got %q", repo.listStatus)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}
