package service

import (
	"context"
	"strings"
	"testing"
	"time"

	appErrors "slotswapper/core/errors"
	"slotswapper/modules/event/dto"
	"slotswapper/modules/event/entity"

	"github.com/google/uuid"
)

type fakeEventRepo struct {
	events        map[uuid.UUID]*entity.Event
	deletedEvents []uuid.UUID
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*entity.Event)}
}

func (r *fakeEventRepo) CreateEvent(_ context.Context, event *entity.Event) (*entity.Event, error) {
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	r.events[event.ID] = event
	return event, nil
}

func (r *fakeEventRepo) GetEventByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) GetEventsByUserID(_ context.Context, userID uuid.UUID) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range r.events {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) UpdateEvent(_ context.Context, event *entity.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) UpdateEventStatus(_ context.Context, id uuid.UUID, status entity.EventStatus) error {
	if e, ok := r.events[id]; ok {
		e.Status = status
	}
	return nil
}

func (r *fakeEventRepo) DeleteEventWithRequests(_ context.Context, id uuid.UUID) error {
	delete(r.events, id)
	r.deletedEvents = append(r.deletedEvents, id)
	return nil
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEventService(repo *fakeEventRepo) *EventService {
	return &EventService{
		repo: repo,
		now:  func() time.Time { return testNow },
	}
}

func seedEvent(repo *fakeEventRepo, userID uuid.UUID, status entity.EventStatus, start time.Time) *entity.Event {
	e := &entity.Event{
		UserID:    userID,
		Title:     "Team sync",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
		Slug:      "team-sync-abc1234",
	}
	e.ID = uuid.New()
	repo.events[e.ID] = e
	return e
}

func TestCreateEventDefaultsToBusy(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newTestEventService(repo)
	userID := uuid.New()

	resp, appErr := svc.CreateEvent(context.Background(), userID, &dto.CreateEventRequest{
		Title:     "Gym session",
		StartTime: testNow.Add(24 * time.Hour),
		EndTime:   testNow.Add(25 * time.Hour),
	})
	if appErr != nil {
		t.Fatalf("CreateEvent returned error: %v", appErr)
	}

	if resp.Status != entity.EventStatusBusy {
		t.Errorf("status = %s, want BUSY", resp.Status)
	}
	if resp.UserID != userID {
		t.Errorf("user_id = %s, want %s", resp.UserID, userID)
	}
	if !strings.HasPrefix(resp.Slug, "gym-session-") {
		t.Errorf("slug = %q, want gym-session- prefix", resp.Slug)
	}
}

func TestCreateEventRejectsSwapPendingStatus(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newTestEventService(repo)

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title:     "Sneaky",
		StartTime: testNow.Add(24 * time.Hour),
		EndTime:   testNow.Add(25 * time.Hour),
		Status:    "SWAP_PENDING",
	})
	if appErr == nil {
		t.Fatal("CreateEvent accepted SWAP_PENDING, want error")
	}
	if appErr.Code != appErrors.ErrInvalidInput {
		t.Errorf("error code = %s, want %s", appErr.Code, appErrors.ErrInvalidInput)
	}
}

func TestUpdateEventOwnershipAndExistence(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newTestEventService(repo)
	owner := uuid.New()
	stranger := uuid.New()
	e := seedEvent(repo, owner, entity.EventStatusBusy, testNow.Add(24*time.Hour))

	title := "Renamed"

	_, appErr := svc.UpdateEvent(context.Background(), uuid.New(), owner, &dto.UpdateEventRequest{Title: &title})
	if appErr == nil || appErr.Code != appErrors.ErrNotFound {
		t.Errorf("unknown event: got %v, want NOT_FOUND", appErr)
	}

	_, appErr = svc.UpdateEvent(context.Background(), e.ID, stranger, &dto.UpdateEventRequest{Title: &title})
	if appErr == nil || appErr.Code != appErrors.ErrForbidden {
		t.Errorf("foreign event: got %v, want FORBIDDEN", appErr)
	}

	resp, appErr := svc.UpdateEvent(context.Background(), e.ID, owner, &dto.UpdateEventRequest{Title: &title})
	if appErr != nil {
		t.Fatalf("UpdateEvent returned error: %v", appErr)
	}
	if resp.Title != "Renamed" {
		t.Errorf("title = %q, want %q", resp.Title, "Renamed")
	}
}

func TestUpdateEventLockedCases(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newTestEventService(repo)
	owner := uuid.New()
	title := "Renamed"

	pending := seedEvent(repo, owner, entity.EventStatusSwapPending, testNow.Add(24*time.Hour))
	_, appErr := svc.UpdateEvent(context.Background(), pending.ID, owner, &dto.UpdateEventRequest{Title: &title})
	if appErr == nil || appErr.Code != appErrors.ErrLocked {
		t.Errorf("swap pending event: got %v, want LOCKED", appErr)
	}

	past := seedEvent(repo, owner, entity.EventStatusBusy, testNow.Add(-time.Hour))
	_, appErr = svc.UpdateEvent(context.Background(), past.ID, owner, &dto.UpdateEventRequest{Title: &title})
	if appErr == nil || appErr.Code != appErrors.ErrLocked {
		t.Errorf("past event: got %v, want LOCKED", appErr)
	}
}

func TestUpdateEventRevalidatesMergedTimes(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newTestEventService(repo)
	owner := uuid.New()
	e := seedEvent(repo, owner, entity.EventStatusBusy, testNow.Add(24*time.Hour))

	// Moving the end before the unchanged start must fail.
	badEnd := testNow.Add(23 * time.Hour)
	_, appErr := svc.UpdateEvent(context.Background(), e.ID, owner, &dto.UpdateEventRequest{EndTime: &badEnd})
	if appErr == nil || appErr.Code != appErrors.ErrInvalidInput {
		t.Errorf("end before start: got %v, want INVALID_INPUT", appErr)
	}

	pastStart := testNow.Add(-time.Hour)
	_, appErr = svc.UpdateEvent(context.Background(), e.ID, owner, &dto.UpdateEventRequest{StartTime: &pastStart})
	if appErr == nil || appErr.Code != appErrors.ErrInvalidInput {
		t.Errorf("start in the past: got %v, want INVALID_INPUT", appErr)
	}
}

func TestUpdateEventStatusRules(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newTestEventService(repo)
	owner := uuid.New()

	e := seedEvent(repo, owner, entity.EventStatusBusy, testNow.Add(24*time.Hour))

	resp, appErr := svc.UpdateEventStatus(context.Background(), e.ID, owner, entity.EventStatusSwappable)
	if appErr != nil {
		t.Fatalf("UpdateEventStatus returned error: %v", appErr)
	}
	if resp.Status != entity.EventStatusSwappable {
		t.Errorf("status = %s, want SWAPPABLE", resp.Status)
	}

	_, appErr = svc.UpdateEventStatus(context.Background(), e.ID, owner, entity.EventStatusSwapPending)
	if appErr == nil || appErr.Code != appErrors.ErrInvalidInput {
		t.Errorf("setting SWAP_PENDING directly: got %v, want INVALID_INPUT", appErr)
	}

	locked := seedEvent(repo, owner, entity.EventStatusSwapPending, testNow.Add(24*time.Hour))
	_, appErr = svc.UpdateEventStatus(context.Background(), locked.ID, owner, entity.EventStatusBusy)
	if appErr == nil || appErr.Code != appErrors.ErrLocked {
		t.Errorf("flipping a SWAP_PENDING event: got %v, want LOCKED", appErr)
	}
}

func TestDeleteEventChecksOwnership(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newTestEventService(repo)
	owner := uuid.New()
	e := seedEvent(repo, owner, entity.EventStatusBusy, testNow.Add(24*time.Hour))

	if appErr := svc.DeleteEvent(context.Background(), e.ID, uuid.New()); appErr == nil || appErr.Code != appErrors.ErrForbidden {
		t.Errorf("foreign delete: got %v, want FORBIDDEN", appErr)
	}

	if appErr := svc.DeleteEvent(context.Background(), e.ID, owner); appErr != nil {
		t.Fatalf("DeleteEvent returned error: %v", appErr)
	}
	if len(repo.deletedEvents) != 1 || repo.deletedEvents[0] != e.ID {
		t.Errorf("deleted events = %v, want [%s]", repo.deletedEvents, e.ID)
	}
}
