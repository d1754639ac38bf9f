package service

import (
	"context"
	"testing"
	"time"

	appErrors "slotswapper/core/errors"
	eventEntity "slotswapper/modules/event/entity"
	"slotswapper/modules/swap/dto"
	"slotswapper/modules/swap/entity"
	"slotswapper/modules/swap/repository"

	"github.com/google/uuid"
)

type fakeUser struct {
	name  string
	email string
}

// fakeStore is a shared in-memory world backing both fake repositories, so
// the slot status flips performed by swap operations are visible to the
// event lookups the service does.
type fakeStore struct {
	users    map[uuid.UUID]fakeUser
	events   map[uuid.UUID]*eventEntity.Event
	requests map[uuid.UUID]*entity.SwapRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]fakeUser),
		events:   make(map[uuid.UUID]*eventEntity.Event),
		requests: make(map[uuid.UUID]*entity.SwapRequest),
	}
}

func (s *fakeStore) addUser(name, email string) uuid.UUID {
	id := uuid.New()
	s.users[id] = fakeUser{name: name, email: email}
	return id
}

func (s *fakeStore) addEvent(userID uuid.UUID, title string, start time.Time, status eventEntity.EventStatus) *eventEntity.Event {
	e := &eventEntity.Event{
		UserID:    userID,
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
	}
	e.ID = uuid.New()
	s.events[e.ID] = e
	return e
}

type fakeEventRepo struct {
	store *fakeStore
}

func (r *fakeEventRepo) CreateEvent(_ context.Context, event *eventEntity.Event) (*eventEntity.Event, error) {
	event.ID = uuid.New()
	r.store.events[event.ID] = event
	return event, nil
}

func (r *fakeEventRepo) GetEventByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	e, ok := r.store.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) GetEventsByUserID(_ context.Context, userID uuid.UUID) ([]eventEntity.Event, error) {
	var out []eventEntity.Event
	for _, e := range r.store.events {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) UpdateEvent(_ context.Context, event *eventEntity.Event) error {
	r.store.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) UpdateEventStatus(_ context.Context, id uuid.UUID, status eventEntity.EventStatus) error {
	if e, ok := r.store.events[id]; ok {
		e.Status = status
	}
	return nil
}

func (r *fakeEventRepo) DeleteEventWithRequests(_ context.Context, id uuid.UUID) error {
	for reqID, req := range r.store.requests {
		if req.RequesterSlotID == id || req.TargetSlotID == id {
			delete(r.store.requests, reqID)
		}
	}
	delete(r.store.events, id)
	return nil
}

type fakeSwapRepo struct {
	store *fakeStore
}

func (r *fakeSwapRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SwapRequest, error) {
	req, ok := r.store.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *req
	return &copied, nil
}

func (r *fakeSwapRepo) GetDetailByID(_ context.Context, id uuid.UUID) (*entity.SwapRequestDetail, error) {
	req, ok := r.store.requests[id]
	if !ok {
		return nil, nil
	}
	return r.detail(req), nil
}

func (r *fakeSwapRepo) detail(req *entity.SwapRequest) *entity.SwapRequestDetail {
	d := &entity.SwapRequestDetail{SwapRequest: *req}
	if u, ok := r.store.users[req.RequesterUserID]; ok {
		d.RequesterName, d.RequesterEmail = u.name, u.email
	}
	if u, ok := r.store.users[req.TargetUserID]; ok {
		d.TargetName, d.TargetEmail = u.name, u.email
	}
	if e, ok := r.store.events[req.RequesterSlotID]; ok {
		d.RequesterSlotTitle, d.RequesterSlotStart, d.RequesterSlotEnd = e.Title, e.StartTime, e.EndTime
	}
	if e, ok := r.store.events[req.TargetSlotID]; ok {
		d.TargetSlotTitle, d.TargetSlotStart, d.TargetSlotEnd = e.Title, e.StartTime, e.EndTime
	}
	return d
}

func (r *fakeSwapRepo) HasPendingForTargetSlot(_ context.Context, targetSlotID uuid.UUID) (bool, error) {
	for _, req := range r.store.requests {
		if req.TargetSlotID == targetSlotID && req.IsPending() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSwapRepo) HasPendingFromRequester(_ context.Context, requesterUserID, targetSlotID uuid.UUID) (bool, error) {
	for _, req := range r.store.requests {
		if req.RequesterUserID == requesterUserID && req.TargetSlotID == targetSlotID && req.IsPending() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSwapRepo) CreatePendingWithSlotLock(_ context.Context, request *entity.SwapRequest) error {
	requesterSlot, ok := r.store.events[request.RequesterSlotID]
	if !ok {
		return repository.ErrEventMissing
	}
	targetSlot, ok := r.store.events[request.TargetSlotID]
	if !ok {
		return repository.ErrEventMissing
	}
	if requesterSlot.Status != eventEntity.EventStatusSwappable || targetSlot.Status != eventEntity.EventStatusSwappable {
		return repository.ErrSlotUnavailable
	}
	for _, req := range r.store.requests {
		if req.TargetSlotID == request.TargetSlotID && req.IsPending() {
			return repository.ErrPendingExists
		}
	}

	requesterSlot.Status = eventEntity.EventStatusSwapPending
	targetSlot.Status = eventEntity.EventStatusSwapPending

	now := time.Now()
	request.ID = uuid.New()
	request.Status = entity.SwapStatusPending
	request.CreatedAt = now
	request.UpdatedAt = now
	stored := *request
	r.store.requests[request.ID] = &stored
	return nil
}

func (r *fakeSwapRepo) ApplyResponse(_ context.Context, requestID uuid.UUID, action entity.SwapAction, responseMessage string) error {
	req, ok := r.store.requests[requestID]
	if !ok {
		return repository.ErrRequestMissing
	}
	if !req.IsPending() {
		return repository.ErrAlreadyProcessed
	}
	requesterSlot, ok := r.store.events[req.RequesterSlotID]
	if !ok {
		return repository.ErrEventMissing
	}
	targetSlot, ok := r.store.events[req.TargetSlotID]
	if !ok {
		return repository.ErrEventMissing
	}

	if action == entity.SwapActionAccept {
		requesterSlot.StartTime, targetSlot.StartTime = targetSlot.StartTime, requesterSlot.StartTime
		requesterSlot.EndTime, targetSlot.EndTime = targetSlot.EndTime, requesterSlot.EndTime
		requesterSlot.Status = eventEntity.EventStatusBusy
		targetSlot.Status = eventEntity.EventStatusBusy
		req.Status = entity.SwapStatusAccepted
	} else {
		requesterSlot.Status = eventEntity.EventStatusSwappable
		targetSlot.Status = eventEntity.EventStatusSwappable
		req.Status = entity.SwapStatusRejected
	}

	now := time.Now()
	req.ResponseMessage = responseMessage
	req.RespondedAt = &now
	req.UpdatedAt = now
	return nil
}

func (r *fakeSwapRepo) ListIncoming(_ context.Context, userID uuid.UUID, status *entity.SwapStatus) ([]entity.SwapRequestDetail, error) {
	var out []entity.SwapRequestDetail
	for _, req := range r.store.requests {
		if req.TargetUserID != userID {
			continue
		}
		if status != nil && req.Status != *status {
			continue
		}
		out = append(out, *r.detail(req))
	}
	return out, nil
}

func (r *fakeSwapRepo) ListOutgoing(_ context.Context, userID uuid.UUID, status *entity.SwapStatus) ([]entity.SwapRequestDetail, error) {
	var out []entity.SwapRequestDetail
	for _, req := range r.store.requests {
		if req.RequesterUserID != userID {
			continue
		}
		if status != nil && req.Status != *status {
			continue
		}
		out = append(out, *r.detail(req))
	}
	return out, nil
}

func (r *fakeSwapRepo) FindSwappableSlots(_ context.Context, excludeUserID uuid.UUID) ([]entity.SwappableSlot, error) {
	var out []entity.SwappableSlot
	for _, e := range r.store.events {
		if e.UserID == excludeUserID || e.Status != eventEntity.EventStatusSwappable {
			continue
		}
		slot := entity.SwappableSlot{
			ID:        e.ID,
			Title:     e.Title,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Slug:      e.Slug,
			OwnerID:   e.UserID,
		}
		if u, ok := r.store.users[e.UserID]; ok {
			slot.OwnerName, slot.OwnerEmail = u.name, u.email
		}
		out = append(out, slot)
	}
	return out, nil
}

type recordingNotifier struct {
	requested []uuid.UUID
	responded []uuid.UUID
	accepted  []bool
}

func (n *recordingNotifier) NotifySwapRequested(_ context.Context, _ uuid.UUID, _, _ string, requestID uuid.UUID) {
	n.requested = append(n.requested, requestID)
}

func (n *recordingNotifier) NotifySwapResponded(_ context.Context, _ uuid.UUID, _, _ string, accepted bool, requestID uuid.UUID) {
	n.responded = append(n.responded, requestID)
	n.accepted = append(n.accepted, accepted)
}

func newTestService(store *fakeStore) (SwapServiceInterface, *recordingNotifier) {
	notifier := &recordingNotifier{}
	svc := NewSwapService(&fakeSwapRepo{store: store}, &fakeEventRepo{store: store}, notifier)
	return svc, notifier
}

func futureTime(hours int) time.Time {
	return time.Now().Add(time.Duration(hours) * time.Hour)
}

func TestCreateSwapRequestMarksBothSlotsPending(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	e1 := store.addEvent(user1, "Morning standup", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Design review", futureTime(48), eventEntity.EventStatusSwappable)

	svc, notifier := newTestService(store)

	resp, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
		Message:         "Can we trade?",
	})
	if appErr != nil {
		t.Fatalf("CreateSwapRequest returned error: %v", appErr)
	}

	if resp.Status != entity.SwapStatusPending {
		t.Errorf("request status = %s, want PENDING", resp.Status)
	}
	if resp.Requester.ID != user1 || resp.Target.ID != user2 {
		t.Errorf("request parties = (%s, %s), want (%s, %s)", resp.Requester.ID, resp.Target.ID, user1, user2)
	}
	if store.events[e1.ID].Status != eventEntity.EventStatusSwapPending {
		t.Errorf("requester slot status = %s, want SWAP_PENDING", store.events[e1.ID].Status)
	}
	if store.events[e2.ID].Status != eventEntity.EventStatusSwapPending {
		t.Errorf("target slot status = %s, want SWAP_PENDING", store.events[e2.ID].Status)
	}
	if len(notifier.requested) != 1 || notifier.requested[0] != resp.ID {
		t.Errorf("notifier.requested = %v, want exactly [%s]", notifier.requested, resp.ID)
	}
}

func TestAcceptSwapExchangesTimes(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	e1 := store.addEvent(user1, "Morning standup", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Design review", futureTime(48), eventEntity.EventStatusSwappable)
	e1Start, e1End := e1.StartTime, e1.EndTime
	e2Start, e2End := e2.StartTime, e2.EndTime

	svc, notifier := newTestService(store)

	created, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
	})
	if appErr != nil {
		t.Fatalf("CreateSwapRequest returned error: %v", appErr)
	}

	resp, appErr := svc.RespondToSwapRequest(context.Background(), created.ID, user2, entity.SwapActionAccept, "works for me")
	if appErr != nil {
		t.Fatalf("RespondToSwapRequest returned error: %v", appErr)
	}

	if resp.Status != entity.SwapStatusAccepted {
		t.Errorf("request status = %s, want ACCEPTED", resp.Status)
	}
	if resp.ResponseMessage != "works for me" {
		t.Errorf("response message = %q, want %q", resp.ResponseMessage, "works for me")
	}
	if resp.RespondedAt == nil {
		t.Error("responded_at not set after accept")
	}

	got1, got2 := store.events[e1.ID], store.events[e2.ID]
	if !got1.StartTime.Equal(e2Start) || !got1.EndTime.Equal(e2End) {
		t.Errorf("requester slot times = (%v, %v), want target's original (%v, %v)",
			got1.StartTime, got1.EndTime, e2Start, e2End)
	}
	if !got2.StartTime.Equal(e1Start) || !got2.EndTime.Equal(e1End) {
		t.Errorf("target slot times = (%v, %v), want requester's original (%v, %v)",
			got2.StartTime, got2.EndTime, e1Start, e1End)
	}
	if got1.Status != eventEntity.EventStatusBusy || got2.Status != eventEntity.EventStatusBusy {
		t.Errorf("slot statuses after accept = (%s, %s), want both BUSY", got1.Status, got2.Status)
	}
	if len(notifier.responded) != 1 || !notifier.accepted[0] {
		t.Errorf("notifier.responded = %v accepted = %v, want one accepted notification", notifier.responded, notifier.accepted)
	}
}

func TestRejectSwapReopensBothSlots(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	e1 := store.addEvent(user1, "Morning standup", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Design review", futureTime(48), eventEntity.EventStatusSwappable)
	e1Start := e1.StartTime
	e2Start := e2.StartTime

	svc, _ := newTestService(store)

	created, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
	})
	if appErr != nil {
		t.Fatalf("CreateSwapRequest returned error: %v", appErr)
	}

	resp, appErr := svc.RespondToSwapRequest(context.Background(), created.ID, user2, entity.SwapActionReject, "")
	if appErr != nil {
		t.Fatalf("RespondToSwapRequest returned error: %v", appErr)
	}

	if resp.Status != entity.SwapStatusRejected {
		t.Errorf("request status = %s, want REJECTED", resp.Status)
	}
	got1, got2 := store.events[e1.ID], store.events[e2.ID]
	if got1.Status != eventEntity.EventStatusSwappable || got2.Status != eventEntity.EventStatusSwappable {
		t.Errorf("slot statuses after reject = (%s, %s), want both SWAPPABLE", got1.Status, got2.Status)
	}
	if !got1.StartTime.Equal(e1Start) || !got2.StartTime.Equal(e2Start) {
		t.Error("slot times changed on reject, want unchanged")
	}
}

func TestCreateSwapRequestPreconditions(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	user3 := store.addUser("Carol", "carol@example.com")

	swappable1 := store.addEvent(user1, "Slot A", futureTime(24), eventEntity.EventStatusSwappable)
	busy1 := store.addEvent(user1, "Slot B", futureTime(30), eventEntity.EventStatusBusy)
	ownSwappable := store.addEvent(user1, "Slot C", futureTime(36), eventEntity.EventStatusSwappable)
	swappable2 := store.addEvent(user2, "Slot D", futureTime(48), eventEntity.EventStatusSwappable)
	busy2 := store.addEvent(user2, "Slot E", futureTime(54), eventEntity.EventStatusBusy)
	claimed := store.addEvent(user2, "Slot F", futureTime(60), eventEntity.EventStatusSwappable)
	carolSlot := store.addEvent(user3, "Slot G", futureTime(66), eventEntity.EventStatusSwappable)

	// Carol already holds a pending request for the claimed slot.
	store.requests[uuid.New()] = &entity.SwapRequest{
		RequesterUserID: user3,
		RequesterSlotID: carolSlot.ID,
		TargetUserID:    user2,
		TargetSlotID:    claimed.ID,
		Status:          entity.SwapStatusPending,
	}

	svc, notifier := newTestService(store)

	tests := []struct {
		name            string
		requesterSlotID uuid.UUID
		targetSlotID    uuid.UUID
		wantCode        appErrors.ErrorCode
	}{
		{"target slot missing", swappable1.ID, uuid.New(), appErrors.ErrNotFound},
		{"target owned by requester", swappable1.ID, ownSwappable.ID, appErrors.ErrConflict},
		{"requester slot missing", uuid.New(), swappable2.ID, appErrors.ErrForbidden},
		{"requester slot owned by someone else", carolSlot.ID, swappable2.ID, appErrors.ErrForbidden},
		{"requester slot not swappable", busy1.ID, swappable2.ID, appErrors.ErrConflict},
		{"target slot not swappable", swappable1.ID, busy2.ID, appErrors.ErrConflict},
		{"target slot already claimed", swappable1.ID, claimed.ID, appErrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
				RequesterSlotID: tt.requesterSlotID,
				TargetSlotID:    tt.targetSlotID,
			})
			if appErr == nil {
				t.Fatal("CreateSwapRequest succeeded, want error")
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}

	if len(notifier.requested) != 0 {
		t.Errorf("notifier fired %d times on failed creations, want 0", len(notifier.requested))
	}
}

func TestCreateSwapRequestWhileOwnSlotPending(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	e1 := store.addEvent(user1, "Slot A", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Slot B", futureTime(48), eventEntity.EventStatusSwappable)
	e3 := store.addEvent(user2, "Slot C", futureTime(72), eventEntity.EventStatusSwappable)

	svc, _ := newTestService(store)

	if _, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
	}); appErr != nil {
		t.Fatalf("first CreateSwapRequest returned error: %v", appErr)
	}

	// E1 is now SWAP_PENDING, so offering it again must fail.
	_, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e3.ID,
	})
	if appErr == nil {
		t.Fatal("second CreateSwapRequest succeeded, want conflict")
	}
	if appErr.Code != appErrors.ErrConflict {
		t.Errorf("error code = %s, want %s", appErr.Code, appErrors.ErrConflict)
	}
}

func TestRespondAuthorization(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	user3 := store.addUser("Carol", "carol@example.com")
	e1 := store.addEvent(user1, "Slot A", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Slot B", futureTime(48), eventEntity.EventStatusSwappable)

	svc, _ := newTestService(store)

	created, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
	})
	if appErr != nil {
		t.Fatalf("CreateSwapRequest returned error: %v", appErr)
	}

	for _, responder := range []uuid.UUID{user1, user3} {
		_, appErr := svc.RespondToSwapRequest(context.Background(), created.ID, responder, entity.SwapActionAccept, "")
		if appErr == nil {
			t.Fatalf("RespondToSwapRequest by %s succeeded, want forbidden", responder)
		}
		if appErr.Code != appErrors.ErrForbidden {
			t.Errorf("error code = %s, want %s", appErr.Code, appErrors.ErrForbidden)
		}
	}
}

func TestRespondTwiceConflicts(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	e1 := store.addEvent(user1, "Slot A", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Slot B", futureTime(48), eventEntity.EventStatusSwappable)

	svc, _ := newTestService(store)

	created, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
	})
	if appErr != nil {
		t.Fatalf("CreateSwapRequest returned error: %v", appErr)
	}

	if _, appErr := svc.RespondToSwapRequest(context.Background(), created.ID, user2, entity.SwapActionReject, ""); appErr != nil {
		t.Fatalf("first response returned error: %v", appErr)
	}

	_, appErr = svc.RespondToSwapRequest(context.Background(), created.ID, user2, entity.SwapActionAccept, "")
	if appErr == nil {
		t.Fatal("second response succeeded, want conflict")
	}
	if appErr.Code != appErrors.ErrConflict {
		t.Errorf("error code = %s, want %s", appErr.Code, appErrors.ErrConflict)
	}
}

func TestRespondToMissingRequest(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("Alice", "alice@example.com")

	svc, _ := newTestService(store)

	_, appErr := svc.RespondToSwapRequest(context.Background(), uuid.New(), user, entity.SwapActionAccept, "")
	if appErr == nil {
		t.Fatal("RespondToSwapRequest succeeded, want not found")
	}
	if appErr.Code != appErrors.ErrNotFound {
		t.Errorf("error code = %s, want %s", appErr.Code, appErrors.ErrNotFound)
	}
}

func TestDeletedTargetEventRemovesRequest(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	e1 := store.addEvent(user1, "Slot A", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Slot B", futureTime(48), eventEntity.EventStatusSwappable)

	svc, _ := newTestService(store)
	events := &fakeEventRepo{store: store}

	created, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
	})
	if appErr != nil {
		t.Fatalf("CreateSwapRequest returned error: %v", appErr)
	}

	if err := events.DeleteEventWithRequests(context.Background(), e2.ID); err != nil {
		t.Fatalf("DeleteEventWithRequests returned error: %v", err)
	}

	_, appErr = svc.RespondToSwapRequest(context.Background(), created.ID, user2, entity.SwapActionAccept, "")
	if appErr == nil {
		t.Fatal("responding to a request of a deleted event succeeded, want not found")
	}
	if appErr.Code != appErrors.ErrNotFound {
		t.Errorf("error code = %s, want %s", appErr.Code, appErrors.ErrNotFound)
	}
}

func TestGetSwappableSlotsExcludesViewer(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	store.addEvent(user1, "Mine", futureTime(24), eventEntity.EventStatusSwappable)
	theirs := store.addEvent(user2, "Theirs", futureTime(48), eventEntity.EventStatusSwappable)
	store.addEvent(user2, "Busy", futureTime(72), eventEntity.EventStatusBusy)

	svc, _ := newTestService(store)

	resp, appErr := svc.GetSwappableSlots(context.Background(), user1)
	if appErr != nil {
		t.Fatalf("GetSwappableSlots returned error: %v", appErr)
	}
	if resp.Count != 1 {
		t.Fatalf("slot count = %d, want 1", resp.Count)
	}
	if resp.Slots[0].ID != theirs.ID {
		t.Errorf("slot ID = %s, want %s", resp.Slots[0].ID, theirs.ID)
	}
	if resp.Slots[0].Owner.Name != "Bob" {
		t.Errorf("slot owner = %q, want %q", resp.Slots[0].Owner.Name, "Bob")
	}
}

func TestListRequestsDirectionAndFilter(t *testing.T) {
	store := newFakeStore()
	user1 := store.addUser("Alice", "alice@example.com")
	user2 := store.addUser("Bob", "bob@example.com")
	e1 := store.addEvent(user1, "Slot A", futureTime(24), eventEntity.EventStatusSwappable)
	e2 := store.addEvent(user2, "Slot B", futureTime(48), eventEntity.EventStatusSwappable)

	svc, _ := newTestService(store)

	created, appErr := svc.CreateSwapRequest(context.Background(), user1, &dto.CreateSwapRequestDTO{
		RequesterSlotID: e1.ID,
		TargetSlotID:    e2.ID,
	})
	if appErr != nil {
		t.Fatalf("CreateSwapRequest returned error: %v", appErr)
	}

	incoming, appErr := svc.GetIncomingRequests(context.Background(), user2, "")
	if appErr != nil {
		t.Fatalf("GetIncomingRequests returned error: %v", appErr)
	}
	if incoming.Count != 1 || incoming.Requests[0].ID != created.ID {
		t.Errorf("incoming for target = %d requests, want the created one", incoming.Count)
	}

	outgoing, appErr := svc.GetOutgoingRequests(context.Background(), user1, "pending")
	if appErr != nil {
		t.Fatalf("GetOutgoingRequests returned error: %v", appErr)
	}
	if outgoing.Count != 1 {
		t.Errorf("outgoing with pending filter = %d requests, want 1", outgoing.Count)
	}

	rejected, appErr := svc.GetOutgoingRequests(context.Background(), user1, "REJECTED")
	if appErr != nil {
		t.Fatalf("GetOutgoingRequests returned error: %v", appErr)
	}
	if rejected.Count != 0 {
		t.Errorf("outgoing with rejected filter = %d requests, want 0", rejected.Count)
	}

	swapped, appErr := svc.GetIncomingRequests(context.Background(), user1, "")
	if appErr != nil {
		t.Fatalf("GetIncomingRequests returned error: %v", appErr)
	}
	if swapped.Count != 0 {
		t.Errorf("incoming for requester = %d requests, want 0", swapped.Count)
	}
}
