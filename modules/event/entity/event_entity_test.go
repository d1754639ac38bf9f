package entity

import (
	"testing"
	"time"
)

func TestEventStatusIsUserSettable(t *testing.T) {
	tests := []struct {
		status EventStatus
		want   bool
	}{
		{EventStatusBusy, true},
		{EventStatusSwappable, true},
		{EventStatusSwapPending, false},
		{EventStatus("DELETED"), false},
		{EventStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsUserSettable(); got != tt.want {
			t.Errorf("IsUserSettable(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestEventCanBeModified(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status EventStatus
		start  time.Time
		want   bool
	}{
		{"future busy event", EventStatusBusy, now.Add(time.Hour), true},
		{"future swappable event", EventStatusSwappable, now.Add(time.Hour), true},
		{"swap pending event", EventStatusSwapPending, now.Add(time.Hour), false},
		{"already started", EventStatusBusy, now.Add(-time.Minute), false},
		{"starting exactly now", EventStatusBusy, now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{Status: tt.status, StartTime: tt.start}
			if got := e.CanBeModified(now); got != tt.want {
				t.Errorf("CanBeModified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventIsLocked(t *testing.T) {
	e := &Event{Status: EventStatusSwapPending}
	if !e.IsLocked() {
		t.Error("SWAP_PENDING event not locked")
	}
	e.Status = EventStatusSwappable
	if e.IsLocked() {
		t.Error("SWAPPABLE event reported locked")
	}
}
