package dto

import (
	"testing"
	"time"
)

func TestCreateEventRequestValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		req      CreateEventRequest
		wantErrs int
	}{
		{"valid", CreateEventRequest{Title: "Standup", StartTime: future, EndTime: future.Add(time.Hour)}, 0},
		{"valid with status", CreateEventRequest{Title: "Standup", StartTime: future, EndTime: future.Add(time.Hour), Status: "SWAPPABLE"}, 0},
		{"empty title", CreateEventRequest{StartTime: future, EndTime: future.Add(time.Hour)}, 1},
		{"start in the past", CreateEventRequest{Title: "Standup", StartTime: now.Add(-time.Hour), EndTime: future}, 1},
		{"end before start", CreateEventRequest{Title: "Standup", StartTime: future, EndTime: future.Add(-time.Minute)}, 1},
		{"swap pending status", CreateEventRequest{Title: "Standup", StartTime: future, EndTime: future.Add(time.Hour), Status: "SWAP_PENDING"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := tt.req.Validate(now); len(errs) != tt.wantErrs {
				t.Errorf("Validate() returned %d errors (%v), want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}
