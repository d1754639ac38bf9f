package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestCreateSwapRequestDTOValidate(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		req      CreateSwapRequestDTO
		wantErrs int
	}{
		{"valid", CreateSwapRequestDTO{RequesterSlotID: a, TargetSlotID: b}, 0},
		{"missing requester slot", CreateSwapRequestDTO{TargetSlotID: b}, 1},
		{"missing target slot", CreateSwapRequestDTO{RequesterSlotID: a}, 1},
		{"same slot both sides", CreateSwapRequestDTO{RequesterSlotID: a, TargetSlotID: a}, 1},
		{"both missing", CreateSwapRequestDTO{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := tt.req.Validate(); len(errs) != tt.wantErrs {
				t.Errorf("Validate() returned %d errors (%v), want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}
