package entity

import "testing"

func TestParseSwapAction(t *testing.T) {
	tests := []struct {
		input   string
		want    SwapAction
		wantErr bool
	}{
		{"accept", SwapActionAccept, false},
		{"reject", SwapActionReject, false},
		{"ACCEPT", SwapActionAccept, false},
		{"  Reject ", SwapActionReject, false},
		{"maybe", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSwapAction(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSwapAction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseSwapAction(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseSwapStatus(t *testing.T) {
	for _, valid := range []string{"pending", "ACCEPTED", " rejected "} {
		if _, ok := ParseSwapStatus(valid); !ok {
			t.Errorf("ParseSwapStatus(%q) not accepted", valid)
		}
	}
	for _, invalid := range []string{"", "open", "CANCELLED"} {
		if _, ok := ParseSwapStatus(invalid); ok {
			t.Errorf("ParseSwapStatus(%q) accepted, want rejection", invalid)
		}
	}
}
