package constants

import "testing"

func TestCheckpoint(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   int
	}{
		{JobStatusPending, 0},
		{JobStatusProcessing, 10},
		{JobStatusOCRCompleted, 40},
		{JobStatusExtractionCompleted, 70},
		{JobStatusReviewReady, 90},
		{JobStatusCompleted, 100},
		{JobStatusFailed, 0},
	}
	for _, tt := range tests {
		if got := tt.status.Checkpoint(); got != tt.want {
			t.Errorf("%s.Checkpoint() = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range Statuses {
		terminal := s == JobStatusCompleted || s == JobStatusFailed
		if got := s.Terminal(); got != terminal {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, terminal)
		}
	}
}

func TestValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if JobStatus("running").Valid() {
		t.Error("\"running\" is not a stable status value")
	}
}
