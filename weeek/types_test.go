// ABOUTME: Tests for priority label helpers.
// ABOUTME: Covers PriorityName rendering and ParsePriority round-trips including unknown labels.
package weeek

import "testing"

func TestPriorityName(t *testing.T) {
	tests := []struct {
		priority int
		want     string
	}{
		{PriorityLow, "low"},
		{PriorityMedium, "medium"},
		{PriorityHigh, "high"},
		{PriorityUrgent, "urgent"},
		{42, "low"},
	}

	for _, tt := range tests {
		if got := PriorityName(tt.priority); got != tt.want {
			t.Errorf("PriorityName(%d) = %q, want %q", tt.priority, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{"low", PriorityLow, true},
		{"", PriorityLow, true},
		{"Medium", PriorityMedium, true},
		{" high ", PriorityHigh, true},
		{"URGENT", PriorityUrgent, true},
		{"whenever", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePriority(tt.label)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePriority(%q) = (%d, %v), want (%d, %v)", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}
