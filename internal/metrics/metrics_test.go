package metrics

import "testing"

func TestOutcome(t *testing.T) {
	tests := []struct {
		name     string
		margin   float64
		expected string
	}{
		{"Profit", 40, "profit"},
		{"Loss", -40, "loss"},
		{"Exactly break-even", 0, "break_even"},
		{"Within tolerance positive", 0.005, "break_even"},
		{"Within tolerance negative", -0.005, "break_even"},
		{"Just above tolerance", 0.02, "profit"},
		{"Just below tolerance", -0.02, "loss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.margin); got != tt.expected {
				t.Errorf("Outcome(%v) = %q, expected %q", tt.margin, got, tt.expected)
			}
		})
	}
}
