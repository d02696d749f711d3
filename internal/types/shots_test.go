package types

import "testing"

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		expected  Outcome
	}{
		{"made shot", "Made Shot", OutcomeMade},
		{"missed shot", "Missed Shot", OutcomeMissed},
		{"empty string", "", OutcomeOther},
		{"free throw", "Free Throw Attempt", OutcomeOther},
		{"lowercase is not recognized", "made shot", OutcomeOther},
		{"trailing space is not recognized", "Made Shot ", OutcomeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseOutcome(tt.eventType); got != tt.expected {
				t.Errorf("ParseOutcome(%q) = %v, expected %v", tt.eventType, got, tt.expected)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeMade.String() != "Made" {
		t.Errorf("OutcomeMade.String() = %q, expected %q", OutcomeMade.String(), "Made")
	}
	if OutcomeMissed.String() != "Missed" {
		t.Errorf("OutcomeMissed.String() = %q, expected %q", OutcomeMissed.String(), "Missed")
	}
	if OutcomeOther.String() != "Other" {
		t.Errorf("OutcomeOther.String() = %q, expected %q", OutcomeOther.String(), "Other")
	}
}
