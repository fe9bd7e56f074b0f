package enum

import (
	"encoding/json"
	"testing"
)

func TestLeadStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from LeadStatus
		to   LeadStatus
		want bool
	}{
		{"new to contacted", LeadStatusNew, LeadStatusContacted, true},
		{"new straight to booked", LeadStatusNew, LeadStatusBooked, true},
		{"new to lost", LeadStatusNew, LeadStatusLost, true},
		{"contacted back to new", LeadStatusContacted, LeadStatusNew, true},
		{"contacted to booked", LeadStatusContacted, LeadStatusBooked, true},
		{"booked back to contacted", LeadStatusBooked, LeadStatusContacted, true},
		{"booked to lost", LeadStatusBooked, LeadStatusLost, true},
		{"booked cannot reset to new", LeadStatusBooked, LeadStatusNew, false},
		{"lost revived by contact", LeadStatusLost, LeadStatusContacted, true},
		{"lost cannot jump to booked", LeadStatusLost, LeadStatusBooked, false},
		{"lost cannot reset to new", LeadStatusLost, LeadStatusNew, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestLeadStatusSameStatusAlwaysAllowed(t *testing.T) {
	for _, s := range []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusBooked, LeadStatusLost} {
		if !s.CanTransitionTo(s) {
			t.Errorf("%s cannot stay on itself", s)
		}
	}
}

func TestParseLeadStatus(t *testing.T) {
	for _, s := range []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusBooked, LeadStatusLost} {
		parsed, err := ParseLeadStatus(s.String())
		if err != nil {
			t.Fatalf("ParseLeadStatus(%q): %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseLeadStatus(%q) = %v, want %v", s.String(), parsed, s)
		}
	}

	if _, err := ParseLeadStatus("Archived"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestLeadStatusJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(LeadStatusBooked)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"Booked"` {
		t.Errorf("marshaled = %s, want \"Booked\"", data)
	}

	var s LeadStatus
	if err := json.Unmarshal([]byte(`"Lost"`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s != LeadStatusLost {
		t.Errorf("unmarshaled = %v, want Lost", s)
	}

	// Numeric form is accepted for older clients
	if err := json.Unmarshal([]byte(`1`), &s); err != nil {
		t.Fatalf("Unmarshal numeric: %v", err)
	}
	if s != LeadStatusContacted {
		t.Errorf("unmarshaled = %v, want Contacted", s)
	}
}
