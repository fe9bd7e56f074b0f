package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LeadStatus represents the pipeline stage of a lead
type LeadStatus int

const (
	LeadStatusNew       LeadStatus = 0
	LeadStatusContacted LeadStatus = 1
	LeadStatusBooked    LeadStatus = 2
	LeadStatusLost      LeadStatus = 3
)

// leadStatusTransitions declares the legal moves between pipeline stages.
// A booked lead can still be lost or walked back to contacted; a lost lead
// can only be revived through contact.
var leadStatusTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew:       {LeadStatusContacted, LeadStatusBooked, LeadStatusLost},
	LeadStatusContacted: {LeadStatusBooked, LeadStatusLost, LeadStatusNew},
	LeadStatusBooked:    {LeadStatusLost, LeadStatusContacted},
	LeadStatusLost:      {LeadStatusContacted},
}

// CanTransitionTo reports whether moving from s to target is allowed.
// Staying on the same status is always allowed.
func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range leadStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s.
func (s LeadStatus) AllowedTransitions() []LeadStatus {
	return leadStatusTransitions[s]
}

func (s LeadStatus) String() string {
	return [...]string{"New", "Contacted", "Booked", "Lost"}[s]
}

// ParseLeadStatus converts a status name into a LeadStatus
func ParseLeadStatus(str string) (LeadStatus, error) {
	switch str {
	case "New":
		return LeadStatusNew, nil
	case "Contacted":
		return LeadStatusContacted, nil
	case "Booked":
		return LeadStatusBooked, nil
	case "Lost":
		return LeadStatusLost, nil
	}
	return LeadStatusNew, fmt.Errorf("unknown lead status %q", str)
}

func (s LeadStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LeadStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LeadStatus(i)
		return nil
	}
	parsed, err := ParseLeadStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s LeadStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LeadStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStatusNew
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LeadStatus(v)
	case int:
		*s = LeadStatus(v)
	}
	return nil
}
