package models

import "time"

// EventStatus is the lifecycle state of an event.
// Pending -> Finalized -> Completed; no transition re-enters Pending.
type EventStatus string

const (
	EventPending   EventStatus = "Pending"
	EventFinalized EventStatus = "Finalized"
	EventCompleted EventStatus = "Completed"
)

// Valid reports whether the status is one of the known lifecycle states
func (s EventStatus) Valid() bool {
	switch s {
	case EventPending, EventFinalized, EventCompleted:
		return true
	}
	return false
}

// Urgency classifies how urgently an event needs volunteers
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Valid reports whether the urgency is one of the known levels
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// Event represents a scheduled volunteer activity with a capacity and
// lifecycle state.
type Event struct {
	ID               int64
	Name             string
	Description      string
	LocationName     string
	City             string
	State            string
	Zip              string
	Date             time.Time
	DurationHours    int
	Urgency          Urgency
	RequiredSkills   []string
	VolunteersNeeded int
	Status           EventStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// VolunteersRegistered is derived from the assignment count and filled
	// in by queries; it is never written directly.
	VolunteersRegistered int
}

// IsFullyStaffed reports whether registered assignments meet capacity
func (e *Event) IsFullyStaffed() bool {
	return e.VolunteersRegistered >= e.VolunteersNeeded
}
