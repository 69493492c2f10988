package models

import "time"

// ParticipationStatus is the adjudicated outcome of an assignment
type ParticipationStatus string

const (
	// ParticipationRegistered is the initial state before review
	ParticipationRegistered ParticipationStatus = "Registered"
	// ParticipationVolunteered means the volunteer showed up and worked
	ParticipationVolunteered ParticipationStatus = "Volunteered"
	// ParticipationDidNotShow means the volunteer did not attend
	ParticipationDidNotShow ParticipationStatus = "Did Not Show"
)

// ReviewableStatus reports whether the status is a valid review outcome
func (s ParticipationStatus) ReviewableStatus() bool {
	return s == ParticipationVolunteered || s == ParticipationDidNotShow
}

// Assignment associates one volunteer with one event, carrying the
// participation outcome. Identified by the (event, volunteer) pair.
type Assignment struct {
	EventID             int64
	VolunteerID         int64
	ParticipationStatus ParticipationStatus
	Rating              *int
	Notes               string
	NeedsReview         bool
	CreatedAt           time.Time
	ReviewedAt          *time.Time

	// Joined fields for listings
	VolunteerEmail string
	VolunteerName  string
}
