package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub/internal/app/models"
)

// CreateAssignmentRequest matches a volunteer to an event
type CreateAssignmentRequest struct {
	VolunteerID int64 `json:"volunteerId" binding:"required"`
}

// SubmitReviewRequest adjudicates a volunteer's participation in an event
type SubmitReviewRequest struct {
	ParticipationStatus string `json:"participationStatus" binding:"required" enums:"Volunteered,Did Not Show"`
	Rating              *int   `json:"rating,omitempty" example:"4"`
	Notes               string `json:"notes,omitempty"`
}

// AssignmentResponse is the public view of an assignment
type AssignmentResponse struct {
	EventID             int64      `json:"eventId"`
	VolunteerID         int64      `json:"volunteerId"`
	VolunteerEmail      string     `json:"volunteerEmail,omitempty"`
	VolunteerName       string     `json:"volunteerName,omitempty"`
	ParticipationStatus string     `json:"participationStatus"`
	Rating              *int       `json:"rating,omitempty"`
	Notes               string     `json:"notes"`
	NeedsReview         bool       `json:"needsReview"`
	CreatedAt           time.Time  `json:"createdAt"`
	ReviewedAt          *time.Time `json:"reviewedAt,omitempty"`
}

// FromAssignment converts a models.Assignment to an AssignmentResponse
func FromAssignment(a *models.Assignment) AssignmentResponse {
	if a == nil {
		return AssignmentResponse{}
	}

	return AssignmentResponse{
		EventID:             a.EventID,
		VolunteerID:         a.VolunteerID,
		VolunteerEmail:      a.VolunteerEmail,
		VolunteerName:       a.VolunteerName,
		ParticipationStatus: string(a.ParticipationStatus),
		Rating:              a.Rating,
		Notes:               a.Notes,
		NeedsReview:         a.NeedsReview,
		CreatedAt:           a.CreatedAt,
		ReviewedAt:          a.ReviewedAt,
	}
}

// ReviewEventSummary lists a finalized event with its review progress
type ReviewEventSummary struct {
	ID              int64  `json:"id"`
	Name            string `json:"eventName"`
	Date            string `json:"eventDate"`
	LocationName    string `json:"location"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	TotalVolunteers int    `json:"totalVolunteers"`
	PendingReviews  int    `json:"pendingReviews"`
	CanComplete     bool   `json:"canComplete"`
}

// ReviewSheetResponse is the per-volunteer review sheet for one event
type ReviewSheetResponse struct {
	EventName  string               `json:"eventName"`
	Volunteers []AssignmentResponse `json:"volunteers"`
}

// HistoryEntry is one row of a volunteer's event history
type HistoryEntry struct {
	EventID             int64    `json:"eventId"`
	VolunteerID         int64    `json:"volunteerId"`
	VolunteerName       string   `json:"volunteerName,omitempty"`
	EventName           string   `json:"eventName"`
	LocationName        string   `json:"location"`
	Description         string   `json:"description"`
	EventDate           string   `json:"eventDate"`
	DurationHours       int      `json:"duration"`
	Urgency             string   `json:"urgency"`
	RequiredSkills      []string `json:"requiredSkills"`
	ParticipationStatus string   `json:"participationStatus"`
	Rating              *int     `json:"rating,omitempty"`
	EventStatus         string   `json:"eventStatus"`
}

// HistoryResponse wraps a history listing with the caller's role
type HistoryResponse struct {
	History  []HistoryEntry `json:"history"`
	UserRole string         `json:"userRole"`
}
