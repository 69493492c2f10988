package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub/internal/app/models"
)

// CreateEventRequest represents a new event submission
type CreateEventRequest struct {
	Name             string   `json:"name" binding:"required,min=2,max=100" example:"Community Park Cleanup"`
	Description      string   `json:"description" binding:"required" example:"Trash pickup and light landscaping"`
	LocationName     string   `json:"location" binding:"required" example:"Greenwood Community Park"`
	City             string   `json:"city" binding:"required"`
	State            string   `json:"state" binding:"required,len=2"`
	Zip              string   `json:"zip" binding:"required"`
	Date             string   `json:"date" binding:"required" example:"2026-09-15"`
	DurationHours    int      `json:"duration" binding:"required,min=1" example:"4"`
	Urgency          string   `json:"urgency" binding:"required" enums:"Low,Medium,High"`
	RequiredSkills   []string `json:"requiredSkills" binding:"required,min=1"`
	VolunteersNeeded int      `json:"volunteersNeeded" binding:"required,min=1"`
}

// UpdateEventRequest updates a pending event's details
type UpdateEventRequest struct {
	Name             string   `json:"name" binding:"required,min=2,max=100"`
	Description      string   `json:"description" binding:"required"`
	LocationName     string   `json:"location" binding:"required"`
	City             string   `json:"city" binding:"required"`
	State            string   `json:"state" binding:"required,len=2"`
	Zip              string   `json:"zip" binding:"required"`
	Date             string   `json:"date" binding:"required"`
	DurationHours    int      `json:"duration" binding:"required,min=1"`
	Urgency          string   `json:"urgency" binding:"required"`
	RequiredSkills   []string `json:"requiredSkills" binding:"required,min=1"`
	VolunteersNeeded int      `json:"volunteersNeeded" binding:"required,min=1"`
}

// EventFilterRequest carries list filters and pagination
type EventFilterRequest struct {
	Status   *string
	Urgency  *string
	Search   *string
	Page     int
	PageSize int
}

// EventResponse is the public view of an event
type EventResponse struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	LocationName         string    `json:"location"`
	City                 string    `json:"city"`
	State                string    `json:"state"`
	Zip                  string    `json:"zip"`
	Date                 string    `json:"date" example:"2026-09-15"`
	DurationHours        int       `json:"duration"`
	Urgency              string    `json:"urgency"`
	RequiredSkills       []string  `json:"requiredSkills"`
	VolunteersNeeded     int       `json:"volunteersNeeded"`
	VolunteersRegistered int       `json:"volunteersRegistered"`
	IsFullyStaffed       bool      `json:"isFullyStaffed"`
	Status               string    `json:"status" enums:"Pending,Finalized,Completed"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// EventDetailResponse adds the event's assignments
type EventDetailResponse struct {
	EventResponse
	Assignments []AssignmentResponse `json:"assignments"`
}

// EventListResponse is a paginated list of events
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}

// FromEvent converts a models.Event to an EventResponse
func FromEvent(event *models.Event) EventResponse {
	if event == nil {
		return EventResponse{}
	}

	return EventResponse{
		ID:                   event.ID,
		Name:                 event.Name,
		Description:          event.Description,
		LocationName:         event.LocationName,
		City:                 event.City,
		State:                event.State,
		Zip:                  event.Zip,
		Date:                 event.Date.Format("2006-01-02"),
		DurationHours:        event.DurationHours,
		Urgency:              string(event.Urgency),
		RequiredSkills:       event.RequiredSkills,
		VolunteersNeeded:     event.VolunteersNeeded,
		VolunteersRegistered: event.VolunteersRegistered,
		IsFullyStaffed:       event.IsFullyStaffed(),
		Status:               string(event.Status),
		CreatedAt:            event.CreatedAt,
		UpdatedAt:            event.UpdatedAt,
	}
}
