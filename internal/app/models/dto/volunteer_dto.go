package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub/internal/app/models"
)

// UpdateProfileRequest updates the caller's volunteer profile
type UpdateProfileRequest struct {
	FullName     string   `json:"fullName" binding:"required,min=2,max=100"`
	Address1     string   `json:"address1" binding:"required,max=100"`
	Address2     string   `json:"address2" binding:"max=100"`
	City         string   `json:"city" binding:"required,max=100"`
	State        string   `json:"state" binding:"required,len=2"`
	Zip          string   `json:"zip" binding:"required"`
	Skills       []string `json:"skills" binding:"required,min=1"`
	Preferences  string   `json:"preferences"`
	Availability []string `json:"availability" binding:"required,min=1"`
}

// ProfileResponse is the public view of a volunteer profile
type ProfileResponse struct {
	UserID       int64     `json:"userId"`
	FullName     string    `json:"fullName"`
	Address1     string    `json:"address1"`
	Address2     string    `json:"address2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Skills       []string  `json:"skills"`
	Preferences  string    `json:"preferences,omitempty"`
	Availability []string  `json:"availability"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromProfile converts a models.VolunteerProfile to a ProfileResponse
func FromProfile(p *models.VolunteerProfile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}

	availability := make([]string, 0, len(p.Availability))
	for _, d := range p.Availability {
		availability = append(availability, d.Format("2006-01-02"))
	}

	return ProfileResponse{
		UserID:       p.UserID,
		FullName:     p.FullName,
		Address1:     p.Address1,
		Address2:     p.Address2,
		City:         p.City,
		State:        p.State,
		Zip:          p.Zip,
		Skills:       p.Skills,
		Preferences:  p.Preferences,
		Availability: availability,
		UpdatedAt:    p.UpdatedAt,
	}
}

// EligibleVolunteerResponse is one matching candidate for an event
type EligibleVolunteerResponse struct {
	UserID   int64    `json:"userId"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Skills   []string `json:"skills"`
}

// VolunteerStatsResponse carries the read-only performance aggregates
type VolunteerStatsResponse struct {
	UserID         int64   `json:"userId"`
	EventsAttended int     `json:"eventsAttended"`
	AverageRating  float64 `json:"averageRating"`
	TotalHours     int     `json:"totalHours"`
}
