package models

import "time"

// VolunteerProfile holds the profile a volunteer fills in after registering.
// Availability is the set of dates the volunteer can work; the matching
// service checks event dates against it.
type VolunteerProfile struct {
	UserID       int64
	FullName     string
	Address1     string
	Address2     string
	City         string
	State        string
	Zip          string
	Skills       []string
	Preferences  string
	Availability []time.Time
	UpdatedAt    time.Time
}

// AvailableOn reports whether the volunteer is available on the given date
// (day granularity).
func (p *VolunteerProfile) AvailableOn(date time.Time) bool {
	for _, d := range p.Availability {
		if d.Year() == date.Year() && d.YearDay() == date.YearDay() {
			return true
		}
	}
	return false
}

// VolunteerStats are read-only aggregates derived from reviewed assignments.
type VolunteerStats struct {
	UserID         int64
	EventsAttended int
	AverageRating  float64
	TotalHours     int
}
