package dto

// DashboardStatistics are the aggregate counters on the admin dashboard
type DashboardStatistics struct {
	TotalVolunteers     int     `json:"totalVolunteers"`
	PendingEvents       int     `json:"pendingEvents"`
	FinalizedEvents     int     `json:"finalizedEvents"`
	CompletedEvents     int     `json:"completedEvents"`
	PendingReviews      int     `json:"pendingReviews"`
	TotalVolunteerHours int     `json:"totalVolunteerHours"`
	AverageRating       float64 `json:"averageRating"`
}

// TopVolunteer is one leaderboard row on the admin dashboard
type TopVolunteer struct {
	UserID         int64   `json:"userId"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	EventsAttended int     `json:"events"`
	AverageRating  float64 `json:"rating"`
	TotalHours     int     `json:"totalHours"`
}

// DashboardResponse is the admin dashboard payload
type DashboardResponse struct {
	Statistics     DashboardStatistics `json:"statistics"`
	TopVolunteers  []TopVolunteer      `json:"topVolunteers"`
	UpcomingEvents []EventResponse     `json:"upcomingEvents"`
}
