package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	VolunteerRepository    *VolunteerRepository
	EventRepository        *EventRepository
	AssignmentRepository   *AssignmentRepository
	NotificationRepository *NotificationRepository
	OutboxRepository       *OutboxRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		VolunteerRepository:    NewVolunteerRepository(db),
		EventRepository:        NewEventRepository(db),
		AssignmentRepository:   NewAssignmentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		OutboxRepository:       NewOutboxRepository(db),
	}
}
