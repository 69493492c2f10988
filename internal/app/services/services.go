package services

import (
	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
	"github.com/volunteerhub/volunteerhub/internal/db"
	"github.com/volunteerhub/volunteerhub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	EventService        EventService
	WorkflowService     WorkflowService
	MatchingService     MatchingService
	VolunteerService    VolunteerService
	ReviewService       ReviewService
	NotificationService NotificationService
	AdminService        AdminService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	database *db.PostgresDB,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *Services {
	matchingService := NewMatchingService(
		repos.EventRepository,
		repos.VolunteerRepository,
		repos.UserRepository,
		logger.With().Str("service", "matching").Logger(),
	)

	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.TokenRepository,
			jwtService,
			logger.With().Str("service", "auth").Logger(),
		),
		EventService: NewEventService(
			repos.EventRepository,
			repos.AssignmentRepository,
			logger.With().Str("service", "event").Logger(),
		),
		WorkflowService: NewWorkflowService(
			database,
			repos.EventRepository,
			repos.AssignmentRepository,
			repos.OutboxRepository,
			matchingService,
			logger.With().Str("service", "workflow").Logger(),
		),
		MatchingService: matchingService,
		VolunteerService: NewVolunteerService(
			repos.VolunteerRepository,
			repos.AssignmentRepository,
			logger.With().Str("service", "volunteer").Logger(),
		),
		ReviewService: NewReviewService(
			repos.EventRepository,
			repos.AssignmentRepository,
			logger.With().Str("service", "review").Logger(),
		),
		NotificationService: NewNotificationService(
			repos.NotificationRepository,
			logger.With().Str("service", "notification").Logger(),
		),
		AdminService: NewAdminService(
			repos.UserRepository,
			repos.EventRepository,
			repos.AssignmentRepository,
			repos.VolunteerRepository,
			logger.With().Str("service", "admin").Logger(),
		),
	}
}
