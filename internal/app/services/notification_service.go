package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
)

// NotificationService defines the interface for reading and acknowledging
// delivered notifications
type NotificationService interface {
	ListNotifications(ctx context.Context, recipientID int64) ([]dto.NotificationResponse, error)
	CountUnread(ctx context.Context, recipientID int64) (int, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
	MarkAllRead(ctx context.Context, recipientID int64) error
	DeleteNotification(ctx context.Context, id, recipientID int64) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	logger zerolog.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ListNotifications returns the recipient's notifications, newest first
func (s *notificationServiceImpl) ListNotifications(ctx context.Context, recipientID int64) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, recipientID)
	if err != nil {
		s.logger.Error().Err(err).Int64("recipientID", recipientID).Msg("Failed to list notifications")
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, dto.FromNotification(n))
	}

	return responses, nil
}

// CountUnread returns the recipient's unread notification count
func (s *notificationServiceImpl) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	return s.notificationRepo.CountUnread(ctx, recipientID)
}

// MarkRead acknowledges one notification
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id, recipientID int64) error {
	return s.notificationRepo.MarkRead(ctx, id, recipientID)
}

// MarkAllRead acknowledges all of the recipient's notifications
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, recipientID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, recipientID)
}

// DeleteNotification removes one of the recipient's notifications
func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, id, recipientID int64) error {
	return s.notificationRepo.Delete(ctx, id, recipientID)
}
