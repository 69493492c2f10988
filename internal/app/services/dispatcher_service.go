package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
)

// OutboxDispatcher moves pending outbox messages into the notifications
// table on a fixed interval. Delivery runs outside the transactions that
// enqueued the messages; a failed delivery is retried on the next tick and
// never affects a completed lifecycle transition.
type OutboxDispatcher struct {
	outboxRepo       *repositories.OutboxRepository
	notificationRepo *repositories.NotificationRepository
	interval         time.Duration
	batchSize        int
	logger           zerolog.Logger
}

// NewOutboxDispatcher creates a new OutboxDispatcher
func NewOutboxDispatcher(
	outboxRepo *repositories.OutboxRepository,
	notificationRepo *repositories.NotificationRepository,
	interval time.Duration,
	batchSize int,
	logger zerolog.Logger,
) *OutboxDispatcher {
	return &OutboxDispatcher{
		outboxRepo:       outboxRepo,
		notificationRepo: notificationRepo,
		interval:         interval,
		batchSize:        batchSize,
		logger:           logger,
	}
}

// Run dispatches pending messages until the context is cancelled
func (d *OutboxDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info().
		Dur("interval", d.interval).
		Int("batchSize", d.batchSize).
		Msg("Outbox dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("Outbox dispatcher stopped")
			return
		case <-ticker.C:
			if n, err := d.DispatchPending(ctx); err != nil {
				d.logger.Warn().Err(err).Msg("Outbox dispatch tick failed")
			} else if n > 0 {
				d.logger.Debug().Int("dispatched", n).Msg("Outbox messages delivered")
			}
		}
	}
}

// DispatchPending delivers one batch of pending messages and returns how
// many were delivered. A failure on one message skips it for this tick
// without blocking the rest of the batch.
func (d *OutboxDispatcher) DispatchPending(ctx context.Context) (int, error) {
	pending, err := d.outboxRepo.ListPending(ctx, d.batchSize)
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, msg := range pending {
		if err := d.deliver(ctx, msg); err != nil {
			d.logger.Warn().Err(err).
				Int64("outboxID", msg.ID).
				Int64("recipientID", msg.RecipientID).
				Msg("Failed to deliver notification, will retry")
			continue
		}
		dispatched++
	}

	return dispatched, nil
}

func (d *OutboxDispatcher) deliver(ctx context.Context, msg *models.OutboxMessage) error {
	if _, err := d.notificationRepo.Insert(ctx, msg.RecipientID, msg.Message); err != nil {
		return err
	}
	return d.outboxRepo.MarkDispatched(ctx, msg.ID)
}
