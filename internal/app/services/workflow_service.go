package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/db"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

// WorkflowEventStore is the event access the lifecycle workflow needs.
// Methods take the enclosing transaction so state checks and writes are
// atomic under the event's row lock.
type WorkflowEventStore interface {
	GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.Event, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status models.EventStatus) error
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

// WorkflowAssignmentStore is the assignment access the lifecycle workflow needs
type WorkflowAssignmentStore interface {
	Insert(ctx context.Context, tx pgx.Tx, eventID, volunteerID int64) error
	Get(ctx context.Context, tx pgx.Tx, eventID, volunteerID int64) (*models.Assignment, error)
	UpdateReview(ctx context.Context, tx pgx.Tx, a *models.Assignment) error
	CountPendingReviews(ctx context.Context, tx pgx.Tx, eventID int64) (int, error)
	ListVolunteerIDs(ctx context.Context, tx pgx.Tx, eventID int64) ([]int64, error)
}

// WorkflowOutboxStore enqueues notifications inside the transition transaction
type WorkflowOutboxStore interface {
	Enqueue(ctx context.Context, tx pgx.Tx, recipientID int64, message, dedupKey string) error
}

// EligibilityChecker verifies a volunteer can be matched to an event
type EligibilityChecker interface {
	VerifyEligible(ctx context.Context, event *models.Event, volunteerID int64) error
}

// TxRunner runs a function within a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// WorkflowService drives the event lifecycle: assignment, finalization,
// review and completion. Every operation runs in one transaction holding
// the event's row lock, so concurrent transitions serialize.
type WorkflowService interface {
	CreateAssignment(ctx context.Context, eventID, volunteerID int64) error
	FinalizeEvent(ctx context.Context, eventID int64) error
	SubmitReview(ctx context.Context, eventID, volunteerID int64, req *dto.SubmitReviewRequest) error
	CompleteEvent(ctx context.Context, eventID int64) error
	DeleteEvent(ctx context.Context, eventID int64) error
}

// workflowServiceImpl implements WorkflowService
type workflowServiceImpl struct {
	tx          TxRunner
	events      WorkflowEventStore
	assignments WorkflowAssignmentStore
	outbox      WorkflowOutboxStore
	eligibility EligibilityChecker
	logger      zerolog.Logger
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(
	tx TxRunner,
	events WorkflowEventStore,
	assignments WorkflowAssignmentStore,
	outbox WorkflowOutboxStore,
	eligibility EligibilityChecker,
	logger zerolog.Logger,
) WorkflowService {
	return &workflowServiceImpl{
		tx:          tx,
		events:      events,
		assignments: assignments,
		outbox:      outbox,
		eligibility: eligibility,
		logger:      logger,
	}
}

// CreateAssignment matches a volunteer to a pending event with remaining
// capacity. The capacity check and the insert happen under the event lock,
// so an event can never be overbooked.
func (s *workflowServiceImpl) CreateAssignment(ctx context.Context, eventID, volunteerID int64) error {
	s.logger.Debug().
		Int64("eventID", eventID).
		Int64("volunteerID", volunteerID).
		Msg("Creating assignment")

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		event, err := s.events.GetForUpdate(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.Status != models.EventPending {
			return apperrors.ErrEventNotPending
		}

		if event.IsFullyStaffed() {
			return apperrors.ErrEventFullyStaffed
		}

		if s.eligibility != nil {
			if err := s.eligibility.VerifyEligible(ctx, event, volunteerID); err != nil {
				return err
			}
		}

		if err := s.assignments.Insert(ctx, tx, eventID, volunteerID); err != nil {
			return err
		}

		message := fmt.Sprintf("You have been assigned to '%s' on %s.",
			event.Name, event.Date.Format("2006-01-02"))
		dedupKey := fmt.Sprintf("assign:%d:%d", eventID, volunteerID)
		return s.outbox.Enqueue(ctx, tx, volunteerID, message, dedupKey)
	})
}

// FinalizeEvent moves a fully staffed pending event to Finalized and
// notifies every assigned volunteer.
func (s *workflowServiceImpl) FinalizeEvent(ctx context.Context, eventID int64) error {
	s.logger.Debug().Int64("eventID", eventID).Msg("Finalizing event")

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		event, err := s.events.GetForUpdate(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.Status != models.EventPending {
			return apperrors.ErrEventNotPending
		}

		if !event.IsFullyStaffed() {
			return apperrors.ErrNotFullyStaffed
		}

		if err := s.events.UpdateStatus(ctx, tx, eventID, models.EventFinalized); err != nil {
			return err
		}

		volunteerIDs, err := s.assignments.ListVolunteerIDs(ctx, tx, eventID)
		if err != nil {
			return err
		}

		message := fmt.Sprintf("'%s' on %s has been finalized. See you there!",
			event.Name, event.Date.Format("2006-01-02"))
		for _, vid := range volunteerIDs {
			dedupKey := fmt.Sprintf("finalize:%d:%d", eventID, vid)
			if err := s.outbox.Enqueue(ctx, tx, vid, message, dedupKey); err != nil {
				return err
			}
		}

		s.logger.Info().Int64("eventID", eventID).Msg("Event finalized")
		return nil
	})
}

// SubmitReview records the adjudicated participation outcome for one
// assignment of a finalized event. A "Volunteered" outcome requires a
// rating between 1 and 5; a "Did Not Show" outcome carries none.
func (s *workflowServiceImpl) SubmitReview(ctx context.Context, eventID, volunteerID int64, req *dto.SubmitReviewRequest) error {
	s.logger.Debug().
		Int64("eventID", eventID).
		Int64("volunteerID", volunteerID).
		Str("status", req.ParticipationStatus).
		Msg("Submitting review")

	status := models.ParticipationStatus(req.ParticipationStatus)
	if !status.ReviewableStatus() {
		return apperrors.ErrInvalidStatus
	}

	if status == models.ParticipationVolunteered {
		if req.Rating == nil {
			return apperrors.ErrMissingRating
		}
		if *req.Rating < 1 || *req.Rating > 5 {
			return apperrors.NewValidationError("rating must be between 1 and 5")
		}
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		event, err := s.events.GetForUpdate(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.Status != models.EventFinalized {
			return apperrors.ErrEventNotFinalized
		}

		assignment, err := s.assignments.Get(ctx, tx, eventID, volunteerID)
		if err != nil {
			return err
		}

		assignment.ParticipationStatus = status
		assignment.Notes = req.Notes
		if status == models.ParticipationVolunteered {
			assignment.Rating = req.Rating
		} else {
			assignment.Rating = nil
		}

		if err := s.assignments.UpdateReview(ctx, tx, assignment); err != nil {
			return err
		}

		message := fmt.Sprintf("Your participation in '%s' has been recorded as %s.",
			event.Name, status)
		dedupKey := fmt.Sprintf("review:%d:%d", eventID, volunteerID)
		return s.outbox.Enqueue(ctx, tx, volunteerID, message, dedupKey)
	})
}

// CompleteEvent moves a finalized event to Completed once every assignment
// has been reviewed. A remaining pending review count blocks completion.
func (s *workflowServiceImpl) CompleteEvent(ctx context.Context, eventID int64) error {
	s.logger.Debug().Int64("eventID", eventID).Msg("Completing event")

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		event, err := s.events.GetForUpdate(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.Status != models.EventFinalized {
			return apperrors.ErrEventNotFinalized
		}

		pending, err := s.assignments.CountPendingReviews(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if pending > 0 {
			return apperrors.NewReviewsPendingError(pending)
		}

		if err := s.events.UpdateStatus(ctx, tx, eventID, models.EventCompleted); err != nil {
			return err
		}

		volunteerIDs, err := s.assignments.ListVolunteerIDs(ctx, tx, eventID)
		if err != nil {
			return err
		}

		message := fmt.Sprintf("'%s' is complete. Thank you for volunteering!", event.Name)
		for _, vid := range volunteerIDs {
			dedupKey := fmt.Sprintf("complete:%d:%d", eventID, vid)
			if err := s.outbox.Enqueue(ctx, tx, vid, message, dedupKey); err != nil {
				return err
			}
		}

		s.logger.Info().Int64("eventID", eventID).Msg("Event completed")
		return nil
	})
}

// DeleteEvent removes a pending event and sends each assigned volunteer a
// cancellation notice. Finalized and completed events are immutable history.
func (s *workflowServiceImpl) DeleteEvent(ctx context.Context, eventID int64) error {
	s.logger.Debug().Int64("eventID", eventID).Msg("Deleting event")

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		event, err := s.events.GetForUpdate(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.Status != models.EventPending {
			return apperrors.ErrInvalidState
		}

		volunteerIDs, err := s.assignments.ListVolunteerIDs(ctx, tx, eventID)
		if err != nil {
			return err
		}

		message := fmt.Sprintf("'%s' on %s has been cancelled.",
			event.Name, event.Date.Format("2006-01-02"))
		for _, vid := range volunteerIDs {
			dedupKey := fmt.Sprintf("cancel:%d:%d", eventID, vid)
			if err := s.outbox.Enqueue(ctx, tx, vid, message, dedupKey); err != nil {
				return err
			}
		}

		if err := s.events.Delete(ctx, tx, eventID); err != nil {
			return err
		}

		s.logger.Info().Int64("eventID", eventID).Msg("Event deleted")
		return nil
	})
}
