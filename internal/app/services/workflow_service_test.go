package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/db"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

type assignmentKey struct {
	eventID     int64
	volunteerID int64
}

type outboxEntry struct {
	recipientID int64
	message     string
	dedupKey    string
}

// memStore is an in-memory stand-in for the workflow's stores. Its methods
// accept the transaction argument but ignore it; the fake TxRunner passes
// nil, which the pgx.Tx interface permits.
type memStore struct {
	events      map[int64]*models.Event
	assignments map[assignmentKey]*models.Assignment
	outbox      []outboxEntry
}

func newMemStore() *memStore {
	return &memStore{
		events:      make(map[int64]*models.Event),
		assignments: make(map[assignmentKey]*models.Assignment),
	}
}

func (m *memStore) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

func (m *memStore) GetForUpdate(_ context.Context, _ pgx.Tx, id int64) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}

	copied := *event
	copied.VolunteersRegistered = 0
	for key := range m.assignments {
		if key.eventID == id {
			copied.VolunteersRegistered++
		}
	}
	return &copied, nil
}

func (m *memStore) UpdateStatus(_ context.Context, _ pgx.Tx, id int64, status models.EventStatus) error {
	event, ok := m.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	event.Status = status
	return nil
}

func (m *memStore) Delete(_ context.Context, _ pgx.Tx, id int64) error {
	if _, ok := m.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(m.events, id)
	for key := range m.assignments {
		if key.eventID == id {
			delete(m.assignments, key)
		}
	}
	return nil
}

func (m *memStore) Insert(_ context.Context, _ pgx.Tx, eventID, volunteerID int64) error {
	key := assignmentKey{eventID, volunteerID}
	if _, ok := m.assignments[key]; ok {
		return apperrors.ErrAlreadyAssigned
	}
	m.assignments[key] = &models.Assignment{
		EventID:             eventID,
		VolunteerID:         volunteerID,
		ParticipationStatus: models.ParticipationRegistered,
		NeedsReview:         true,
		CreatedAt:           time.Now(),
	}
	return nil
}

func (m *memStore) Get(_ context.Context, _ pgx.Tx, eventID, volunteerID int64) (*models.Assignment, error) {
	a, ok := m.assignments[assignmentKey{eventID, volunteerID}]
	if !ok {
		return nil, apperrors.ErrAssignmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *memStore) UpdateReview(_ context.Context, _ pgx.Tx, a *models.Assignment) error {
	key := assignmentKey{a.EventID, a.VolunteerID}
	if _, ok := m.assignments[key]; !ok {
		return apperrors.ErrAssignmentNotFound
	}
	updated := *a
	updated.NeedsReview = false
	now := time.Now()
	updated.ReviewedAt = &now
	m.assignments[key] = &updated
	return nil
}

func (m *memStore) CountPendingReviews(_ context.Context, _ pgx.Tx, eventID int64) (int, error) {
	count := 0
	for key, a := range m.assignments {
		if key.eventID == eventID && a.NeedsReview {
			count++
		}
	}
	return count, nil
}

func (m *memStore) ListVolunteerIDs(_ context.Context, _ pgx.Tx, eventID int64) ([]int64, error) {
	var ids []int64
	for key := range m.assignments {
		if key.eventID == eventID {
			ids = append(ids, key.volunteerID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memStore) Enqueue(_ context.Context, _ pgx.Tx, recipientID int64, message, dedupKey string) error {
	for _, e := range m.outbox {
		if e.dedupKey == dedupKey {
			return nil
		}
	}
	m.outbox = append(m.outbox, outboxEntry{recipientID, message, dedupKey})
	return nil
}

func (m *memStore) outboxFor(recipientID int64) []outboxEntry {
	var entries []outboxEntry
	for _, e := range m.outbox {
		if e.recipientID == recipientID {
			entries = append(entries, e)
		}
	}
	return entries
}

// rejectAll denies every candidate
type rejectAll struct{}

func (rejectAll) VerifyEligible(context.Context, *models.Event, int64) error {
	return apperrors.ErrVolunteerNotEligible
}

func newTestWorkflow(store *memStore, eligibility EligibilityChecker) WorkflowService {
	return NewWorkflowService(store, store, store, store, eligibility, zerolog.Nop())
}

func seedEvent(store *memStore, id int64, status models.EventStatus, needed int) *models.Event {
	event := &models.Event{
		ID:               id,
		Name:             "Park Cleanup",
		Date:             time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		VolunteersNeeded: needed,
		Status:           status,
	}
	store.events[id] = event
	return event
}

func intPtr(v int) *int { return &v }

func TestCreateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns volunteer and queues a notification", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 2)
		svc := newTestWorkflow(store, nil)

		err := svc.CreateAssignment(ctx, 1, 10)
		require.NoError(t, err)

		assert.Contains(t, store.assignments, assignmentKey{1, 10})
		assert.Len(t, store.outboxFor(10), 1)
	})

	t.Run("rejects a duplicate assignment", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 2)
		svc := newTestWorkflow(store, nil)

		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))
		err := svc.CreateAssignment(ctx, 1, 10)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyAssigned)
		assert.Len(t, store.outbox, 1)
	})

	t.Run("rejects when event is not pending", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventFinalized, 2)
		svc := newTestWorkflow(store, nil)

		err := svc.CreateAssignment(ctx, 1, 10)
		assert.ErrorIs(t, err, apperrors.ErrEventNotPending)
	})

	t.Run("rejects when event is fully staffed", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 1)
		svc := newTestWorkflow(store, nil)

		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))
		err := svc.CreateAssignment(ctx, 1, 11)
		assert.ErrorIs(t, err, apperrors.ErrEventFullyStaffed)
		assert.NotContains(t, store.assignments, assignmentKey{1, 11})
	})

	t.Run("rejects an ineligible volunteer", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 2)
		svc := newTestWorkflow(store, rejectAll{})

		err := svc.CreateAssignment(ctx, 1, 10)
		assert.ErrorIs(t, err, apperrors.ErrVolunteerNotEligible)
		assert.Empty(t, store.assignments)
	})

	t.Run("rejects an unknown event", func(t *testing.T) {
		store := newMemStore()
		svc := newTestWorkflow(store, nil)

		err := svc.CreateAssignment(ctx, 99, 10)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestFinalizeEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("finalizes a fully staffed pending event and notifies everyone", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 2)
		svc := newTestWorkflow(store, nil)

		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))
		require.NoError(t, svc.CreateAssignment(ctx, 1, 11))

		err := svc.FinalizeEvent(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, models.EventFinalized, store.events[1].Status)
		assert.Len(t, store.outboxFor(10), 2) // assignment + finalize
		assert.Len(t, store.outboxFor(11), 2)
	})

	t.Run("rejects finalize while understaffed", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 2)
		svc := newTestWorkflow(store, nil)

		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))

		err := svc.FinalizeEvent(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrNotFullyStaffed)
		assert.Equal(t, models.EventPending, store.events[1].Status)
	})

	t.Run("rejects finalize when not pending", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventCompleted, 1)
		svc := newTestWorkflow(store, nil)

		err := svc.FinalizeEvent(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrEventNotPending)
	})
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*memStore, WorkflowService) {
		t.Helper()
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 1)
		svc := newTestWorkflow(store, nil)
		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))
		require.NoError(t, svc.FinalizeEvent(ctx, 1))
		return store, svc
	}

	t.Run("records a volunteered outcome with rating", func(t *testing.T) {
		store, svc := setup(t)

		err := svc.SubmitReview(ctx, 1, 10, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationVolunteered),
			Rating:              intPtr(3),
			Notes:               "solid work",
		})
		require.NoError(t, err)

		a := store.assignments[assignmentKey{1, 10}]
		assert.Equal(t, models.ParticipationVolunteered, a.ParticipationStatus)
		assert.False(t, a.NeedsReview)
		require.NotNil(t, a.Rating)
		assert.Equal(t, 3, *a.Rating)
		assert.Equal(t, "solid work", a.Notes)
	})

	t.Run("records a no-show without a rating", func(t *testing.T) {
		store, svc := setup(t)

		err := svc.SubmitReview(ctx, 1, 10, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationDidNotShow),
			Rating:              intPtr(5), // ignored for no-shows
		})
		require.NoError(t, err)

		a := store.assignments[assignmentKey{1, 10}]
		assert.Equal(t, models.ParticipationDidNotShow, a.ParticipationStatus)
		assert.False(t, a.NeedsReview)
		assert.Nil(t, a.Rating)
	})

	t.Run("requires a rating for volunteered", func(t *testing.T) {
		store, svc := setup(t)

		err := svc.SubmitReview(ctx, 1, 10, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationVolunteered),
		})
		assert.ErrorIs(t, err, apperrors.ErrMissingRating)
		assert.True(t, store.assignments[assignmentKey{1, 10}].NeedsReview)
	})

	t.Run("rejects an out-of-range rating", func(t *testing.T) {
		_, svc := setup(t)

		err := svc.SubmitReview(ctx, 1, 10, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationVolunteered),
			Rating:              intPtr(6),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects an unknown participation status", func(t *testing.T) {
		_, svc := setup(t)

		err := svc.SubmitReview(ctx, 1, 10, &dto.SubmitReviewRequest{
			ParticipationStatus: "Registered",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("rejects review before finalization", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 2)
		svc := newTestWorkflow(store, nil)
		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))

		err := svc.SubmitReview(ctx, 1, 10, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationVolunteered),
			Rating:              intPtr(4),
		})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFinalized)
	})

	t.Run("rejects review for an unassigned volunteer", func(t *testing.T) {
		_, svc := setup(t)

		err := svc.SubmitReview(ctx, 1, 99, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationDidNotShow),
		})
		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
	})
}

func TestCompleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("blocks completion until every review is in", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 2)
		svc := newTestWorkflow(store, nil)

		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))
		require.NoError(t, svc.CreateAssignment(ctx, 1, 11))
		require.NoError(t, svc.FinalizeEvent(ctx, 1))

		err := svc.CompleteEvent(ctx, 1)
		var pending *apperrors.ReviewsPendingError
		require.ErrorAs(t, err, &pending)
		assert.Equal(t, 2, pending.Count)

		require.NoError(t, svc.SubmitReview(ctx, 1, 10, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationVolunteered),
			Rating:              intPtr(4),
		}))

		err = svc.CompleteEvent(ctx, 1)
		require.ErrorAs(t, err, &pending)
		assert.Equal(t, 1, pending.Count)

		require.NoError(t, svc.SubmitReview(ctx, 1, 11, &dto.SubmitReviewRequest{
			ParticipationStatus: string(models.ParticipationDidNotShow),
		}))

		require.NoError(t, svc.CompleteEvent(ctx, 1))
		assert.Equal(t, models.EventCompleted, store.events[1].Status)

		// assignment + finalize + review + completion per volunteer
		assert.Len(t, store.outboxFor(10), 4)
		assert.Len(t, store.outboxFor(11), 4)
	})

	t.Run("rejects completion of a non-finalized event", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 1)
		svc := newTestWorkflow(store, nil)

		err := svc.CompleteEvent(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFinalized)
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a pending event and cancels each assignment", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventPending, 3)
		svc := newTestWorkflow(store, nil)

		require.NoError(t, svc.CreateAssignment(ctx, 1, 10))
		require.NoError(t, svc.CreateAssignment(ctx, 1, 11))

		err := svc.DeleteEvent(ctx, 1)
		require.NoError(t, err)

		assert.NotContains(t, store.events, int64(1))
		assert.Empty(t, store.assignments)

		cancelled := 0
		for _, e := range store.outbox {
			if e.dedupKey == "cancel:1:10" || e.dedupKey == "cancel:1:11" {
				cancelled++
			}
		}
		assert.Equal(t, 2, cancelled)
	})

	t.Run("rejects deleting a finalized event", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventFinalized, 1)
		svc := newTestWorkflow(store, nil)

		err := svc.DeleteEvent(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		assert.Contains(t, store.events, int64(1))
	})

	t.Run("rejects deleting a completed event", func(t *testing.T) {
		store := newMemStore()
		seedEvent(store, 1, models.EventCompleted, 1)
		svc := newTestWorkflow(store, nil)

		err := svc.DeleteEvent(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		assert.Contains(t, store.events, int64(1))
	})
}

// brokenEventStore simulates the event store losing its backing database
type brokenEventStore struct{}

func (brokenEventStore) GetForUpdate(context.Context, pgx.Tx, int64) (*models.Event, error) {
	return nil, apperrors.NewCollaboratorError(errors.New("connection reset by peer"))
}

func (brokenEventStore) UpdateStatus(context.Context, pgx.Tx, int64, models.EventStatus) error {
	return apperrors.NewCollaboratorError(errors.New("connection reset by peer"))
}

func (brokenEventStore) Delete(context.Context, pgx.Tx, int64) error {
	return apperrors.NewCollaboratorError(errors.New("connection reset by peer"))
}

func TestWorkflowSurfacesCollaboratorFailures(t *testing.T) {
	store := newMemStore()
	svc := NewWorkflowService(store, brokenEventStore{}, store, store, nil, zerolog.Nop())

	err := svc.CreateAssignment(context.Background(), 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrCollaboratorUnavailable,
		"infrastructure failures keep their retryable class through the transition")
	assert.Empty(t, store.assignments)
	assert.Empty(t, store.outbox)

	err = svc.CompleteEvent(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrCollaboratorUnavailable)
}

func TestWorkflowErrorsAbortTransaction(t *testing.T) {
	// The fake runner propagates fn's error the way WithTransaction
	// surfaces a rollback cause.
	store := newMemStore()
	svc := newTestWorkflow(store, nil)

	err := svc.FinalizeEvent(context.Background(), 42)
	assert.True(t, errors.Is(err, apperrors.ErrEventNotFound))
}
