package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

func validEventArgs() (string, string, string, string, string, string, string, string, int, []string, int) {
	date := time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")
	return "Park Cleanup", "Clearing the riverside park", "Riverside Park",
		"Dallas", "TX", "75001", date, "Medium", 4, []string{"lifting"}, 5
}

func TestBuildEventFromRequest(t *testing.T) {
	t.Run("builds a valid event", func(t *testing.T) {
		name, desc, loc, city, state, zip, date, urgency, duration, skills, needed := validEventArgs()

		event, err := buildEventFromRequest(name, desc, loc, city, state, zip, date, urgency, duration, skills, needed)
		require.NoError(t, err)

		assert.Equal(t, "Park Cleanup", event.Name)
		assert.Equal(t, models.UrgencyMedium, event.Urgency)
		assert.Equal(t, 5, event.VolunteersNeeded)
		assert.Equal(t, date, event.Date.Format("2006-01-02"))
	})

	t.Run("rejects a bad state code", func(t *testing.T) {
		name, desc, loc, city, _, zip, date, urgency, duration, skills, needed := validEventArgs()

		_, err := buildEventFromRequest(name, desc, loc, city, "Texas", zip, date, urgency, duration, skills, needed)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects a bad zip code", func(t *testing.T) {
		name, desc, loc, city, state, _, date, urgency, duration, skills, needed := validEventArgs()

		_, err := buildEventFromRequest(name, desc, loc, city, state, "750", date, urgency, duration, skills, needed)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects an unknown urgency", func(t *testing.T) {
		name, desc, loc, city, state, zip, date, _, duration, skills, needed := validEventArgs()

		_, err := buildEventFromRequest(name, desc, loc, city, state, zip, date, "Critical", duration, skills, needed)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		name, desc, loc, city, state, zip, _, urgency, duration, skills, needed := validEventArgs()

		_, err := buildEventFromRequest(name, desc, loc, city, state, zip, "09/15/2026", urgency, duration, skills, needed)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects a past date", func(t *testing.T) {
		name, desc, loc, city, state, zip, _, urgency, duration, skills, needed := validEventArgs()

		past := time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")
		_, err := buildEventFromRequest(name, desc, loc, city, state, zip, past, urgency, duration, skills, needed)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
