package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileAvailableOn(t *testing.T) {
	profile := &VolunteerProfile{
		Availability: []time.Time{
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	assert.True(t, profile.AvailableOn(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, profile.AvailableOn(time.Date(2026, 10, 1, 18, 30, 0, 0, time.UTC)),
		"time of day must not matter")
	assert.False(t, profile.AvailableOn(time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, profile.AvailableOn(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)),
		"same day of a different year does not match")

	empty := &VolunteerProfile{}
	assert.False(t, empty.AvailableOn(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
}
