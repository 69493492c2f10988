package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipationStatusReviewable(t *testing.T) {
	assert.True(t, ParticipationVolunteered.ReviewableStatus())
	assert.True(t, ParticipationDidNotShow.ReviewableStatus())

	// Registered is the pre-review state, never a review outcome
	assert.False(t, ParticipationRegistered.ReviewableStatus())
	assert.False(t, ParticipationStatus("No Show").ReviewableStatus())
	assert.False(t, ParticipationStatus("").ReviewableStatus())
}
