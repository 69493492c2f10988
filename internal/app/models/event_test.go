package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatusValid(t *testing.T) {
	assert.True(t, EventPending.Valid())
	assert.True(t, EventFinalized.Valid())
	assert.True(t, EventCompleted.Valid())
	assert.False(t, EventStatus("Cancelled").Valid())
	assert.False(t, EventStatus("").Valid())
	assert.False(t, EventStatus("pending").Valid(), "states are case sensitive")
}

func TestUrgencyValid(t *testing.T) {
	assert.True(t, UrgencyLow.Valid())
	assert.True(t, UrgencyMedium.Valid())
	assert.True(t, UrgencyHigh.Valid())
	assert.False(t, Urgency("Critical").Valid())
	assert.False(t, Urgency("").Valid())
}

func TestEventIsFullyStaffed(t *testing.T) {
	tests := []struct {
		name       string
		needed     int
		registered int
		want       bool
	}{
		{"empty event", 3, 0, false},
		{"partially staffed", 3, 2, false},
		{"exactly staffed", 3, 3, true},
		{"over capacity", 3, 4, true},
		{"single slot filled", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{VolunteersNeeded: tt.needed, VolunteersRegistered: tt.registered}
			assert.Equal(t, tt.want, e.IsFullyStaffed())
		})
	}
}
