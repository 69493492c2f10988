package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, 720*time.Hour, ParseDuration("720h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	assert.Equal(t, "2026-09-15", FormatDate(parsed))

	_, err = ParseDate("15/09/2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestDateBeforeToday(t *testing.T) {
	assert.True(t, DateBeforeToday(time.Now().UTC().AddDate(0, 0, -1)))
	assert.False(t, DateBeforeToday(time.Now().UTC()), "today is not before today")
	assert.False(t, DateBeforeToday(time.Now().UTC().AddDate(0, 0, 1)))
}
