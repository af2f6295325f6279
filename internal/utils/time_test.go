package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ms-booking/internal/utils"
)

func TestParseStartTime(t *testing.T) {
	parsed, err := utils.ParseStartTime("2026-05-21 21:30:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC), parsed)

	// datetime-local inputs come in without seconds
	parsed, err = utils.ParseStartTime("2026-05-21T21:30")
	assert.NoError(t, err)
	assert.Equal(t, 21, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	parsed, err = utils.ParseStartTime("2026-05-21")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 21, 0, 0, 0, 0, time.UTC), parsed)

	_, err = utils.ParseStartTime("next tuesday")
	assert.Error(t, err)

	_, err = utils.ParseStartTime("")
	assert.Error(t, err)
}

func TestFormatStartTime(t *testing.T) {
	ts := time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-05-21 21:30:00", utils.FormatStartTime(ts))
}
