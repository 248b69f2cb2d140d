package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

func TestParseDateTimeConvertsToUTC(t *testing.T) {
	got, err := timezone.ParseDateTime("2025-03-10", "14:00")

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-10T17:00:00Z", got.UTC().Format(time.RFC3339))
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	_, err := timezone.ParseDateTime("2025-03-10", "25:99")
	assert.Error(t, err)

	_, err = timezone.ParseDateTime("10/03/2025", "14:00")
	assert.Error(t, err)
}

func TestDayBoundsCoverLocalDay(t *testing.T) {
	// 01:30 UTC de 11/03 ainda é noite de 10/03 no fuso local
	instant := time.Date(2025, 3, 11, 1, 30, 0, 0, time.UTC)

	start, end := timezone.DayBounds(instant)

	assert.Equal(t, "2025-03-10T03:00:00Z", start.UTC().Format(time.RFC3339))
	assert.Equal(t, "2025-03-11T03:00:00Z", end.UTC().Format(time.RFC3339))
}

func TestMonthBounds(t *testing.T) {
	start, end := timezone.MonthBounds(2025, time.February)

	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.February, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 1, end.Day())
}
