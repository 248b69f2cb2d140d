package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/claudiaferraz/agenda-api/internal/domain/appointment"
	"github.com/claudiaferraz/agenda-api/internal/models"
)

func TestEvents(t *testing.T) {
	// 17:00 UTC = 14:00 local
	scheduled := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		{
			ID:          7,
			ScheduledAt: scheduled,
			Status:      string(appointment.StatusConfirmed),
			Client:      models.Client{Name: "Maria Silva"},
		},
	}

	events := appointment.Events(aps)
	if !assert.Len(t, events, 1) {
		return
	}

	ev := events[0]
	assert.Equal(t, uint(7), ev.ID)
	assert.Equal(t, "14:00 - Maria Silva", ev.Title)
	assert.Equal(t, 14, ev.Start.Hour())
	assert.Equal(t, time.Hour, ev.End.Sub(ev.Start))
	assert.Equal(t, "#4CAF50", ev.Color)
}

func TestStatusColors(t *testing.T) {
	assert.Equal(t, "#9E9E9E", appointment.StatusNotConfirmed.Color())
	assert.Equal(t, "#4CAF50", appointment.StatusConfirmed.Color())
	assert.Equal(t, "#FFD700", appointment.StatusDone.Color())
	assert.Equal(t, "#F44336", appointment.StatusCanceled.Color())

	// status desconhecido cai no cinza
	assert.Equal(t, "#9E9E9E", appointment.Status("whatever").Color())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []appointment.Status{
		appointment.StatusNotConfirmed,
		appointment.StatusConfirmed,
		appointment.StatusDone,
		appointment.StatusCanceled,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, appointment.Status("scheduled").Valid())
	assert.False(t, appointment.Status("").Valid())
}
