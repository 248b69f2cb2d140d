package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/claudiaferraz/agenda-api/internal/domain/appointment"
	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/models"
	usecase "github.com/claudiaferraz/agenda-api/internal/usecase/appointment"
)

func TestCreateAppointment(t *testing.T) {
	repo := new(MockRepository)
	auditor := &fakeAuditor{}
	invalidator := &fakeInvalidator{}

	uc := usecase.NewCreateAppointment(repo, auditor, invalidator)
	ctx := context.Background()

	repo.On("GetClient", ctx, uint(5)).
		Return(&models.Client{ID: 5, Name: "Maria Silva"}, nil)
	repo.On("CreateAppointment", ctx, mock.AnythingOfType("*models.Appointment")).
		Return(nil)

	ap, err := uc.Execute(ctx, usecase.CreateAppointmentInput{
		UserID:   1,
		ClientID: 5,
		Date:     "2025-03-10",
		Time:     "14:00",
		Notes:    "  meia perna  ",
	})

	assert.NoError(t, err)

	// 14:00 local (UTC-3) é armazenado como 17:00Z
	want := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	assert.True(t, ap.ScheduledAt.Equal(want), "got %v", ap.ScheduledAt)

	assert.Equal(t, string(domain.StatusNotConfirmed), ap.Status)
	assert.Equal(t, "meia perna", ap.Notes)
	assert.Equal(t, uint(5), ap.ClientID)

	assert.Equal(t, 1, invalidator.calls)
	if assert.Len(t, auditor.events, 1) {
		assert.Equal(t, "appointment_created", auditor.events[0].Action)
	}

	repo.AssertExpectations(t)
}

func TestCreateAppointmentUnknownClient(t *testing.T) {
	repo := new(MockRepository)
	uc := usecase.NewCreateAppointment(repo, &fakeAuditor{}, &fakeInvalidator{})
	ctx := context.Background()

	repo.On("GetClient", ctx, uint(99)).
		Return(nil, assert.AnError)

	_, err := uc.Execute(ctx, usecase.CreateAppointmentInput{
		ClientID: 99,
		Date:     "2025-03-10",
		Time:     "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointmentBadDate(t *testing.T) {
	repo := new(MockRepository)
	uc := usecase.NewCreateAppointment(repo, &fakeAuditor{}, &fakeInvalidator{})
	ctx := context.Background()

	repo.On("GetClient", ctx, uint(5)).
		Return(&models.Client{ID: 5}, nil)

	_, err := uc.Execute(ctx, usecase.CreateAppointmentInput{
		ClientID: 5,
		Date:     "10/03/2025",
		Time:     "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}
