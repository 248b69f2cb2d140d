package appointment

import (
	"context"
	"strings"

	"github.com/claudiaferraz/agenda-api/internal/audit"
	domain "github.com/claudiaferraz/agenda-api/internal/domain/appointment"
	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/models"
	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID   uint
	ClientID uint

	Date  string // "2006-01-02", hora local
	Time  string // "15:04", hora local
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	audit   Auditor
	metrics CacheInvalidator
}

func NewCreateAppointment(
	repo domain.Repository,
	audit Auditor,
	metrics CacheInvalidator,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// hora de parede local vira instante absoluto na submissão
	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ap := &models.Appointment{
		ClientID:    client.ID,
		ScheduledAt: start.UTC(),
		Status:      string(domain.InitialStatus()),
		Notes:       strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.metrics.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ap.Client = *client
	return ap, nil
}
