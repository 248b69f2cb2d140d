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

type UpdateAppointmentInput struct {
	UserID        uint
	AppointmentID uint
	ClientID      uint

	Date  string
	Time  string
	Notes string
}

// UpdateAppointment remarca um agendamento. O status não é alterado aqui;
// transições passam por SetAppointmentStatus.
type UpdateAppointment struct {
	repo    domain.Repository
	audit   Auditor
	metrics CacheInvalidator
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit Auditor,
	metrics CacheInvalidator,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ap.ClientID = client.ID
	ap.ScheduledAt = start.UTC()
	ap.Notes = strings.TrimSpace(in.Notes)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.metrics.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	ap.Client = *client
	return ap, nil
}
