package appointment

import (
	"context"

	"github.com/claudiaferraz/agenda-api/internal/audit"
	domain "github.com/claudiaferraz/agenda-api/internal/domain/appointment"
	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/models"
	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

// SetAppointmentStatus sobrescreve o status com qualquer um dos quatro
// valores; o grafo de transições é livre. Marcar como concluído carimba
// last_service_at do cliente na mesma transação.
type SetAppointmentStatus struct {
	repo    domain.Repository
	audit   Auditor
	metrics CacheInvalidator
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit Auditor,
	metrics CacheInvalidator,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	status := domain.Status(newStatus)
	if !status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.Status = string(status)

	if status == domain.StatusDone {
		now := timezone.Now()
		if err := uc.repo.UpdateAppointmentWithServiceStamp(ctx, ap, now); err != nil {
			return nil, err
		}
		ap.Client.LastServiceAt = &now
	} else {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	uc.metrics.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_status_" + string(status),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
