package appointment

import (
	"context"

	"github.com/claudiaferraz/agenda-api/internal/audit"
	domain "github.com/claudiaferraz/agenda-api/internal/domain/appointment"
	"github.com/claudiaferraz/agenda-api/internal/httperr"
)

// DeleteAppointment remove em definitivo. A confirmação em duas etapas é
// responsabilidade da camada de apresentação; aqui a exclusão é
// incondicional.
type DeleteAppointment struct {
	repo    domain.Repository
	audit   Auditor
	metrics CacheInvalidator
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit Auditor,
	metrics CacheInvalidator,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	if _, err := uc.repo.GetAppointment(ctx, appointmentID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.metrics.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
