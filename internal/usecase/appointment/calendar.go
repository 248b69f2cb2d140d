package appointment

import (
	"context"
	"time"

	domain "github.com/claudiaferraz/agenda-api/internal/domain/appointment"
	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

// CalendarEvents monta os eventos de exibição do mês pedido.
type CalendarEvents struct {
	repo domain.Repository
}

func NewCalendarEvents(repo domain.Repository) *CalendarEvents {
	return &CalendarEvents{repo: repo}
}

func (uc *CalendarEvents) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]domain.Event, error) {

	start, end := timezone.MonthBounds(year, time.Month(month))

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return domain.Events(appointments), nil
}
