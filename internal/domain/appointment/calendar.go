package appointment

import (
	"fmt"
	"time"

	"github.com/claudiaferraz/agenda-api/internal/models"
	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

// Duração fixa de exibição; a agenda não registra duração por serviço.
const eventDuration = time.Hour

type Event struct {
	ID    uint      `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Color string    `json:"color"`
}

// Events converte agendamentos em eventos de calendário: início no fuso
// local, fim uma hora depois, título com hora e cliente, cor por status.
func Events(aps []models.Appointment) []Event {
	out := make([]Event, 0, len(aps))
	for _, ap := range aps {
		start := ap.ScheduledAt.In(timezone.Location())
		out = append(out, Event{
			ID:    ap.ID,
			Title: fmt.Sprintf("%s - %s", start.Format("15:04"), ap.Client.Name),
			Start: start,
			End:   start.Add(eventDuration),
			Color: Status(ap.Status).Color(),
		})
	}
	return out
}
