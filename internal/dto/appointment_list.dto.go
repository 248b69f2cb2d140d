package dto

import (
	"time"

	"github.com/claudiaferraz/agenda-api/internal/format"
	"github.com/claudiaferraz/agenda-api/internal/models"
)

// AppointmentListDTO é o agendamento expandido para a listagem: dados do
// cliente embutidos e campos já formatados para exibição.
type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`

	ClientID     uint   `json:"client_id"`
	ClientName   string `json:"client_name"`
	ClientPhone  string `json:"client_phone"`
	ScheduledFor string `json:"scheduled_for"` // "DD/MM/AAAA às HH:MM"
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:           ap.ID,
		ScheduledAt:  ap.ScheduledAt,
		Status:       ap.Status,
		Notes:        ap.Notes,
		ClientID:     ap.ClientID,
		ClientName:   ap.Client.Name,
		ClientPhone:  format.Phone(ap.Client.Phone),
		ScheduledFor: format.DateTime(&ap.ScheduledAt),
	}
}

// ClientDTO acrescenta ao cliente os campos formatados que o painel exibe.
type ClientDTO struct {
	models.Client
	PhoneDisplay       string `json:"phone_display"`
	BirthDateDisplay   string `json:"birth_date_display"`
	LastServiceDisplay string `json:"last_service_display"`
}

func FromClient(c models.Client) ClientDTO {
	return ClientDTO{
		Client:             c,
		PhoneDisplay:       format.Phone(c.Phone),
		BirthDateDisplay:   format.Date(c.BirthDate),
		LastServiceDisplay: format.DateTime(c.LastServiceAt),
	}
}
