package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusNotConfirmed Status = "not_confirmed"
	StatusConfirmed    Status = "confirmed"
	StatusDone         Status = "done"
	StatusCanceled     Status = "canceled"
)

// Qualquer status pode virar qualquer outro; só o conjunto de valores
// é validado.
func (s Status) Valid() bool {
	switch s {
	case StatusNotConfirmed, StatusConfirmed, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// Color é a cor do evento no calendário.
func (s Status) Color() string {
	switch s {
	case StatusConfirmed:
		return "#4CAF50"
	case StatusDone:
		return "#FFD700"
	case StatusCanceled:
		return "#F44336"
	default:
		return "#9E9E9E"
	}
}

func InitialStatus() Status {
	return StatusNotConfirmed
}
