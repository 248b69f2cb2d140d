package timezone

import "time"

// Horário de Brasília, sem regra de horário de verão (extinto em 2019).
// FixedZone evita depender de tzdata no container.
var brt = time.FixedZone("-03", -3*60*60)

func Location() *time.Location {
	return brt
}

func Now() time.Time {
	return time.Now().In(brt)
}

// DayBounds retorna o início do dia local de t e o início do dia seguinte.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(brt)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, brt)
	return start, start.Add(24 * time.Hour)
}

// MonthBounds retorna o início do mês local e o início do mês seguinte.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, brt)
	return start, start.AddDate(0, 1, 0)
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, brt)
}

// ParseDateTime combina data e hora locais em um instante absoluto.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, brt)
}
