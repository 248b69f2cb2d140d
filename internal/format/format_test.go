package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/claudiaferraz/agenda-api/internal/format"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"celular com 11 dígitos", "11912345678", "(11) 91234-5678"},
		{"já pontuado", "(11) 91234-5678", "(11) 91234-5678"},
		{"com código do país", "+5511912345678", "5511912345678"},
		{"fixo com 10 dígitos", "1133334444", "1133334444"},
		{"vazio", "", format.Placeholder},
		{"só pontuação", "() -", format.Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Phone(tt.in))
		})
	}
}

func TestDate(t *testing.T) {
	d := time.Date(1990, 5, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "23/05/1990", format.Date(&d))

	assert.Equal(t, format.Placeholder, format.Date(nil))

	var zero time.Time
	assert.Equal(t, format.Placeholder, format.Date(&zero))
}

func TestDateTime(t *testing.T) {
	// 17:00 UTC é 14:00 no horário de Brasília
	instant := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "10/03/2025 às 14:00", format.DateTime(&instant))

	assert.Equal(t, format.Placeholder, format.DateTime(nil))
}
