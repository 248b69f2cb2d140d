// Package format converte valores armazenados em strings de exibição.
// Todas as funções são totais: entrada inválida vira o placeholder,
// nunca um erro.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

const Placeholder = "—"

// Phone formata celulares brasileiros de 11 dígitos como (DD) DDDDD-DDDD.
// Qualquer outra contagem de dígitos volta como veio, só sem pontuação.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return Placeholder
	}
	if len(digits) != 11 {
		return digits
	}

	return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
}

// Date renderiza uma data como DD/MM/AAAA.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder
	}
	return t.Format("02/01/2006")
}

// DateTime renderiza um instante no fuso local como "DD/MM/AAAA às HH:MM".
func DateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder
	}
	local := t.In(timezone.Location())
	return local.Format("02/01/2006 às 15:04")
}
