// Package client concentra as regras de cadastro de clientes: o que é
// obrigatório, como os campos são normalizados e como a busca filtra.
package client

import (
	"strings"
	"time"

	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/models"
	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

// Input são os campos mutáveis do cadastro, como chegam do formulário.
type Input struct {
	Name      string
	Phone     string
	BirthDate string // "2006-01-02" ou vazio
	Notes     string
}

// Normalize apara os campos e rejeita nome/telefone em branco antes de
// qualquer escrita.
func Normalize(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.Name == "" || in.Phone == "" {
		return in, httperr.ErrBusiness("missing_required_field")
	}

	return in, nil
}

// ParseBirthDate converte a data opcional de nascimento. Vazio vira nil;
// datas anteriores a 1900 não são armazenadas.
func ParseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	d, err := timezone.ParseDate(s)
	if err != nil || d.Year() < 1900 {
		return nil, httperr.ErrBusiness("invalid_birth_date")
	}

	return &d, nil
}

// Filter aplica a busca por substring, sem diferenciar maiúsculas, sobre
// nome OU telefone. Consulta vazia devolve a lista como está.
func Filter(clients []models.Client, query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			out = append(out, c)
		}
	}

	return out
}
