package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claudiaferraz/agenda-api/internal/domain/client"
	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/models"
)

func TestNormalize(t *testing.T) {
	in, err := client.Normalize(client.Input{
		Name:  "  Maria Silva ",
		Phone: " 11912345678 ",
		Notes: "  alergia a cera quente ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Maria Silva", in.Name)
	assert.Equal(t, "11912345678", in.Phone)
	assert.Equal(t, "alergia a cera quente", in.Notes)
}

func TestNormalizeRejectsMissingFields(t *testing.T) {
	_, err := client.Normalize(client.Input{Name: "", Phone: "11912345678"})
	assert.True(t, httperr.IsBusiness(err, "missing_required_field"))

	_, err = client.Normalize(client.Input{Name: "Maria", Phone: "   "})
	assert.True(t, httperr.IsBusiness(err, "missing_required_field"))
}

func TestParseBirthDate(t *testing.T) {
	d, err := client.ParseBirthDate("1990-05-23")
	assert.NoError(t, err)
	if assert.NotNil(t, d) {
		assert.Equal(t, 1990, d.Year())
		assert.Equal(t, 23, d.Day())
	}

	d, err = client.ParseBirthDate("")
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = client.ParseBirthDate("23/05/1990")
	assert.True(t, httperr.IsBusiness(err, "invalid_birth_date"))

	_, err = client.ParseBirthDate("1899-12-31")
	assert.True(t, httperr.IsBusiness(err, "invalid_birth_date"))
}

func TestFilter(t *testing.T) {
	clients := []models.Client{
		{Name: "Ana Paula", Phone: "11911112222"},
		{Name: "Mariana Souza", Phone: "11933334444"},
		{Name: "Beatriz Lima", Phone: "11955556666"},
	}

	// consulta vazia devolve tudo
	assert.Equal(t, clients, client.Filter(clients, ""))
	assert.Equal(t, clients, client.Filter(clients, "   "))

	// casa nome sem diferenciar maiúsculas
	got := client.Filter(clients, "ANA")
	assert.Len(t, got, 2)
	assert.Equal(t, "Ana Paula", got[0].Name)
	assert.Equal(t, "Mariana Souza", got[1].Name)

	// casa telefone
	got = client.Filter(clients, "5555")
	assert.Len(t, got, 1)
	assert.Equal(t, "Beatriz Lima", got[0].Name)

	// sem correspondência
	assert.Empty(t, client.Filter(clients, "zzz"))
}
