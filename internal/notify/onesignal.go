// Package notify envia push para todos os inscritos via API REST do
// OneSignal. Sem credenciais o recurso fica desativado, nunca fatal.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://onesignal.com/api/v1"

type Client struct {
	appID   string
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(appID, apiKey string) *Client {
	return &Client{
		appID:   appID,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithBaseURL existe para os testes apontarem para um servidor local.
func NewWithBaseURL(appID, apiKey, baseURL string) *Client {
	c := New(appID, apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) Enabled() bool {
	return c.appID != "" && c.apiKey != ""
}

type sendRequest struct {
	AppID            string            `json:"app_id"`
	IncludedSegments []string          `json:"included_segments"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	ExternalID       string            `json:"external_id"`
}

type sendResponse struct {
	ID     string          `json:"id"`
	Errors json.RawMessage `json:"errors"`
}

// SendToAll dispara uma mensagem avulsa para todos os inscritos e retorna
// o identificador atribuído pelo provedor. Sem retry: falha é reportada e
// o reenvio é manual.
func (c *Client) SendToAll(ctx context.Context, title, message string) (string, error) {
	payload := sendRequest{
		AppID:            c.appID,
		IncludedSegments: []string{"All"},
		Headings:         map[string]string{"en": title},
		Contents:         map[string]string{"en": message},
		// chave de idempotência: reenvio acidental não duplica o push
		ExternalID: uuid.NewString(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/notifications",
		bytes.NewReader(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("onesignal: status %d: %s", resp.StatusCode, raw)
	}

	var out sendResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("onesignal: invalid response: %w", err)
	}

	if out.ID == "" {
		return "", fmt.Errorf("onesignal: rejected: %s", raw)
	}

	return out.ID, nil
}
