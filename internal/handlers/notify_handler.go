package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claudiaferraz/agenda-api/internal/audit"
	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/middleware"
	"github.com/claudiaferraz/agenda-api/internal/notify"
)

type NotifyHandler struct {
	client *notify.Client
	audit  *audit.Dispatcher
}

func NewNotifyHandler(client *notify.Client, auditDispatcher *audit.Dispatcher) *NotifyHandler {
	return &NotifyHandler{client: client, audit: auditDispatcher}
}

type NotifyRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Send dispara um push avulso para todos os inscritos.
func (h *NotifyHandler) Send(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.client.Enabled() {
		httperr.Unavailable(c, "notifications_disabled",
			"Envio de notificações não está configurado.")
		return
	}

	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Título e mensagem são obrigatórios.")
		return
	}

	id, err := h.client.SendToAll(c.Request.Context(), req.Title, req.Message)
	if err != nil {
		httperr.Internal(c, "notification_failed",
			"Falha ao enviar a notificação. Tente novamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "notification_sent",
		Entity: "notification",
		Metadata: map[string]string{
			"title":       req.Title,
			"provider_id": id,
		},
	})

	c.JSON(http.StatusOK, gin.H{"id": id})
}
