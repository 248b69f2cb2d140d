package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/claudiaferraz/agenda-api/internal/audit"
	domain "github.com/claudiaferraz/agenda-api/internal/domain/client"
	"github.com/claudiaferraz/agenda-api/internal/dto"
	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/httpresp"
	"github.com/claudiaferraz/agenda-api/internal/metrics"
	"github.com/claudiaferraz/agenda-api/internal/middleware"
	"github.com/claudiaferraz/agenda-api/internal/models"
)

type ClientHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	metrics *metrics.Service
}

func NewClientHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	metricsService *metrics.Service,
) *ClientHandler {
	return &ClientHandler{
		db:      db,
		audit:   auditDispatcher,
		metrics: metricsService,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"` // "2006-01-02" ou vazio
	Notes     string `json:"notes"`
}

// ======================================================
// LIST + BUSCA
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		httperr.BackendUnavailable(c)
		return
	}

	// busca por substring em nome OU telefone, em memória como no painel
	clients = domain.Filter(clients, c.Query("query"))

	out := make([]dto.ClientDTO, 0, len(clients))
	for _, cl := range clients {
		out = append(out, dto.FromClient(cl))
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := domain.Normalize(domain.Input{
		Name:      req.Name,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.BadRequest(c, "missing_required_field", "Nome e telefone são obrigatórios.")
		return
	}

	birthDate, err := domain.ParseBirthDate(in.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	client := models.Client{
		Name:      in.Name,
		Phone:     in.Phone,
		BirthDate: birthDate,
		Notes:     in.Notes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.BackendUnavailable(c)
		return
	}

	h.metrics.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, dto.FromClient(client))
}

// ======================================================
// UPDATE (substituição completa dos campos mutáveis)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := domain.Normalize(domain.Input{
		Name:      req.Name,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.BadRequest(c, "missing_required_field", "Nome e telefone são obrigatórios.")
		return
	}

	birthDate, err := domain.ParseBirthDate(in.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	client.Name = in.Name
	client.Phone = in.Phone
	client.BirthDate = birthDate
	client.Notes = in.Notes

	if err := h.db.Save(&client).Error; err != nil {
		httperr.BackendUnavailable(c)
		return
	}

	h.metrics.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, dto.FromClient(client))
}

// ======================================================
// DELETE
// ======================================================

// A confirmação em duas etapas acontece na interface; aqui o delete é
// definitivo e leva junto os agendamentos do cliente (ON DELETE CASCADE).
func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.BackendUnavailable(c)
		return
	}

	h.metrics.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.Status(http.StatusNoContent)
}
