package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/claudiaferraz/agenda-api/internal/httperr"
	"github.com/claudiaferraz/agenda-api/internal/httpresp"
	"github.com/claudiaferraz/agenda-api/internal/middleware"
	ucAppointment "github.com/claudiaferraz/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC    *ucAppointment.CreateAppointment
	updateUC    *ucAppointment.UpdateAppointment
	setStatusUC *ucAppointment.SetAppointmentStatus
	deleteUC    *ucAppointment.DeleteAppointment
	listUC      *ucAppointment.ListAppointments
	calendarUC  *ucAppointment.CalendarEvents
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	setStatusUC *ucAppointment.SetAppointmentStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	calendarUC *ucAppointment.CalendarEvents,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		setStatusUC: setStatusUC,
		deleteUC:    deleteUC,
		listUC:      listUC,
		calendarUC:  calendarUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Notes    string `json:"notes"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// converte os erros de negócio dos use cases em respostas HTTP
func writeAppointmentError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Agendamento não encontrado.")
		case "client_not_found":
			httperr.BadRequest(c, code, "Cliente não encontrado.")
		case "invalid_date_or_time":
			httperr.BadRequest(c, code, "Data ou hora inválida.")
		case "invalid_status":
			httperr.BadRequest(c, code, "Status inválido.")
		default:
			httperr.BadRequest(c, code, "Operação inválida.")
		}
		return
	}

	httperr.BackendUnavailable(c)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:   userID,
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Notes:    req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE (remarcação; status preservado)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		UserID:        userID,
		AppointmentID: id,
		ClientID:      req.ClientID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// SET STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.setStatusUC.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST (mais recentes primeiro)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.BackendUnavailable(c)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// CALENDÁRIO
// ======================================================

func (h *AppointmentHandler) Calendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	events, err := h.calendarUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.BackendUnavailable(c)
		return
	}

	httpresp.List(c, events)
}
