package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claudiaferraz/agenda-api/internal/metrics"
)

type DashboardHandler struct {
	metrics *metrics.Service
}

func NewDashboardHandler(metricsService *metrics.Service) *DashboardHandler {
	return &DashboardHandler{metrics: metricsService}
}

// Get devolve os três contadores do painel. Falha de backend não derruba
// a tela: cada contador degrada para zero dentro do serviço de métricas.
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, gin.H{
		"total_clients":      h.metrics.TotalClients(ctx),
		"birthdays_today":    h.metrics.BirthdaysToday(ctx),
		"appointments_today": h.metrics.AppointmentsToday(ctx),
	})
}
