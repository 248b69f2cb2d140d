package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/claudiaferraz/agenda-api/internal/audit"
	"github.com/claudiaferraz/agenda-api/internal/cache"
	"github.com/claudiaferraz/agenda-api/internal/config"
	"github.com/claudiaferraz/agenda-api/internal/handlers"
	infraRepo "github.com/claudiaferraz/agenda-api/internal/infra/repository"
	"github.com/claudiaferraz/agenda-api/internal/metrics"
	"github.com/claudiaferraz/agenda-api/internal/middleware"
	"github.com/claudiaferraz/agenda-api/internal/notify"
	ucAppointment "github.com/claudiaferraz/agenda-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	metricsService := metrics.NewService(agendaRepo, cacheClient)

	notifyClient := notify.New(cfg.OneSignalAppID, cfg.OneSignalAPIKey)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		agendaRepo,
		auditDispatcher,
		metricsService,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		agendaRepo,
		auditDispatcher,
		metricsService,
	)

	setStatusUC := ucAppointment.NewSetAppointmentStatus(
		agendaRepo,
		auditDispatcher,
		metricsService,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		agendaRepo,
		auditDispatcher,
		metricsService,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(agendaRepo)
	calendarEventsUC := ucAppointment.NewCalendarEvents(agendaRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(metricsService)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher, metricsService)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		setStatusUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		calendarEventsUC,
	)

	notifyHandler := handlers.NewNotifyHandler(notifyClient, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/dashboard", dashboardHandler.Get)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/calendar", appointmentHandler.Calendar)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.SetStatus)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// NOTIFICAÇÕES + AUDITORIA
			// ------------------------------
			secured.POST("/me/notifications", notifyHandler.Send)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
