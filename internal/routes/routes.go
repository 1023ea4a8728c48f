package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucBarber "github.com/BruksfildServices01/barber-booking/internal/usecase/barber"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, inf *Infra) {

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	ledger := loyalty.NewLedger()
	notifier := notification.New(db)
	resolver := ucAppointment.NewBarberResolver(appointmentRepo, cfg.BarberEmailDomain)

	policy := domain.WorkingHoursPolicy{
		StartHour:   cfg.WorkStartHour,
		EndHour:     cfg.WorkEndHour,
		Days:        cfg.WorkDays,
		SlotMinutes: cfg.SlotMinutes,
	}

	// ======================================================
	// APPOINTMENT USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, inf.Clock, policy)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		inf.Clock,
		ledger,
		inf.Locker,
		cfg.SlotLockTTL,
		notifier,
		inf.Audit,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		resolver,
		inf.Clock,
		ledger,
		inf.Audit,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, resolver, inf.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, resolver)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	// ======================================================
	// BARBER USE CASES
	// ======================================================
	listBarbersUC := ucBarber.NewListBarbers(db, cfg.BarberEmailDomain)
	createBarberUC := ucBarber.NewCreateBarber(db, inf.Audit)
	uploadImageUC := ucBarber.NewUploadBarberImage(db, inf.Images, inf.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, inf.Audit)
	meHandler := handlers.NewMeHandler()

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
	)

	barberHandler := handlers.NewBarberHandler(listBarbersUC, createBarberUC, uploadImageUC)
	notificationHandler := handlers.NewNotificationHandler(notifier)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/barberos/available", barberHandler.Available)
		api.GET("/appointments/slots/available", appointmentHandler.AvailableSlots)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(cfg, db))
		{
			secured.GET("/user", meHandler.GetMe)
			secured.GET("/points", meHandler.Points)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Show)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/notifications/user", notificationHandler.Mine)
			secured.PUT("/notifications/user/:id/read", notificationHandler.MarkMineRead)

			staff := secured.Group("/notifications")
			staff.Use(middleware.RequireStaff(cfg.BarberEmailDomain))
			{
				staff.GET("", notificationHandler.List)
				staff.GET("/unread", notificationHandler.Unread)
				staff.POST("/mark-read", notificationHandler.MarkRead)
				staff.POST("/mark-all-read", notificationHandler.MarkAllRead)
			}

			admin := secured.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/barberos", barberHandler.Create)
				admin.POST("/barberos/:id/image", barberHandler.UploadImage)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
