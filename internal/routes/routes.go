package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/booking"
	"github.com/BruksfildServices01/barber-booking-web/internal/config"
	domain "github.com/BruksfildServices01/barber-booking-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking-web/internal/handlers"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/media"
	"github.com/BruksfildServices01/barber-booking-web/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/search"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
	ucAppointment "github.com/BruksfildServices01/barber-booking-web/internal/usecase/appointment"
)

// Deps são os singletons montados no main. AuditLogs, Mirror e Charger podem ser nil.
type Deps struct {
	Config   *config.Config
	Logger   *logging.Logger
	Registry *prometheus.Registry

	API      *apiclient.Client
	Sessions *session.Manager
	Store    session.Store

	Audit     *audit.Dispatcher
	AuditLogs *audit.Logger
	Mirror    *media.Mirror
	Charger   booking.Charger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))
	if d.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(d.Registry).Handler())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	authLimiter := middleware.NewRateLimiter(d.Config.LoginRatePerSec, d.Config.LoginBurst)
	debouncer := search.NewDebouncer(d.Config.SearchDebounce)
	booker := booking.NewBooker(d.API, d.Charger, d.Logger)

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	listAppointmentsUC := ucAppointment.NewListAppointments(d.API)
	changeStatusUC := ucAppointment.NewChangeStatus(d.API, d.Audit, d.Logger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.API, d.Sessions, d.Store, d.Audit, d.Logger)
	profileHandler := handlers.NewProfileHandler(d.API, d.Sessions, d.Mirror, d.Audit, d.Logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Logger)

	customerHandler := handlers.NewCustomerHandler(d.API, booker, debouncer, d.Store, d.Audit, d.Logger)
	barberHandler := handlers.NewBarberHandler(d.API, d.Mirror, d.Audit, d.Logger)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.API, d.Audit, d.Logger)

	customerAppointments := handlers.NewAppointmentHandler(
		domain.ViewCustomer, d.Store, listAppointmentsUC, changeStatusUC, d.Logger,
	)
	barberAppointments := handlers.NewAppointmentHandler(
		domain.ViewBarber, d.Store, listAppointmentsUC, changeStatusUC, d.Logger,
	)

	// ======================================================
	// 🔓 AUTH (PÚBLICO)
	// ======================================================
	r.GET("/session", authHandler.Session)
	r.POST("/logout", authHandler.Logout)

	limited := r.Group("/", middleware.RateLimit(authLimiter))
	{
		limited.POST("/login", authHandler.Login)
		limited.POST("/register", authHandler.Register)
		limited.POST("/forgot-password", authHandler.ForgotPassword)
		limited.POST("/reset-password/:uid/:token", authHandler.ResetPassword)
	}

	// ======================================================
	// 👤 CLIENTE
	// ======================================================
	customers := r.Group(middleware.CustomerHomePath,
		middleware.RequireProfile(d.Sessions, models.ProfileCustomer, d.Logger))
	{
		customers.GET("", customerHandler.Home)
		customers.GET("/barbers", customerHandler.SearchBarbers)

		customers.GET("/booking", customerHandler.GetBooking)
		customers.DELETE("/booking", customerHandler.ResetBooking)
		customers.POST("/booking/barber", customerHandler.SelectBarber)
		customers.POST("/booking/service", customerHandler.SelectService)
		customers.POST("/booking/day", customerHandler.SelectDay)
		customers.POST("/booking/slot", customerHandler.SelectSlot)
		customers.POST("/booking/submit", customerHandler.Submit)

		customers.POST("/ratings", customerHandler.Rate)

		registerAppointments(customers, customerAppointments)

		customers.GET("/profile", profileHandler.Get)
		customers.PATCH("/profile", profileHandler.Update)
		customers.GET("/activity", auditLogsHandler.List)
	}

	// ======================================================
	// ✂️ BARBEIRO
	// ======================================================
	barbers := r.Group(middleware.BarberHomePath,
		middleware.RequireProfile(d.Sessions, models.ProfileBarber, d.Logger))
	{
		barbers.GET("", barberHandler.Dashboard)

		barbers.GET("/services", barberHandler.ListServices)
		barbers.GET("/services/:id", barberHandler.GetService)
		barbers.POST("/services", barberHandler.CreateService)
		barbers.PUT("/services/:id", barberHandler.UpdateService)
		barbers.DELETE("/services/:id", barberHandler.DeleteService)

		barbers.GET("/work_days", workingHoursHandler.ListDays)
		barbers.GET("/work_days/:id", workingHoursHandler.GetDay)
		barbers.POST("/work_days", workingHoursHandler.CreateDay)
		barbers.PUT("/work_days/:id", workingHoursHandler.UpdateDay)
		barbers.DELETE("/work_days/:id", workingHoursHandler.DeleteDay)
		barbers.POST("/work_days/:id/reactivate", workingHoursHandler.ReactivateSlots)
		barbers.DELETE("/work_days/:id/slots", workingHoursHandler.DeactivateSlots)

		barbers.GET("/times/:id", workingHoursHandler.ListSlots)
		barbers.DELETE("/times/:id/slots/:slotId", workingHoursHandler.DeleteSlot)

		registerAppointments(barbers, barberAppointments)

		barbers.GET("/profile", profileHandler.Get)
		barbers.PATCH("/profile", profileHandler.Update)
		barbers.GET("/activity", auditLogsHandler.List)
	}
}

func registerAppointments(g *gin.RouterGroup, h *handlers.AppointmentHandler) {
	g.GET("/appointments", h.List)
	g.PATCH("/appointments/filters", h.StageFilters)
	g.POST("/appointments/filters/apply", h.ApplyFilters)
	g.POST("/appointments/filters/clear", h.ClearFilters)
	g.POST("/appointments/:id/:action", h.ChangeStatus)
}
