package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	"github.com/BruksfildServices01/barber-queue/internal/handlers"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/queuelock"
	ucBooking "github.com/BruksfildServices01/barber-queue/internal/usecase/booking"
)

// Deps are the process-wide singletons built in cmd/api.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *slog.Logger
	Locker   queuelock.Locker
	Audit    *audit.Dispatcher
	Notifier *notify.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	scheduler := ucBooking.NewScheduler(
		bookingRepo,
		deps.Locker,
		deps.Log,
		ucBooking.WithLockWait(deps.Config.QueueLockWait),
	)

	// ======================================================
	// USE CASES - BOOKINGS
	// ======================================================
	estimateUC := ucBooking.NewEstimateBooking(scheduler)
	createCustomerUC := ucBooking.NewCreateCustomerBooking(scheduler, deps.Audit)
	createWalkInUC := ucBooking.NewCreateWalkInBooking(scheduler, deps.Audit)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, deps.Audit, deps.Notifier, deps.Log)
	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listMineUC := ucBooking.NewListCustomerBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.DB)
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config.JWTSecret, deps.Config.JWTTTL)
	meHandler := handlers.NewMeHandler(deps.DB)

	bookingHandler := handlers.NewBookingHandler(estimateUC, createCustomerUC, listMineUC)
	adminBookingHandler := handlers.NewAdminBookingHandler(createWalkInUC, updateBookingUC, listByDateUC)

	serviceHandler := handlers.NewServiceHandler(deps.DB)
	providerHandler := handlers.NewProviderHandler(deps.DB)
	workingHoursHandler := handlers.NewWorkingHoursHandler(deps.DB, deps.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	auth := middleware.AuthMiddleware(deps.Config.JWTSecret)

	r.GET("/health", healthHandler.Check)

	// ------------------------------
	// AUTH
	// ------------------------------
	r.POST("/auth/register-admin", authHandler.RegisterAdmin)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	me := r.Group("/me", auth)
	{
		me.GET("", meHandler.GetMe)
		me.PUT("/push-token", meHandler.UpdatePushToken)
	}

	// ------------------------------
	// CLIENTE
	// ------------------------------
	r.GET("/services", serviceHandler.ListPublic)
	r.POST("/booking/estimate", bookingHandler.Estimate)

	customer := r.Group("/booking", auth, middleware.RequireRole(models.RoleCustomer))
	{
		customer.POST("/create", bookingHandler.Create)
		customer.GET("/mine", bookingHandler.Mine)
	}

	// ------------------------------
	// ADMIN
	// ------------------------------
	admin := r.Group("/admin",
		httperr.AdminNamespace(),
		auth,
		middleware.RequireRole(models.RoleAdmin),
		middleware.RequireProvider(),
	)
	{
		admin.POST("/bookings/walk-in", adminBookingHandler.WalkIn)
		admin.PATCH("/bookings/:id", adminBookingHandler.Update)
		admin.GET("/bookings", adminBookingHandler.ListByDate)

		admin.GET("/working-hours", workingHoursHandler.Get)
		admin.PUT("/working-hours", workingHoursHandler.Update)

		admin.GET("/services", serviceHandler.List)
		admin.POST("/services", serviceHandler.Create)
		admin.PATCH("/services/:id", serviceHandler.Update)

		admin.GET("/provider", providerHandler.Get)
		admin.PATCH("/provider", providerHandler.Update)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
