package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/clock"
	"github.com/BruksfildServices01/agenda-api/internal/config"
	"github.com/BruksfildServices01/agenda-api/internal/handlers"
	infraCache "github.com/BruksfildServices01/agenda-api/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/jobs"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/storage"
	ucBooking "github.com/BruksfildServices01/agenda-api/internal/usecase/booking"
	ucNotification "github.com/BruksfildServices01/agenda-api/internal/usecase/notification"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	jobPort jobs.Port,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	cachedUsers := infraCache.NewCachedUserReader(userRepo, rdb, log)

	clk := clock.NewSystemClock(cfg.Timezone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	avatarStore := storage.NewAvatarStore(cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	emitter := ucNotification.NewEmitter(notificationRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		userRepo,
		emitter,
		clk,
		auditDispatcher,
		log,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		jobPort,
		clk,
		auditDispatcher,
		log,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo, clk)

	listNotificationsUC := ucNotification.NewListRecent(notificationRepo, userRepo)
	markReadUC := ucNotification.NewMarkRead(notificationRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, avatarStore)
	providerHandler := handlers.NewProviderHandler(cachedUsers)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		listBookingsUC,
	)

	notificationHandler := handlers.NewNotificationHandler(
		listNotificationsUC,
		markReadUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authLimiter := middleware.NewRateLimiter(5, 10)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/providers", providerHandler.List)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/avatar", meHandler.UpdateAvatar)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.List)
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
