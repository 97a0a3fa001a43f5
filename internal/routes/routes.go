package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/config"
	"github.com/nareguabarber/naregua-api/internal/events"
	"github.com/nareguabarber/naregua-api/internal/handlers"
	infraRepo "github.com/nareguabarber/naregua-api/internal/infra/repository"
	"github.com/nareguabarber/naregua-api/internal/media"
	"github.com/nareguabarber/naregua-api/internal/middleware"
	ucBooking "github.com/nareguabarber/naregua-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	redisClient *redis.Client,
) *events.Dispatcher {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	loyaltyRepo := infraRepo.NewLoyaltyGormRepository(db)

	dispatcher := events.NewDispatcher(
		log,
		events.NewLogSink(log),
		events.NewStoreSink(db),
		events.NewRedisSink(redisClient),
	)

	avatarStore := media.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES — RESERVAS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		loyaltyRepo,
		dispatcher,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		dispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		dispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		dispatcher,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	billingSummaryUC := ucBooking.NewGetBillingSummary(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db, avatarStore, loyaltyRepo)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	shopHandler := handlers.NewShopHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	eventLogHandler := handlers.NewEventLogHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		listByDateUC,
		listByMonthUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
	)

	billingHandler := handlers.NewBillingHandler(billingSummaryUC)

	publicHandler := handlers.NewPublicHandler(
		db,
		bookingRepo,
		loyaltyRepo,
		createBookingUC,
		availabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/storefront", publicHandler.Storefront)
			publicAPI.GET("/services/:id/barbers", publicHandler.BarbersForService)
			publicAPI.GET("/calendar", publicHandler.Calendar)
			publicAPI.GET("/availability", publicHandler.Availability)

			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/my-appointments", publicHandler.MyAppointments)

			publicAPI.GET("/loyalty", publicHandler.LoyaltyProfile)
			publicAPI.PATCH("/loyalty", publicHandler.UpdateLoyaltyProfile)
			publicAPI.POST("/loyalty/avatar", profileHandler.UploadClientAvatar)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (barbeiro)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", profileHandler.Me)
			secured.PUT("/me/avatar", profileHandler.UploadAvatar)
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			secured.GET("/me/billing", billingHandler.Summary)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/barbers", barberHandler.List)
				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Deactivate)

				admin.GET("/shops", shopHandler.List)
				admin.POST("/shops", shopHandler.Create)
				admin.PATCH("/shops/:id", shopHandler.Update)

				admin.GET("/schedule-config", scheduleHandler.Get)
				admin.PATCH("/schedule-config", scheduleHandler.Update)

				admin.GET("/events", eventLogHandler.List)
			}
		}
	}

	return dispatcher
}
