package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/audit"
	"github.com/GreenvaleServices/landscape-platform/internal/cache"
	"github.com/GreenvaleServices/landscape-platform/internal/config"
	"github.com/GreenvaleServices/landscape-platform/internal/handlers"
	infraRepo "github.com/GreenvaleServices/landscape-platform/internal/infra/repository"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/notify"
	"github.com/GreenvaleServices/landscape-platform/internal/payments"
	"github.com/GreenvaleServices/landscape-platform/internal/storage"
	ucAvailability "github.com/GreenvaleServices/landscape-platform/internal/usecase/availability"
	ucBooking "github.com/GreenvaleServices/landscape-platform/internal/usecase/booking"
	ucCart "github.com/GreenvaleServices/landscape-platform/internal/usecase/cart"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	cartRepo := infraRepo.NewCartGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(notify.NewGormSink(db))

	cartCache := cache.NewRedisCache(rdb)

	store := storage.NewS3Storage(cfg)

	// payments stay nil when no token is configured; bookings work without them
	var preferenceCreator payments.PreferenceCreator
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			log.Println("mercadopago disabled:", err)
		} else {
			preferenceCreator = mp
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
		preferenceCreator,
	)

	setStatusUC := ucBooking.NewSetStatus(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)

	upsertAvailabilityUC := ucAvailability.NewUpsert(bookingRepo)
	removeAvailabilityUC := ucAvailability.NewRemove(bookingRepo)

	cartService := ucCart.NewService(cartRepo, cartCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	landscaperHandler := handlers.NewLandscaperHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(
		upsertAvailabilityUC,
		removeAvailabilityUC,
		bookingRepo,
		cfg,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		setStatusUC,
		listBookingsUC,
		deleteBookingUC,
		cfg,
	)

	cartHandler := handlers.NewCartHandler(cartService)
	itemHandler := handlers.NewItemHandler(db)
	machineryHandler := handlers.NewMachineryHandler(db, cfg)
	progressHandler := handlers.NewProgressHandler(db)
	ratingHandler := handlers.NewRatingHandler(db)
	applicationHandler := handlers.NewApplicationHandler(db, auditDispatcher)
	notificationHandler := handlers.NewNotificationHandler(db)
	uploadHandler := handlers.NewUploadHandler(store)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/landscapers", landscaperHandler.ListPublic)
			publicAPI.GET("/landscapers/:id", landscaperHandler.GetPublic)
			publicAPI.GET("/landscapers/:id/availability", availabilityHandler.ListPublic)
			publicAPI.GET("/landscapers/:id/ratings", ratingHandler.ListForLandscaper)

			publicAPI.GET("/items", itemHandler.List)
			publicAPI.GET("/items/:id", itemHandler.Get)
			publicAPI.GET("/machinery", machineryHandler.List)
			publicAPI.GET("/machinery/:id", machineryHandler.Get)

			publicAPI.POST("/applications", applicationHandler.Create)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/notifications", notificationHandler.ListMine)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			secured.POST("/me/uploads", uploadHandler.Upload)

			// ------------------------------
			// CUSTOMER
			// ------------------------------
			customer := secured.Group("/")
			customer.Use(middleware.RequireRoles(middleware.RoleCustomer))
			{
				customer.POST("/me/bookings", bookingHandler.Create)

				customer.GET("/me/cart", cartHandler.Get)
				customer.POST("/me/cart/items", cartHandler.AddItem)
				customer.PATCH("/me/cart/items/:itemId", cartHandler.SetQuantity)
				customer.DELETE("/me/cart/items/:itemId", cartHandler.RemoveItem)
				customer.DELETE("/me/cart", cartHandler.Clear)
				customer.POST("/me/cart/reprice", cartHandler.Reprice)

				customer.POST("/me/rentals", machineryHandler.CreateRental)
				customer.GET("/me/rentals", machineryHandler.ListMyRentals)

				customer.POST("/me/ratings", ratingHandler.Create)
			}

			// ------------------------------
			// LANDSCAPER
			// ------------------------------
			landscaper := secured.Group("/")
			landscaper.Use(middleware.RequireRoles(middleware.RoleLandscaper))
			{
				landscaper.PATCH("/me/profile", landscaperHandler.UpdateMe)

				landscaper.GET("/me/availability", availabilityHandler.ListMine)
				landscaper.PUT("/me/availability", availabilityHandler.Upsert)
				landscaper.DELETE("/me/availability", availabilityHandler.Remove)

				landscaper.POST("/me/progress", progressHandler.Create)
				landscaper.PATCH("/me/progress/:id", progressHandler.Update)
				landscaper.DELETE("/me/progress/:id", progressHandler.Delete)
			}

			// ------------------------------
			// BOOKINGS (role-aware inside)
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.GET("/me/progress", progressHandler.ListByBooking)

			statusChangers := secured.Group("/")
			statusChangers.Use(middleware.RequireRoles(middleware.RoleLandscaper, middleware.RoleAdmin))
			{
				statusChangers.PATCH("/me/bookings/:id/status", bookingHandler.SetStatus)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRoles(middleware.RoleAdmin))
			{
				admin.POST("/landscapers", landscaperHandler.Create)

				admin.POST("/items", itemHandler.Create)
				admin.PATCH("/items/:id", itemHandler.Update)

				admin.POST("/machinery", machineryHandler.Create)
				admin.PATCH("/machinery/:id", machineryHandler.Update)
				admin.PATCH("/rentals/:id/status", machineryHandler.SetRentalStatus)

				admin.GET("/applications", applicationHandler.List)
				admin.PATCH("/applications/:id/status", applicationHandler.SetStatus)

				admin.DELETE("/ratings/:id", ratingHandler.Delete)

				admin.DELETE("/bookings/:id", bookingHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
