package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/piyushrajyadav/Nexusaloon/internal/audit"
	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	"github.com/piyushrajyadav/Nexusaloon/internal/handlers"
	infraCache "github.com/piyushrajyadav/Nexusaloon/internal/infra/cache"
	infraRepo "github.com/piyushrajyadav/Nexusaloon/internal/infra/repository"
	"github.com/piyushrajyadav/Nexusaloon/internal/infra/storage"
	"github.com/piyushrajyadav/Nexusaloon/internal/middleware"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/notify"
	ucBooking "github.com/piyushrajyadav/Nexusaloon/internal/usecase/booking"
	ucInvoice "github.com/piyushrajyadav/Nexusaloon/internal/usecase/invoice"
	"github.com/piyushrajyadav/Nexusaloon/internal/usecase/staffassign"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	invoiceRepo := infraRepo.NewInvoiceGormRepository(db)

	auditLogger := audit.New(db)
	dispatcher := notify.NewDispatcher()

	var availabilityCache ucBooking.AvailabilityCache
	if cfg.RedisAddr != "" {
		availabilityCache = infraCache.NewAvailabilityCache(cfg.RedisAddr)
	}

	var imageStore *storage.ImageStore
	if cfg.S3Bucket != "" {
		imageStore = storage.NewImageStore(cfg)
	}

	resolver := staffassign.NewResolver(bookingRepo)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		resolver,
		availabilityCache,
		cfg,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		resolver,
		availabilityCache,
		dispatcher,
		auditLogger,
		cfg,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		availabilityCache,
		dispatcher,
		auditLogger,
		cfg,
	)

	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		availabilityCache,
		auditLogger,
		cfg,
	)

	listMyBookingsUC := ucBooking.NewListMyBookings(bookingRepo)
	staffDaySheetUC := ucBooking.NewGetStaffDaySheet(bookingRepo, cfg)

	// ======================================================
	// USE CASES — INVOICES
	// ======================================================
	generateInvoiceUC := ucInvoice.NewGenerateInvoice(invoiceRepo, auditLogger, cfg)
	updateInvoiceStatusUC := ucInvoice.NewUpdateInvoiceStatus(invoiceRepo, auditLogger, cfg)
	listInvoicesUC := ucInvoice.NewListInvoices(invoiceRepo)
	salesReportUC := ucInvoice.NewSalesReport(invoiceRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		createBookingUC,
		cancelBookingUC,
		listMyBookingsUC,
		cfg,
	)

	staffHandler := handlers.NewStaffHandler(staffDaySheetUC, cfg)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		bookingRepo,
		updateBookingStatusUC,
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		generateInvoiceUC,
		updateInvoiceStatusUC,
		listInvoicesUC,
		salesReportUC,
		cfg,
	)

	uploadHandler := handlers.NewUploadHandler(imageStore)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG + AVAILABILITY
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/staff", catalogHandler.ListStaff)
		api.GET("/availability", bookingHandler.Availability)

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.POST("/bookings", bookingHandler.Create)
			me.GET("/bookings", bookingHandler.ListMine)
			me.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		staff := api.Group("/staff")
		staff.Use(middleware.AuthMiddleware(cfg))
		staff.Use(middleware.RequireRoles(models.RoleStaff, models.RoleAdmin))
		{
			staff.GET("/appointments", staffHandler.DaySheet)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("/services", catalogHandler.CreateService)
			admin.POST("/staff", catalogHandler.CreateStaff)
			admin.POST("/uploads/service-image", uploadHandler.ServiceImage)

			admin.GET("/bookings", adminBookingHandler.List)

			admin.POST("/bookings/:id/invoice", invoiceHandler.Generate)
			admin.GET("/invoices", invoiceHandler.List)
			admin.PATCH("/invoices/:id/status", invoiceHandler.UpdateStatus)
			admin.GET("/reports/sales", invoiceHandler.SalesReport)
		}

		// booking status transitions are shared between admins and staff
		ops := api.Group("/admin/bookings")
		ops.Use(middleware.AuthMiddleware(cfg))
		ops.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
		{
			ops.PATCH("/:id/status", adminBookingHandler.UpdateStatus)
		}
	}
}
