package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/billing"
	bookingapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/booking"
	conferenceapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/conference"
	guestapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/guest"
	identityapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/identity"
	reportapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/report"
	restaurantapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/restaurant"
	roomapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/room"
	staffapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/staff"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/auth"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/config"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/logger"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/printing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/handler"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting hotel backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	guestRepo := persistence.NewGormGuestRepository(db.DB)
	roomRepo := persistence.NewGormRoomRepository(db.DB)
	roomTypeRepo := persistence.NewGormRoomTypeRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	bookingPaymentRepo := persistence.NewGormBookingPaymentRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	menuCategoryRepo := persistence.NewGormMenuCategoryRepository(db.DB)
	menuItemRepo := persistence.NewGormMenuItemRepository(db.DB)
	conferenceRoomRepo := persistence.NewGormConferenceRoomRepository(db.DB)
	conferenceBookingRepo := persistence.NewGormConferenceBookingRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	staffRepo := persistence.NewGormStaffRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	taxRateRepo := persistence.NewGormTaxRateRepository(db.DB)
	discountRepo := persistence.NewGormDiscountRepository(db.DB)
	revenueRepo := persistence.NewGormRevenueRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, identityapp.DefaultAuthServiceConfig(), log)
	userService := identityapp.NewUserService(userRepo, log)
	guestService := guestapp.NewGuestService(guestRepo, log)
	roomService := roomapp.NewRoomService(roomRepo, roomTypeRepo, log)
	bookingService := bookingapp.NewBookingService(bookingRepo, bookingPaymentRepo, guestRepo, roomRepo, log)
	restaurantService := restaurantapp.NewRestaurantService(orderRepo, menuCategoryRepo, menuItemRepo, guestRepo, roomRepo, log)
	conferenceService := conferenceapp.NewConferenceService(conferenceRoomRepo, conferenceBookingRepo, log)
	staffService := staffapp.NewStaffService(departmentRepo, staffRepo, userRepo, log)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, paymentRepo, bookingRepo, bookingPaymentRepo, conferenceBookingRepo, guestRepo, log)
	settlementService := billingapp.NewSettlementService(invoiceRepo, bookingRepo, bookingPaymentRepo, guestRepo, orderRepo, log)
	ratesService := billingapp.NewRatesService(taxRateRepo, discountRepo, log)
	revenueService := reportapp.NewRevenueService(revenueRepo)

	// Invoice PDF rendering
	var invoicePrinter *printing.InvoicePrinter
	if cfg.Printing.Enabled {
		renderer := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			ExecPath:      cfg.Printing.ChromePath,
			RenderTimeout: cfg.Printing.RenderTimeout,
			Logger:        log,
		})
		defer func() {
			if err := renderer.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}()
		invoicePrinter = printing.NewInvoicePrinter(renderer, cfg.Printing, log)
		log.Info("Invoice PDF rendering enabled")
	}

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	guestHandler := handler.NewGuestHandler(guestService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	conferenceHandler := handler.NewConferenceHandler(conferenceService)
	staffHandler := handler.NewStaffHandler(staffService)
	billingHandler := handler.NewBillingHandler(invoiceService, settlementService, invoicePrinter)
	billingHandler.SetRatesService(ratesService)
	reportHandler := handler.NewReportHandler(revenueService)
	systemHandler := handler.NewSystemHandler(db.DB)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.DefaultJWTConfig(jwtService)))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler)
	r.Register(authHandler)
	r.Register(userHandler)
	r.Register(guestHandler)
	r.Register(roomHandler)
	r.Register(bookingHandler)
	r.Register(restaurantHandler)
	r.Register(conferenceHandler)
	r.Register(staffHandler)
	r.Register(billingHandler)
	r.Register(reportHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
