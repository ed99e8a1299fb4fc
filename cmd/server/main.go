package main

import (
	"log"
	"time"

	"go-event-management/config"
	"go-event-management/internal/database"
	"go-event-management/internal/handler"
	"go-event-management/internal/middleware"
	"go-event-management/internal/realtime"
	"go-event-management/internal/repository"
	"go-event-management/internal/service"
	"go-event-management/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.LoadConfig()
	defer logger.L.Sync()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repository
	userRepo := repository.NewUserRepository(pool)
	venueRepo := repository.NewVenueRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	guestRepo := repository.NewGuestRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	supportRepo := repository.NewSupportRepository(pool)
	faqRepo := repository.NewFAQRepository(pool)
	guideRepo := repository.NewGuideRepository(pool)
	businessRepo := repository.NewBusinessRepository(pool)

	// 連線註冊表由這裡建立並注入，不使用套件層級狀態
	hub := realtime.NewHub()

	// Service
	authService := service.NewAuthService(userRepo, cfg.Auth)
	venueService := service.NewVenueService(venueRepo)
	eventService := service.NewEventService(eventRepo, venueRepo)
	bookingService := service.NewBookingService(bookingRepo, paymentRepo, eventRepo, hub)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo)
	guestService := service.NewGuestService(guestRepo, eventRepo)
	chatService := service.NewChatService(messageRepo, hub)
	supportService := service.NewSupportService(supportRepo)
	faqService := service.NewFAQService(faqRepo)
	guideService := service.NewGuideService(guideRepo)
	businessService := service.NewBusinessService(businessRepo)

	router := gin.Default()
	router.Use(middleware.Metrics())

	auth := middleware.Auth(cfg.Auth.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.Auth.JWTSecret)
	loginLimiter := middleware.RateLimit(rdb, "login", 5, time.Minute,
		"Too many login attempts, please try again after a minute.")

	handler.NewAuthHandler(authService).RegisterRoutes(router, auth, loginLimiter)
	handler.NewVenueHandler(venueService).RegisterRoutes(router, auth)
	handler.NewEventHandler(eventService).RegisterRoutes(router, auth)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router, auth)
	handler.NewPaymentHandler(paymentService).RegisterRoutes(router, auth)
	handler.NewGuestHandler(guestService).RegisterRoutes(router, auth)
	handler.NewChatHandler(chatService).RegisterRoutes(router, auth)
	handler.NewSupportHandler(supportService).RegisterRoutes(router, auth, optionalAuth)
	handler.NewFAQHandler(faqService).RegisterRoutes(router, auth)
	handler.NewGuideHandler(guideService).RegisterRoutes(router, auth)
	handler.NewBusinessHandler(businessService).RegisterRoutes(router, auth)

	router.GET("/ws", hub.HandleWS)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
