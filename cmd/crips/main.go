package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authentity "github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/entity"
	authhandler "github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/handler"
	authrepo "github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/repository"
	authsvc "github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/config"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/middleware"
	notifyentity "github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/entity"
	notifyhandler "github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/handler"
	notifyrepo "github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/repository"
	notifysvc "github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/service"
	opsentity "github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	opshandler "github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/handler"
	opsrepo "github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/repository"
	opssvc "github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	salesentity "github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/entity"
	saleshandler "github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/handler"
	salesrepo "github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/repository"
	salessvc "github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/shared/mailer"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/shared/stream"
	supportentity "github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/entity"
	supporthandler "github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/handler"
	supportrepo "github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/repository"
	supportsvc "github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting crips-backoffice service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&supportentity.SupportTicket{},
		&supportentity.TicketReply{},
		&supportentity.FAQ{},
		&supportentity.Review{},
		&salesentity.Order{},
		&salesentity.OrderItem{},
		&salesentity.OrderStatusHistory{},
		&salesentity.Coupon{},
		&salesentity.Visit{},
		&opsentity.Plant{},
		&opsentity.Stock{},
		&opsentity.Supplier{},
		&opsentity.OrderStock{},
		&opsentity.Shipment{},
		&opsentity.GrowerTask{},
		&opsentity.EnvironmentalReading{},
		&authentity.User{},
		&authentity.StaffApplication{},
		&notifyentity.Notification{},
	); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			zapLogger.Warn("MinIO unavailable, photo upload disabled", zap.Error(err))
			minioClient = nil
		}
	}

	smtp, err := mailer.New(cfg.SMTP, cfg.Notify.SendTimeout)
	if err != nil {
		zapLogger.Fatal("Failed to init mail client", zap.Error(err))
	}

	var producer *stream.Producer
	if cfg.Kafka.Enabled {
		producer, err = stream.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, zapLogger)
		if err != nil {
			zapLogger.Warn("Kafka unavailable, status events disabled", zap.Error(err))
			producer = nil
		}
	}

	// Repositories
	supportRepos := supportrepo.NewRepositories(db)
	salesRepos := salesrepo.NewRepositories(db)
	opsRepos := opsrepo.NewRepositories(db)
	authRepos := authrepo.NewRepositories(db)
	notificationRepo := notifyrepo.NewNotificationRepository(db)

	// Services
	notificationSvc := notifysvc.NewNotificationService(notificationRepo, smtp, notifysvc.Options{
		PollInterval: cfg.Notify.PollInterval,
		SendTimeout:  cfg.Notify.SendTimeout,
		MaxAttempts:  cfg.Notify.MaxAttempts,
		RetryBackoff: cfg.Notify.RetryBackoff,
	}, zapLogger)

	ticketSvc := supportsvc.NewTicketService(supportRepos.Ticket)
	faqSvc := supportsvc.NewFAQService(supportRepos.FAQ)
	reviewSvc := supportsvc.NewReviewService(supportRepos.Review, minioClient, cfg.MinIO.Bucket)

	orderSvc := salessvc.NewOrderService(salesRepos.Order, salesRepos.Coupon)
	orderSvc.SetNotifier(notificationSvc)
	if producer != nil {
		orderSvc.SetEventPublisher(producer)
	}
	couponSvc := salessvc.NewCouponService(salesRepos.Coupon)
	visitorSvc := salessvc.NewVisitorService(salesRepos.Visitor)
	dashboardSvc := salessvc.NewDashboardService(salesRepos.Order, salesRepos.Visitor, rdb, time.Minute, zapLogger)

	plantSvc := opssvc.NewPlantService(opsRepos.Plant)
	inventorySvc := opssvc.NewInventoryService(opsRepos.Stock, opsRepos.Supplier, opsRepos.OrderStock)
	shipmentSvc := opssvc.NewShipmentService(opsRepos.Shipment)
	transportSvc := opssvc.NewTransportService()
	taskSvc := opssvc.NewTaskService(opsRepos.Task)
	readingSvc := opssvc.NewReadingService(opsRepos.Reading)

	authSvc := authsvc.NewAuthService(authRepos.User, rdb, cfg)
	applicationSvc := authsvc.NewApplicationService(authRepos.Application, authRepos.User)
	applicationSvc.SetNotifier(notificationSvc)

	// Handlers
	supportHandlers := supporthandler.NewHandlers(ticketSvc, faqSvc, reviewSvc)
	salesHandlers := saleshandler.NewHandlers(orderSvc, couponSvc, visitorSvc, dashboardSvc)
	opsHandlers := opshandler.NewHandlers(plantSvc, inventorySvc, shipmentSvc, transportSvc, taskSvc, readingSvc)
	authHandlers := authhandler.NewHandlers(authSvc, applicationSvc)
	notificationHandler := notifyhandler.NewNotificationHandler(notificationSvc)

	// Outbox dispatcher
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	go notificationSvc.Run(dispatcherCtx)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, cfg, supportHandlers, salesHandlers, opsHandlers, authHandlers, notificationHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")
	stopDispatcher()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			zapLogger.Error("Failed to close event producer", zap.Error(err))
		}
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	supportH *supporthandler.Handlers,
	salesH *saleshandler.Handlers,
	opsH *opshandler.Handlers,
	authH *authhandler.Handlers,
	notificationH *notifyhandler.NotificationHandler,
) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		// Storefront surface, no login required.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authH.Auth.Login)
			auth.POST("/refresh", authH.Auth.Refresh)
			auth.POST("/logout", authH.Auth.Logout)
		}

		support := v1.Group("/support")
		{
			support.POST("", supportH.Ticket.CreateTicket)
			support.GET("", supportH.Ticket.ListTickets)
			support.GET("/:id", supportH.Ticket.GetTicket)
			support.PUT("/:id/reply", supportH.Ticket.AppendReply)
		}

		v1.GET("/faqs", supportH.FAQ.ListFAQs)

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", supportH.Review.ListReviews)
			reviews.GET("/:id", supportH.Review.GetReview)
			reviews.POST("", supportH.Review.CreateReview)
			reviews.POST("/:id/photo", supportH.Review.UploadPhoto)
		}

		v1.POST("/orders", salesH.Order.CreateOrder)
		v1.POST("/visitors", salesH.Visitor.RecordVisit)
		v1.POST("/applications", authH.Application.Apply)

		// Back-office surface, token plus role.
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", authH.Auth.Me)

			csm := authorized.Group("")
			csm.Use(middleware.RequireRole("csm"))
			{
				csm.PUT("/support/:id/status", supportH.Ticket.SetStatus)
				csm.DELETE("/support/:id", supportH.Ticket.DeleteTicket)
				csm.GET("/dashboard/tickets", supportH.Ticket.GetStats)

				csm.POST("/faqs", supportH.FAQ.CreateFAQ)
				csm.PUT("/faqs/:id", supportH.FAQ.UpdateFAQ)
				csm.DELETE("/faqs/:id", supportH.FAQ.DeleteFAQ)

				csm.PUT("/reviews/:id", supportH.Review.UpdateReview)
				csm.DELETE("/reviews/:id", supportH.Review.DeleteReview)
			}

			sales := authorized.Group("")
			sales.Use(middleware.RequireRole("sales_manager"))
			{
				sales.GET("/orders", salesH.Order.ListOrders)
				sales.GET("/orders/:id", salesH.Order.GetOrder)
				sales.POST("/orders/:id/status", salesH.Order.UpdateStatus)
				sales.GET("/orders/:id/history", salesH.Order.GetHistory)
				sales.DELETE("/orders/:id", salesH.Order.DeleteOrder)

				sales.POST("/coupons", salesH.Coupon.CreateCoupon)
				sales.GET("/coupons", salesH.Coupon.ListCoupons)
				sales.GET("/coupons/:id", salesH.Coupon.GetCoupon)
				sales.PUT("/coupons/:id", salesH.Coupon.UpdateCoupon)
				sales.DELETE("/coupons/:id", salesH.Coupon.DeleteCoupon)

				sales.GET("/dashboard/sales", salesH.Dashboard.GetSummary)
				sales.GET("/dashboard/orders", salesH.Dashboard.GetOrderCounts)
				sales.GET("/dashboard/orders/export", salesH.Dashboard.ExportOrders)
				sales.GET("/dashboard/visitors", salesH.Visitor.GetVisitStats)
			}

			inventory := authorized.Group("")
			inventory.Use(middleware.RequireRole("inventory"))
			{
				plants := inventory.Group("/plants")
				{
					plants.POST("", opsH.Plant.CreatePlant)
					plants.GET("", opsH.Plant.ListPlants)
					plants.GET("/:id", opsH.Plant.GetPlant)
					plants.PUT("/:id", opsH.Plant.UpdatePlant)
					plants.DELETE("/:id", opsH.Plant.DeletePlant)
				}

				stock := inventory.Group("/stock")
				{
					stock.POST("", opsH.Inventory.CreateStock)
					stock.GET("", opsH.Inventory.ListStock)
					stock.GET("/:id", opsH.Inventory.GetStock)
					stock.PUT("/:id", opsH.Inventory.UpdateStock)
					stock.DELETE("/:id", opsH.Inventory.DeleteStock)
				}

				suppliers := inventory.Group("/suppliers")
				{
					suppliers.POST("", opsH.Inventory.CreateSupplier)
					suppliers.GET("", opsH.Inventory.ListSuppliers)
					suppliers.GET("/:id", opsH.Inventory.GetSupplier)
					suppliers.PUT("/:id", opsH.Inventory.UpdateSupplier)
					suppliers.DELETE("/:id", opsH.Inventory.DeleteSupplier)
				}

				orderStock := inventory.Group("/order-stock")
				{
					orderStock.POST("", opsH.Inventory.CreateOrderStock)
					orderStock.GET("", opsH.Inventory.ListOrderStock)
					orderStock.GET("/:id", opsH.Inventory.GetOrderStock)
					orderStock.POST("/:id/receive", opsH.Inventory.ReceiveOrderStock)
					orderStock.POST("/:id/cancel", opsH.Inventory.CancelOrderStock)
					orderStock.DELETE("/:id", opsH.Inventory.DeleteOrderStock)
				}
			}

			transport := authorized.Group("")
			transport.Use(middleware.RequireRole("transport"))
			{
				shipments := transport.Group("/shipments")
				{
					shipments.POST("", opsH.Shipment.CreateShipment)
					shipments.GET("", opsH.Shipment.ListShipments)
					shipments.GET("/:id", opsH.Shipment.GetShipment)
					shipments.PUT("/:id", opsH.Shipment.UpdateShipment)
					shipments.POST("/:id/status", opsH.Shipment.UpdateStatus)
					shipments.DELETE("/:id", opsH.Shipment.DeleteShipment)
				}

				transport.POST("/transport/optimize-route", opsH.Transport.OptimizeRoute)
			}

			grower := authorized.Group("")
			grower.Use(middleware.RequireRole("grower"))
			{
				tasks := grower.Group("/tasks")
				{
					tasks.POST("", opsH.Task.CreateTask)
					tasks.GET("", opsH.Task.ListTasks)
					tasks.GET("/:id", opsH.Task.GetTask)
					tasks.PUT("/:id", opsH.Task.UpdateTask)
					tasks.DELETE("/:id", opsH.Task.DeleteTask)
				}

				readings := grower.Group("/readings")
				{
					readings.POST("", opsH.Reading.CreateReading)
					readings.GET("", opsH.Reading.ListReadings)
					readings.GET("/:id", opsH.Reading.GetReading)
					readings.DELETE("/:id", opsH.Reading.DeleteReading)
				}
			}

			admin := authorized.Group("")
			admin.Use(middleware.RequireRole("admin"))
			{
				applications := admin.Group("/applications")
				{
					applications.GET("", authH.Application.ListApplications)
					applications.GET("/:id", authH.Application.GetApplication)
					applications.POST("/:id/approve", authH.Application.ApproveApplication)
					applications.POST("/:id/reject", authH.Application.RejectApplication)
					applications.DELETE("/:id", authH.Application.DeleteApplication)
				}

				notifications := admin.Group("/notifications")
				{
					notifications.POST("", notificationH.Enqueue)
					notifications.GET("", notificationH.ListNotifications)
					notifications.GET("/:id", notificationH.GetNotification)
					notifications.GET("/stats", notificationH.GetStats)
				}
			}
		}
	}
}
