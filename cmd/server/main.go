package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"diaa-designs-backend/internal/admin"
	"diaa-designs-backend/internal/attachments"
	"diaa-designs-backend/internal/config"
	"diaa-designs-backend/internal/database"
	"diaa-designs-backend/internal/handlers"
	"diaa-designs-backend/internal/intake"
	"diaa-designs-backend/internal/middleware"
	"diaa-designs-backend/internal/notify"
	"diaa-designs-backend/internal/repository"
	"diaa-designs-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Direct PostgreSQL connection: repositories, migrations, notifications.
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db).Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Shared Supabase gateway handle.
	gateway, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	if err := gateway.Ping(); err != nil {
		log.Printf("Warning: Supabase REST endpoint not reachable yet: %v", err)
	}

	cvStorage, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.CVBucket)
	if err != nil {
		log.Fatalf("Failed to initialize CV storage client: %v", err)
	}
	logoStorage, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.LogoBucket)
	if err != nil {
		log.Fatalf("Failed to initialize logo storage client: %v", err)
	}

	// Push channels, one per order collection.
	cvListener := supabase.NewInsertListener(cfg.DatabaseURL, "cv_orders_inserts")
	logoListener := supabase.NewInsertListener(cfg.DatabaseURL, "logo_orders_inserts")

	cvRepo := repository.NewCVOrders(db, cvListener)
	logoRepo := repository.NewLogoOrders(db, logoListener)

	attachmentService := attachments.NewService(cvStorage, logoStorage)
	notificationStore := notify.NewStore(db, cfg.AdminEmail)
	intakeService := intake.NewService(cvRepo, logoRepo, attachmentService, notificationStore, cfg.SubmitTimeout)

	dashboard := admin.NewDashboard(cvRepo, logoRepo)
	cvListener.OnStatusChange(dashboard.SetLive)
	logoListener.OnStatusChange(dashboard.SetLive)

	if err := cvListener.Start(); err != nil {
		log.Fatalf("Failed to start cv_orders push channel: %v", err)
	}
	defer cvListener.Close()
	if err := logoListener.Start(); err != nil {
		log.Fatalf("Failed to start logo_orders push channel: %v", err)
	}
	defer logoListener.Close()

	// Subscribe before the initial fetch: an insert landing mid-fetch arrives
	// through the push channel and survives Load's merge.
	dashboard.Start()
	defer dashboard.Stop()

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := dashboard.Load(loadCtx); err != nil {
		log.Fatalf("Failed to load dashboard state: %v", err)
	}

	authenticator := admin.NewAuthenticator(cfg)

	healthHandler := handlers.NewHealthHandler(gateway)
	ordersHandler := handlers.NewOrdersHandler(intakeService)
	adminHandler := handlers.NewAdminHandler(authenticator, dashboard)
	filesHandler := handlers.NewFilesHandler(dashboard, attachmentService)
	streamHandler := handlers.NewStreamHandler(dashboard)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api/v1")

	// Public order intake.
	api.POST("/orders/cv", ordersHandler.SubmitCV)
	api.POST("/orders/logo", ordersHandler.SubmitLogo)

	// Admin surface behind the session-token gate.
	api.POST("/admin/login", adminHandler.Login)

	authed := api.Group("/admin")
	authed.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
	authed.GET("/orders/cv", adminHandler.ListCVOrders)
	authed.GET("/orders/logo", adminHandler.ListLogoOrders)
	authed.GET("/stats", adminHandler.Stats)
	authed.PATCH("/orders/cv/:id/status", adminHandler.UpdateCVStatus)
	authed.PATCH("/orders/logo/:id/status", adminHandler.UpdateLogoStatus)
	authed.DELETE("/orders/cv/:id", adminHandler.DeleteCVOrder)
	authed.DELETE("/orders/logo/:id", adminHandler.DeleteLogoOrder)
	authed.GET("/orders/cv/:id/attachment", filesHandler.DownloadCVAttachment)
	authed.GET("/orders/logo/:id/attachment", filesHandler.DownloadLogoAttachment)
	authed.GET("/stream", streamHandler.Stream)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
