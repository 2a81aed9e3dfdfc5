package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sema-licenca/internal/adapters/http/middleware"
	"sema-licenca/internal/adapters/http/routes"
	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/config"
	"sema-licenca/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "sema-licenca/docs" // Swagger docs
)

// @title SEMA Licença API
// @version 2.1.0
// @description Gateway de cadastro de processos de licenciamento ambiental da SEMA
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email suporte@sema.gov.br

// @host licenca.sema.gov.br
// @BasePath /
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database (legacy registry, auth only)
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// PostgREST client for the v1 surface
	rest := postgrest.New(postgrest.Config{
		BaseURL:     cfg.Supabase.RestURL,
		AnonKey:     cfg.Supabase.AnonKey,
		ServiceRole: cfg.Supabase.ServiceRole,
	})

	// Draft-expiry sweep (off unless DRAFT_SWEEP_ENABLED=true)
	sweepService := services.NewSweepService(rest, cfg.DraftSweep)
	if err := sweepService.Start(); err != nil {
		log.Fatalf("❌ Failed to start draft sweep: %v", err)
	}
	defer sweepService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SEMA Licença API v" + config.AppVersion,
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, rest and cfg for dependency injection)
	routes.Setup(app, db, rest, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}
	log.Println("✅ Server exited")
}
