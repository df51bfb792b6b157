package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-reviewer/internal/config"
	"alfredoptarigan/resume-reviewer/internal/handlers"
	"alfredoptarigan/resume-reviewer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	validator := services.NewFileValidator(cfg.Upload.MaxFileSize)
	intake := services.NewFileIntake(cfg.Upload.MaxFileSize)
	client := services.NewAnalysisClient(cfg.Analyzer.BaseURL, cfg.Analyzer.Timeout)
	resumeService := services.NewResumeService(
		validator,
		services.NewRequestBuilder(),
		client,
		services.NewResultPresenter(),
	)
	log.Printf("✅ Analysis service client ready (%s)\n", cfg.Analyzer.BaseURL)

	// Initialize workspaces
	workspaces := services.NewWorkspaceStore(cfg.Workspace.IdleTTL, cfg.Workspace.SweepInterval)
	ctx := context.Background()
	workspaces.Start(ctx)
	log.Println("✅ Workspace store started")

	// Initialize Handlers
	routes := handlers.Handlers{
		Workspace: handlers.NewWorkspaceHandler(
			workspaces,
			intake,
			validator,
			resumeService,
			cfg.Upload.MaxFileSize,
		),
		Analyze:  handlers.NewAnalyzeHandler(intake, resumeService),
		LinkedIn: handlers.NewLinkedInHandler(resumeService),
		Upload:   handlers.NewUploadHandler(intake, resumeService),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app. The body limit leaves room for oversized files to
	// reach the validator and get a readable rejection.
	app := fiber.New(fiber.Config{
		AppName:      "Resume Reviewer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Analyzer.Timeout + 30*time.Second,
		BodyLimit:    int(2 * cfg.Upload.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// The page is served same-origin; CORS is only for local front-end work.
	if cfg.IsDevelopment() {
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,PUT,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept",
		}))
	}

	handlers.RegisterRoutes(app, routes)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		workspaces.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s in a browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
