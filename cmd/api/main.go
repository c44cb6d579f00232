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

	"yudhaprm/skillorbit/internal/config"
	"yudhaprm/skillorbit/internal/handlers"
	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/repositories"
	"yudhaprm/skillorbit/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is required")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	prefRepo := repositories.NewPreferenceRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	openRouter := services.NewOpenRouterService(cfg.OpenRouter.APIKey, cfg.OpenRouter.Model)
	if !openRouter.Configured() {
		log.Println("⚠️  OpenRouter fallback not configured")
	}

	// Initialize Qdrant guide store
	guideStore, err := services.NewGuideStore(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := guideStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize domain services
	evaluatorService := services.NewEvaluatorService(
		questionRepo,
		answerRepo,
		geminiService,
		openRouter,
		cfg.Worker.RetryMaxAttempts,
	)
	mentorService := services.NewMentorService(
		geminiService,
		openRouter,
		guideStore,
		resumeRepo,
		cfg.Worker.RetryMaxAttempts,
	)
	insightService := services.NewInsightService(geminiService, openRouter, cfg.Worker.RetryMaxAttempts)
	galaxyService := services.NewGalaxyService(sessionRepo)
	analyticsService := services.NewAnalyticsService(sessionRepo)
	log.Println("✅ Domain services initialized")

	// Initialize worker
	worker := services.NewWorker(
		answerRepo,
		evaluatorService,
		cfg.Worker.Concurrency,
		cfg.Worker.SweepInterval,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)

	// Initialize handlers
	evaluateHandler := handlers.NewEvaluateHandler(evaluatorService)
	mentorHandler := handlers.NewMentorHandler(mentorService)
	insightHandler := handlers.NewInsightHandler(insightService)
	galaxyHandler := handlers.NewGalaxyHandler(galaxyService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	sessionHandler := handlers.NewSessionHandler(sessionRepo, answerRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo)
	preferenceHandler := handlers.NewPreferenceHandler(prefRepo)
	uploadHandler := handlers.NewUploadHandler(
		resumeRepo,
		storageService,
		pdfParser,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SkillOrbit API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// AI function endpoints: open to anonymous callers, tighter rate limit
	functions := api.Group("/functions",
		middleware.RateLimiter(10, 1*time.Minute),
		middleware.OptionalAuth(cfg.Auth.JWTSecret),
	)
	functions.Post("/analyze-interview-answers", evaluateHandler.HandleEvaluate)
	functions.Post("/generate-mentor-response", mentorHandler.HandleMentorResponse)
	functions.Post("/generate-skill-insight", insightHandler.HandleSkillInsight)

	// Dashboard data routes: authenticated
	dashboard := api.Group("/",
		middleware.RateLimiter(50, 1*time.Minute),
		middleware.RequireAuth(cfg.Auth.JWTSecret),
	)
	dashboard.Get("/galaxy", galaxyHandler.HandleGetGalaxy)
	dashboard.Get("/analytics/categories", analyticsHandler.HandleCategoryAverages)
	dashboard.Get("/analytics/timeseries", analyticsHandler.HandleTimeSeries)
	dashboard.Get("/analytics/insights", analyticsHandler.HandleInsights)
	dashboard.Post("/sessions", sessionHandler.HandleStartSession)
	dashboard.Get("/sessions", sessionHandler.HandleListSessions)
	dashboard.Get("/sessions/:id", sessionHandler.HandleGetSession)
	dashboard.Post("/sessions/:id/answers", sessionHandler.HandleSubmitAnswer)
	dashboard.Post("/sessions/:id/complete", sessionHandler.HandleCompleteSession)
	dashboard.Get("/schedule", scheduleHandler.HandleListSchedules)
	dashboard.Post("/schedule", scheduleHandler.HandleCreateSchedule)
	dashboard.Delete("/schedule/:id", scheduleHandler.HandleCancelSchedule)
	dashboard.Get("/preferences", preferenceHandler.HandleGetPreferences)
	dashboard.Put("/preferences", preferenceHandler.HandleSavePreferences)
	dashboard.Post("/resume", uploadHandler.HandleUploadResume)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "SkillOrbit API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/functions/analyze-interview-answers",
				"POST /api/v1/functions/generate-mentor-response",
				"POST /api/v1/functions/generate-skill-insight",
				"GET /api/v1/galaxy",
				"GET /api/v1/analytics/insights",
				"GET /api/v1/sessions",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
