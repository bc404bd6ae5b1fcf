package main

import (
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

	"resumecoach/backend/internal/config"
	"resumecoach/backend/internal/handlers"
	"resumecoach/backend/internal/repositories"
	"resumecoach/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET must be set")
	}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	extractor := services.NewExtractorService()
	tokens := services.NewTokenService(cfg.Auth.JWTSecret)
	scorer := services.NewScoringService(cfg.ML.ServiceURL, cfg.ML.Timeout, cfg.ML.HealthTimeout)
	matcher := services.NewMatchService(scorer, scoreRepo)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authMiddleware := handlers.NewAuthMiddleware(tokens)
	authHandler := handlers.NewAuthHandler(userRepo)
	uploadHandler := handlers.NewUploadHandler(extractor, resumeRepo, cfg.Upload.MaxFileSize)
	resumeHandler := handlers.NewResumeHandler(resumeRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)
	scoreHandler := handlers.NewScoreHandler(matcher, scorer, scoreRepo)
	interviewHandler := handlers.NewInterviewHandler(scorer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
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

	// Authenticated endpoints
	protected := api.Group("", authMiddleware.Handler())

	protected.Get("/auth/me", authHandler.HandleMe)

	protected.Post("/resumes/upload", uploadHandler.HandleUpload)
	protected.Get("/resumes", resumeHandler.HandleList)
	protected.Post("/resumes", resumeHandler.HandleCreate)
	protected.Get("/resumes/:id", resumeHandler.HandleGet)
	protected.Put("/resumes/:id", resumeHandler.HandleUpdate)
	protected.Delete("/resumes/:id", resumeHandler.HandleDelete)

	protected.Get("/jobs", jobHandler.HandleList)
	protected.Post("/jobs", jobHandler.HandleCreate)
	protected.Get("/jobs/:id", jobHandler.HandleGet)
	protected.Put("/jobs/:id", jobHandler.HandleUpdate)
	protected.Delete("/jobs/:id", jobHandler.HandleDelete)

	protected.Post("/score", scoreHandler.HandleScore)
	protected.Get("/score/history", scoreHandler.HandleHistory)
	protected.Get("/score/ml/health", scoreHandler.HandleMLHealth)
	protected.Get("/score/:id", scoreHandler.HandleGet)

	protected.Post("/ats/optimize", scoreHandler.HandleOptimizeATS)

	protected.Post("/interview/questions", interviewHandler.HandleGenerateQuestions)
	protected.Post("/interview/evaluate", interviewHandler.HandleEvaluateAnswer)
	protected.Post("/interview/score", interviewHandler.HandleCalculateScore)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Coach API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resumes/upload",
				"POST /api/v1/score",
				"POST /api/v1/ats/optimize",
				"POST /api/v1/interview/questions",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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
