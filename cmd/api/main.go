// @title Exam Prep API
// @version 1.0
// @description Quiz assembly, grading and performance analytics for board exam practice.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"exam-prep/internal/adapter"
	"exam-prep/internal/cache"
	"exam-prep/internal/config"
	"exam-prep/internal/database"
	"exam-prep/internal/domain"
	"exam-prep/internal/handler"
	"exam-prep/internal/logger"
	"exam-prep/internal/middleware"
	"exam-prep/internal/repository"
	"exam-prep/internal/service"
	"exam-prep/internal/validation"

	_ "exam-prep/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database and bring the schema up to date
	db, err := database.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db.DB); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	questionRepository := repository.NewSQLXQuestionRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	resultRepository := repository.NewSQLXQuizResultRepository(db)

	// Redis is optional: without it, stats and parts are computed per call
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Info("Redis address not configured; running without cache")
	}

	// Initialize services
	sampler := domain.NewSampler(rand.New(rand.NewSource(time.Now().UnixNano())))
	questionService := service.NewQuestionService(questionRepository, cacheAdapter, cfg.Quiz.StatsCacheTTL)
	quizService := service.NewQuizService(questionRepository, quizRepository, resultRepository, sampler, cfg)
	analyticsService := service.NewAnalyticsService(resultRepository, cfg)
	sessionService, err := service.NewSessionService(cfg.Session)
	if err != nil {
		appLogger.Fatal("Failed to create SessionService", zap.Error(err))
	}

	// Initialize handlers
	validator := validation.NewValidator(cfg.Quiz.MaxQuestionCount)
	questionHandler := handler.NewQuestionHandler(questionService, validator)
	quizHandler := handler.NewQuizHandler(quizService, validator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())
	app.Use(middleware.Session(sessionService))

	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	apiGroup.Post("/session", sessionHandler.CreateSession)

	apiGroup.Get("/questions", questionHandler.ListQuestions)
	apiGroup.Get("/questions/stats", questionHandler.GetStats)
	apiGroup.Post("/questions/import", questionHandler.ImportQuestions)
	apiGroup.Get("/parts", questionHandler.ListParts)

	apiGroup.Post("/quizzes", quizHandler.CreateQuiz)
	apiGroup.Post("/quizzes/confirm", quizHandler.ConfirmQuiz)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)
	apiGroup.Post("/quizzes/:id/results", quizHandler.SubmitQuiz)

	apiGroup.Get("/results", quizHandler.ListResults)
	apiGroup.Get("/results/:id", quizHandler.GetResult)

	apiGroup.Get("/analytics", analyticsHandler.GetAnalytics)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
