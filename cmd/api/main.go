package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/ekinokr/eventmate-backend/internal/config"
	"github.com/ekinokr/eventmate-backend/internal/handler"
	"github.com/ekinokr/eventmate-backend/internal/middleware"
	"github.com/ekinokr/eventmate-backend/internal/repository"
	"github.com/ekinokr/eventmate-backend/internal/service"
	"github.com/ekinokr/eventmate-backend/pkg/database"
	"github.com/ekinokr/eventmate-backend/pkg/jwt"
	"github.com/ekinokr/eventmate-backend/pkg/logger"
	"github.com/ekinokr/eventmate-backend/pkg/utils"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	// Initialize database
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()
	db := client.Database(cfg.MongoDatabase)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		zlog.Fatal("failed to create user indexes", zap.Error(err))
	}
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		zlog.Fatal("failed to create event indexes", zap.Error(err))
	}

	// Token service
	tokens := jwt.NewTokenService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, userRepo)
	questionService := service.NewQuestionService(questionRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService, validator, zlog)
	eventHandler := handler.NewEventHandler(eventService, validator, zlog)
	questionHandler := handler.NewQuestionHandler(questionService, validator, zlog)
	healthHandler := handler.NewHealthHandler()

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.TokenHeader,
		AllowMethods: "GET, POST",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	authRequired := middleware.AuthRequired(tokens)

	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authRequired, authHandler.Me)

	api.Get("/events", eventHandler.GetEvents)
	api.Get("/events/:id", eventHandler.GetEvent)

	// Protected routes
	api.Post("/events", authRequired, eventHandler.CreateEvent)

	questions := api.Group("/questions", authRequired)
	questions.Post("/generate", questionHandler.GenerateQuestions)
	questions.Post("/", questionHandler.CreateQuestion)
	questions.Get("/event/:eventId", questionHandler.GetEventQuestions)

	// Static status page
	app.Static("/", "./public")

	zlog.Info("eventmate backend listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
