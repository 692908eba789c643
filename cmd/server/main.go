package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"

	config "github.com/influenceos/agent-api/configs"
	"github.com/influenceos/agent-api/internal/api/handlers"
	"github.com/influenceos/agent-api/internal/cache"
	"github.com/influenceos/agent-api/internal/database"
	job "github.com/influenceos/agent-api/internal/jobs"
	"github.com/influenceos/agent-api/internal/llm"
	"github.com/influenceos/agent-api/internal/repository"
	"github.com/influenceos/agent-api/internal/service"
	"github.com/influenceos/agent-api/internal/trends"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	cacheClient := cache.New(cfg.RedisURI)
	defer cacheClient.Close()

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	trendsClient := trends.NewClient(cfg.TavilyAPIKey, cfg.TavilyBaseURL, cacheClient)
	llmClient := llm.NewClient(cfg.PerplexityAPIKey, cfg.PerplexityBaseURL, cfg.PerplexityModel)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	generationService := service.NewGenerationService(llmClient, trendsClient)
	postService := service.NewPostService(userRepo, postRepo, generationService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error(err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := handlers.NewAuthHandler(*cfg, authService)
	user := handlers.NewUserHandler(userService)
	post := handlers.NewPostHandler(postService)

	api := app.Group("/api/v1")
	api.Post("/create_test_user", user.CreateTestUser)
	api.Get("/auth/:provider/login", auth.Login)
	api.Get("/auth/:provider/callback", auth.Callback)
	api.Get("/users/:user_id", user.GetUser)
	api.Post("/users/:user_id/generate_post", post.GeneratePost)
	api.Get("/users/:user_id/posts", post.ListUserPosts)
	api.Patch("/posts/:post_id", post.UpdatePost)

	publishJob := job.NewPublishJob(postRepo)
	c := cron.New()
	c.AddFunc("@every 1m", publishJob.PublishDue)
	c.Start()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, c)
}

func gracefulShutdown(app *fiber.App, c *cron.Cron) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	c.Stop()
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
