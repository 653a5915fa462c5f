package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/vibequiz/backend/configs"
	"github.com/vibequiz/backend/database"
	"github.com/vibequiz/backend/handlers"
	"github.com/vibequiz/backend/jobs"
	"github.com/vibequiz/backend/repository"
	"github.com/vibequiz/backend/routes"
	"github.com/vibequiz/backend/storage"
)

func main() {
	store := database.Connect()

	questionRepo := repository.NewQuestionRepository(store)
	statsAggregator := repository.NewStatsAggregator(store, questionRepo)
	answerRepo := repository.NewAnswerRepository(store, questionRepo, statsAggregator)

	if memStore, ok := store.(*storage.MemoryStore); ok {
		if config.Config("SEED_SAMPLE_DATA") == "true" {
			database.SeedSampleQuestions(questionRepo)
		}

		c := cron.New()
		c.AddFunc("*/10 * * * *", func() { jobs.PurgeExpiredEntries(memStore) })
		go c.Start()
		log.Println("✅ Cron job for local store cleanup scheduled successfully.")
	}

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "VibeQuiz",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to VibeQuiz API",
		})
	})

	questionHandler := handlers.NewQuestionHandler(questionRepo, answerRepo, statsAggregator)
	answerHandler := handlers.NewAnswerHandler(answerRepo)
	statsHandler := handlers.NewStatsHandler(questionRepo, statsAggregator)
	routes.QuestionRoutes(app, questionHandler, answerHandler, statsHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
