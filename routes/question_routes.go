package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vibequiz/backend/handlers"
	"github.com/vibequiz/backend/middleware"
)

func QuestionRoutes(app *fiber.App, questions *handlers.QuestionHandler, answers *handlers.AnswerHandler, stats *handlers.StatsHandler) {
	api := app.Group("/api/v1", middleware.Protected(), middleware.RequireIdentity())

	group := api.Group("/questions")
	group.Post("", questions.Create)
	group.Get("", questions.List)
	group.Get("/:questionId", questions.Get)
	group.Post("/:questionId/answer", answers.Submit)
	group.Get("/:questionId/stats", stats.Get)
}
