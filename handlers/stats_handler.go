package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vibequiz/backend/repository"
	"github.com/vibequiz/backend/utils"
)

type StatsHandler struct {
	questions *repository.QuestionRepository
	stats     *repository.StatsAggregator
}

func NewStatsHandler(questions *repository.QuestionRepository, stats *repository.StatsAggregator) *StatsHandler {
	return &StatsHandler{questions: questions, stats: stats}
}

func (h *StatsHandler) Get(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	if questionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID"})
	}

	question, err := h.questions.GetByID(c.Context(), questionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	if question == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	stats, err := h.stats.Compute(c.Context(), questionID)
	if err != nil || stats == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unable to fetch question statistics"})
	}

	recentAnswerers := make([]fiber.Map, 0, len(stats.RecentAnswerers))
	for _, answerer := range stats.RecentAnswerers {
		recentAnswerers = append(recentAnswerers, fiber.Map{
			"userName":  answerer.UserName,
			"isCorrect": answerer.IsCorrect,
			"timeAgo":   utils.FormatTimeAgo(answerer.AnsweredAt),
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"questionId":   questionID,
		"questionText": question.QuestionText,
		"stats": fiber.Map{
			"totalAnswers":      stats.TotalAnswers,
			"correctAnswers":    stats.CorrectAnswers,
			"incorrectAnswers":  stats.TotalAnswers - stats.CorrectAnswers,
			"correctPercentage": stats.CorrectPercentage,
			"accuracyRating":    stats.AccuracyRating(),
			"recentAnswerers":   recentAnswerers,
		},
		"meta": fiber.Map{
			"createdBy": question.CreatedBy,
			"createdAt": question.CreatedAt,
			"timeAgo":   utils.FormatTimeAgo(question.CreatedAt),
		},
	})
}
