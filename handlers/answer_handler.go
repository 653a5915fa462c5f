package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vibequiz/backend/middleware"
	"github.com/vibequiz/backend/models"
	"github.com/vibequiz/backend/repository"
)

type AnswerHandler struct {
	answers *repository.AnswerRepository
}

func NewAnswerHandler(answers *repository.AnswerRepository) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

type SubmitAnswerRequest struct {
	SelectedAnswer string `json:"selectedAnswer"`
}

func (h *AnswerHandler) Submit(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	if questionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID"})
	}

	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	selected := models.AnswerChoice(req.SelectedAnswer)
	if !selected.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Selected answer must be one of: a, b, c, d"})
	}

	user := middleware.CurrentUser(c)
	result, err := h.answers.Submit(c.Context(), questionID, user.ID, user.Name, selected)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": result.Message})
	}

	encouragement := "Nice try! Every attempt makes you smarter! 💪"
	if result.IsCorrect {
		encouragement = "Great job! You got it right! 🎉"
	}

	var stats fiber.Map
	if result.Stats != nil {
		recent := result.Stats.RecentAnswerers
		if len(recent) > 5 {
			recent = recent[:5] // display truncation, not an aggregator concern
		}
		stats = fiber.Map{
			"totalAnswers":      result.Stats.TotalAnswers,
			"correctAnswers":    result.Stats.CorrectAnswers,
			"correctPercentage": result.Stats.CorrectPercentage,
			"recentAnswerers":   recent,
		}
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"isCorrect": result.IsCorrect,
		"message":   result.Message,
		"feedback": fiber.Map{
			"selectedAnswer": req.SelectedAnswer,
			"isCorrect":      result.IsCorrect,
			"encouragement":  encouragement,
		},
		"stats": stats,
	})
}
