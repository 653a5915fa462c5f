package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/vibequiz/backend/middleware"
	"github.com/vibequiz/backend/models"
	"github.com/vibequiz/backend/repository"
)

var validate = validator.New()

type QuestionHandler struct {
	questions *repository.QuestionRepository
	answers   *repository.AnswerRepository
	stats     *repository.StatsAggregator
}

func NewQuestionHandler(questions *repository.QuestionRepository, answers *repository.AnswerRepository, stats *repository.StatsAggregator) *QuestionHandler {
	return &QuestionHandler{questions: questions, answers: answers, stats: stats}
}

type CreateQuestionRequest struct {
	QuestionText  string `json:"questionText" validate:"required"`
	Choices       struct {
		A string `json:"a" validate:"required"`
		B string `json:"b" validate:"required"`
		C string `json:"c" validate:"required"`
		D string `json:"d" validate:"required"`
	} `json:"choices" validate:"required"`
	CorrectAnswer string `json:"correctAnswer" validate:"required,oneof=a b c d"`
}

func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var req CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if len(strings.TrimSpace(req.QuestionText)) < 10 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Question text must be at least 10 characters long"})
	}

	choiceValues := []string{req.Choices.A, req.Choices.B, req.Choices.C, req.Choices.D}
	unique := make(map[string]bool, len(choiceValues))
	for _, choice := range choiceValues {
		trimmed := strings.TrimSpace(choice)
		if trimmed == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All choices must be non-empty strings"})
		}
		unique[strings.ToLower(trimmed)] = true
	}
	if len(unique) < 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All choices must be unique"})
	}

	user := middleware.CurrentUser(c)
	question, err := h.questions.Create(
		c.Context(),
		req.QuestionText,
		models.Choices{A: req.Choices.A, B: req.Choices.B, C: req.Choices.C, D: req.Choices.D},
		models.AnswerChoice(req.CorrectAnswer),
		user.ID,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	// The correct answer never leaves the server at creation time.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Question created successfully! 🎉",
		"question": fiber.Map{
			"id":             question.ID,
			"questionText":   question.QuestionText,
			"choices":        question.Choices,
			"createdAt":      question.CreatedAt,
			"totalAnswers":   question.TotalAnswers,
			"correctAnswers": question.CorrectAnswers,
		},
	})
}

func (h *QuestionHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	questions, err := h.questions.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	questionIDs := make([]string, len(questions))
	for i, question := range questions {
		questionIDs[i] = question.ID
	}
	userAnswers, err := h.answers.GetUserAnswersForQuestions(c.Context(), user.ID, questionIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	items := make([]fiber.Map, 0, len(questions))
	for _, question := range questions {
		item, err := h.questionView(c, question, user.ID, userAnswers[question.ID])
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"questions": items,
		"count":     len(items),
	})
}

func (h *QuestionHandler) Get(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	user := middleware.CurrentUser(c)

	question, err := h.questions.GetByID(c.Context(), questionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch question"})
	}
	if question == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	answer, err := h.answers.GetUserAnswer(c.Context(), user.ID, questionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch question"})
	}

	item, err := h.questionView(c, question, user.ID, answer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch question"})
	}
	return c.JSON(fiber.Map{"success": true, "question": item})
}

// questionView projects a question for the requesting user. The correct
// answer and the stats block appear only once the user has answered.
func (h *QuestionHandler) questionView(c *fiber.Ctx, question *models.Question, userID string, answer *models.UserAnswer) (fiber.Map, error) {
	item := fiber.Map{
		"id":             question.ID,
		"questionText":   question.QuestionText,
		"choices":        question.Choices,
		"createdAt":      question.CreatedAt,
		"totalAnswers":   question.TotalAnswers,
		"correctAnswers": question.CorrectAnswers,
		"createdBy":      question.CreatedBy,
		"isMyQuestion":   question.CreatedBy == userID,
		"isAnswered":     answer != nil,
		"userAnswer":     nil,
	}

	if answer == nil {
		return item, nil
	}

	item["userAnswer"] = fiber.Map{
		"selectedAnswer": answer.SelectedAnswer,
		"isCorrect":      answer.IsCorrect,
		"answeredAt":     answer.AnsweredAt,
	}
	item["correctAnswer"] = question.CorrectAnswer

	stats, err := h.stats.Compute(c.Context(), question.ID)
	if err != nil {
		return nil, err
	}
	item["stats"] = stats
	return item, nil
}
