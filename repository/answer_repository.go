package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vibequiz/backend/models"
	"github.com/vibequiz/backend/storage"
)

// User-facing messages for submission outcomes.
const (
	msgAlreadyAnswered  = "You've already answered this question!"
	msgQuestionNotFound = "Question not found"
	msgCorrect          = "Correct! 🎉"
	msgIncorrect        = "Incorrect, but nice try! 💪"
)

// AnswerRepository records answers and enforces the one-answer-per-user-per-
// question rule through an atomic claim on the storage port.
type AnswerRepository struct {
	store     storage.Store
	questions *QuestionRepository
	stats     *StatsAggregator
}

func NewAnswerRepository(store storage.Store, questions *QuestionRepository, stats *StatsAggregator) *AnswerRepository {
	return &AnswerRepository{store: store, questions: questions, stats: stats}
}

// Submit records userID's answer to questionID. Domain rejections (duplicate
// answer, unknown question) are reported in the result, not as errors, so the
// caller can render them; only infrastructure failures return an error.
//
// The (user, question) guard is claimed with SetIfAbsent before anything is
// written, so two concurrent submissions from the same user cannot both
// record an answer: the loser sees the claim fail and is rejected.
func (r *AnswerRepository) Submit(ctx context.Context, questionID, userID, userName string, selected models.AnswerChoice) (*models.SubmitResult, error) {
	won, err := r.store.SetIfAbsent(ctx, userAnsweredKey(userID, questionID), "true", storage.DefaultTTL)
	if err != nil {
		log.Printf("[ERROR] claim answer guard user=%s question=%s: %v", userID, questionID, err)
		return nil, fmt.Errorf("claim answer guard: %w", err)
	}
	if !won {
		return &models.SubmitResult{Success: false, Message: msgAlreadyAnswered}, nil
	}

	question, err := r.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return &models.SubmitResult{Success: false, Message: msgQuestionNotFound}, nil
	}

	isCorrect := selected == question.CorrectAnswer
	answer := &models.UserAnswer{
		ID:             uuid.NewString(),
		QuestionID:     questionID,
		UserID:         userID,
		SelectedAnswer: selected,
		IsCorrect:      isCorrect,
		AnsweredAt:     time.Now().UnixMilli(),
		UserName:       userName,
	}

	data, err := json.Marshal(answer)
	if err != nil {
		return nil, fmt.Errorf("encode answer: %w", err)
	}
	if err := r.store.SetWithTTL(ctx, answerKey(answer.ID), string(data), storage.DefaultTTL); err != nil {
		log.Printf("[ERROR] store answer %s user=%s question=%s: %v", answer.ID, userID, questionID, err)
		return nil, fmt.Errorf("store answer: %w", err)
	}
	if err := r.store.AddToSet(ctx, answersByQuestionKey(questionID), answer.ID); err != nil {
		return nil, fmt.Errorf("index answer by question: %w", err)
	}
	if err := r.store.AddToSet(ctx, answersByUserKey(userID), answer.ID); err != nil {
		return nil, fmt.Errorf("index answer by user: %w", err)
	}

	// The question's counters are derived from the answer set rather than
	// incremented in place, so a retried or partially failed submission can
	// never leave them drifted from the recorded answers.
	stats, err := r.stats.Compute(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		question.TotalAnswers = stats.TotalAnswers
		question.CorrectAnswers = stats.CorrectAnswers
		if err := r.questions.put(ctx, question); err != nil {
			log.Printf("[ERROR] update counters question=%s: %v", questionID, err)
			return nil, fmt.Errorf("update question counters: %w", err)
		}
	}

	message := msgIncorrect
	if isCorrect {
		message = msgCorrect
	}
	return &models.SubmitResult{
		Success:   true,
		IsCorrect: isCorrect,
		Message:   message,
		Stats:     stats,
	}, nil
}

// GetUserAnswer returns the user's recorded answer for the question, or
// (nil, nil) when they have not answered it.
func (r *AnswerRepository) GetUserAnswer(ctx context.Context, userID, questionID string) (*models.UserAnswer, error) {
	answered, err := r.HasAnswered(ctx, userID, questionID)
	if err != nil {
		return nil, err
	}
	if !answered {
		return nil, nil
	}

	answers, err := r.answersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, answer := range answers {
		if answer.QuestionID == questionID {
			return answer, nil
		}
	}
	return nil, nil
}

// GetUserAnswersForQuestions returns the user's answers restricted to the
// given question ids, keyed by question id. One scan of the per-user index
// covers the whole feed.
func (r *AnswerRepository) GetUserAnswersForQuestions(ctx context.Context, userID string, questionIDs []string) (map[string]*models.UserAnswer, error) {
	wanted := make(map[string]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}

	answers, err := r.answersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[string]*models.UserAnswer)
	for _, answer := range answers {
		if wanted[answer.QuestionID] {
			byQuestion[answer.QuestionID] = answer
		}
	}
	return byQuestion, nil
}

// HasAnswered reports whether the uniqueness guard is set for the pair.
func (r *AnswerRepository) HasAnswered(ctx context.Context, userID, questionID string) (bool, error) {
	answered, err := r.store.Exists(ctx, userAnsweredKey(userID, questionID))
	if err != nil {
		log.Printf("[ERROR] check answer guard user=%s question=%s: %v", userID, questionID, err)
		return false, fmt.Errorf("check answer guard: %w", err)
	}
	return answered, nil
}

// answersForUser loads every live answer in the user's index.
func (r *AnswerRepository) answersForUser(ctx context.Context, userID string) ([]*models.UserAnswer, error) {
	ids, err := r.store.SetMembers(ctx, answersByUserKey(userID))
	if err != nil {
		log.Printf("[ERROR] list answers user=%s: %v", userID, err)
		return nil, fmt.Errorf("list user answers: %w", err)
	}
	return loadAnswers(ctx, r.store, ids)
}

// loadAnswers fetches the answer records behind ids, skipping expired ones.
func loadAnswers(ctx context.Context, store storage.Store, ids []string) ([]*models.UserAnswer, error) {
	answers := make([]*models.UserAnswer, 0, len(ids))
	for _, id := range ids {
		data, err := store.Get(ctx, answerKey(id))
		if err == storage.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get answer %s: %w", id, err)
		}
		var answer models.UserAnswer
		if err := json.Unmarshal([]byte(data), &answer); err != nil {
			return nil, fmt.Errorf("decode answer %s: %w", id, err)
		}
		answers = append(answers, &answer)
	}
	return answers, nil
}
