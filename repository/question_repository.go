// Package repository implements the data-access layer: question and answer
// persistence plus on-demand statistics, all through the storage port.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vibequiz/backend/models"
	"github.com/vibequiz/backend/storage"
)

// QuestionRepository creates, fetches and lists questions. Callers are
// expected to have validated inputs at the boundary; see handlers.
type QuestionRepository struct {
	store storage.Store
}

func NewQuestionRepository(store storage.Store) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// Create persists a new question with zeroed counters and registers it in the
// recent-questions index and the creator's index.
func (r *QuestionRepository) Create(ctx context.Context, questionText string, choices models.Choices, correctAnswer models.AnswerChoice, createdBy string) (*models.Question, error) {
	question := &models.Question{
		ID:           uuid.NewString(),
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UnixMilli(),
		QuestionText: strings.TrimSpace(questionText),
		Choices: models.Choices{
			A: strings.TrimSpace(choices.A),
			B: strings.TrimSpace(choices.B),
			C: strings.TrimSpace(choices.C),
			D: strings.TrimSpace(choices.D),
		},
		CorrectAnswer:  correctAnswer,
		TotalAnswers:   0,
		CorrectAnswers: 0,
	}

	if err := r.put(ctx, question); err != nil {
		log.Printf("[ERROR] create question %s: %v", question.ID, err)
		return nil, fmt.Errorf("create question: %w", err)
	}
	if err := r.store.AddToSet(ctx, recentQuestionsKey, question.ID); err != nil {
		log.Printf("[ERROR] index question %s in recent set: %v", question.ID, err)
		return nil, fmt.Errorf("index question: %w", err)
	}
	if err := r.store.Expire(ctx, recentQuestionsKey, storage.DefaultTTL); err != nil {
		return nil, fmt.Errorf("expire recent index: %w", err)
	}
	if err := r.store.AddToSet(ctx, questionsByUserKey(createdBy), question.ID); err != nil {
		return nil, fmt.Errorf("index question by creator: %w", err)
	}

	return question, nil
}

// List returns every live question from the recent index, newest first.
// Expired or vanished records are skipped, not errors. No filtering by answer
// status; the caller annotates each entry for the requesting user.
func (r *QuestionRepository) List(ctx context.Context) ([]*models.Question, error) {
	ids, err := r.store.SetMembers(ctx, recentQuestionsKey)
	if err != nil {
		log.Printf("[ERROR] list recent questions: %v", err)
		return nil, fmt.Errorf("list questions: %w", err)
	}

	cutoff := time.Now().Add(-storage.DefaultTTL).UnixMilli()
	questions := make([]*models.Question, 0, len(ids))
	for _, id := range ids {
		question, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if question == nil || question.CreatedAt <= cutoff {
			continue
		}
		questions = append(questions, question)
	}

	sort.Slice(questions, func(i, j int) bool {
		return questions[i].CreatedAt > questions[j].CreatedAt
	})
	return questions, nil
}

// GetByID returns the question, or (nil, nil) when the id is unknown or the
// record has expired.
func (r *QuestionRepository) GetByID(ctx context.Context, questionID string) (*models.Question, error) {
	data, err := r.store.Get(ctx, questionKey(questionID))
	if err == storage.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		log.Printf("[ERROR] get question %s: %v", questionID, err)
		return nil, fmt.Errorf("get question: %w", err)
	}

	var question models.Question
	if err := json.Unmarshal([]byte(data), &question); err != nil {
		return nil, fmt.Errorf("decode question %s: %w", questionID, err)
	}
	return &question, nil
}

// put persists the question record with a refreshed retention TTL.
func (r *QuestionRepository) put(ctx context.Context, question *models.Question) error {
	data, err := json.Marshal(question)
	if err != nil {
		return err
	}
	return r.store.SetWithTTL(ctx, questionKey(question.ID), string(data), storage.DefaultTTL)
}
