package repository

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/vibequiz/backend/models"
	"github.com/vibequiz/backend/storage"
)

// recentAnswerersLimit bounds the recent-answerers list in computed stats.
// Display surfaces may truncate further; that is their concern.
const recentAnswerersLimit = 10

// StatsAggregator computes per-question statistics on demand from the stored
// answer set. Nothing here is persisted, so the result is always current as
// of the read.
type StatsAggregator struct {
	store     storage.Store
	questions *QuestionRepository
}

func NewStatsAggregator(store storage.Store, questions *QuestionRepository) *StatsAggregator {
	return &StatsAggregator{store: store, questions: questions}
}

// Compute returns the stats for questionID, zeroed when the question has no
// answers, or (nil, nil) when the question itself is absent.
func (a *StatsAggregator) Compute(ctx context.Context, questionID string) (*models.QuestionStats, error) {
	question, err := a.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, nil
	}

	ids, err := a.store.SetMembers(ctx, answersByQuestionKey(questionID))
	if err != nil {
		log.Printf("[ERROR] list answers question=%s: %v", questionID, err)
		return nil, fmt.Errorf("list question answers: %w", err)
	}

	stats := &models.QuestionStats{
		QuestionID:      questionID,
		RecentAnswerers: []models.RecentAnswerer{},
	}
	if len(ids) == 0 {
		return stats, nil
	}

	answers, err := loadAnswers(ctx, a.store, ids)
	if err != nil {
		return nil, err
	}

	stats.TotalAnswers = len(answers)
	for _, answer := range answers {
		if answer.IsCorrect {
			stats.CorrectAnswers++
		}
	}
	if stats.TotalAnswers > 0 {
		stats.CorrectPercentage = int(math.Round(float64(stats.CorrectAnswers) / float64(stats.TotalAnswers) * 100))
	}

	sort.Slice(answers, func(i, j int) bool {
		return answers[i].AnsweredAt > answers[j].AnsweredAt
	})
	limit := recentAnswerersLimit
	if len(answers) < limit {
		limit = len(answers)
	}
	for _, answer := range answers[:limit] {
		stats.RecentAnswerers = append(stats.RecentAnswerers, models.RecentAnswerer{
			UserName:   answer.UserName,
			IsCorrect:  answer.IsCorrect,
			AnsweredAt: answer.AnsweredAt,
		})
	}
	return stats, nil
}
