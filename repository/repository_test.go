package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/vibequiz/backend/models"
	"github.com/vibequiz/backend/storage"
)

func newTestRepos(t *testing.T) (*QuestionRepository, *AnswerRepository, *StatsAggregator, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	questions := NewQuestionRepository(store)
	stats := NewStatsAggregator(store, questions)
	answers := NewAnswerRepository(store, questions, stats)
	return questions, answers, stats, store
}

func sampleChoices() models.Choices {
	return models.Choices{A: "X", B: "Y", C: "Z", D: "W"}
}

// putQuestion writes a question record and its index entries directly, so
// tests can control timestamps.
func putQuestion(t *testing.T, store storage.Store, question *models.Question) {
	t.Helper()
	ctx := context.Background()
	data, err := json.Marshal(question)
	if err != nil {
		t.Fatalf("encode question: %v", err)
	}
	if err := store.SetWithTTL(ctx, questionKey(question.ID), string(data), storage.DefaultTTL); err != nil {
		t.Fatalf("store question: %v", err)
	}
	if err := store.AddToSet(ctx, recentQuestionsKey, question.ID); err != nil {
		t.Fatalf("index question: %v", err)
	}
}

// putAnswer writes an answer record and its index entries directly.
func putAnswer(t *testing.T, store storage.Store, answer *models.UserAnswer) {
	t.Helper()
	ctx := context.Background()
	data, err := json.Marshal(answer)
	if err != nil {
		t.Fatalf("encode answer: %v", err)
	}
	if err := store.SetWithTTL(ctx, answerKey(answer.ID), string(data), storage.DefaultTTL); err != nil {
		t.Fatalf("store answer: %v", err)
	}
	if err := store.AddToSet(ctx, answersByQuestionKey(answer.QuestionID), answer.ID); err != nil {
		t.Fatalf("index answer by question: %v", err)
	}
	if err := store.AddToSet(ctx, answersByUserKey(answer.UserID), answer.ID); err != nil {
		t.Fatalf("index answer by user: %v", err)
	}
	if _, err := store.SetIfAbsent(ctx, userAnsweredKey(answer.UserID, answer.QuestionID), "true", storage.DefaultTTL); err != nil {
		t.Fatalf("set guard: %v", err)
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
