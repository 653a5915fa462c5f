package database

import (
	"context"
	"log"

	"github.com/vibequiz/backend/models"
	"github.com/vibequiz/backend/repository"
)

// SeedSampleQuestions pre-populates the store with a few known questions so a
// fresh local instance has something to show. Intended for the in-process
// fallback; guarded by SEED_SAMPLE_DATA in main.
func SeedSampleQuestions(questions *repository.QuestionRepository) {
	log.Println("🌱 Seeding sample questions...")

	samples := []struct {
		text      string
		choices   models.Choices
		correct   models.AnswerChoice
		createdBy string
	}{
		{
			text: "What does HTML stand for?",
			choices: models.Choices{
				A: "HyperText Markup Language",
				B: "High Technology Modern Language",
				C: "Home Tool Markup Language",
				D: "Hyperlink and Text Markup Language",
			},
			correct:   models.ChoiceA,
			createdBy: "sample-user-1",
		},
		{
			text: "Which CSS property controls the text size?",
			choices: models.Choices{
				A: "text-style",
				B: "font-size",
				C: "text-size",
				D: "font-style",
			},
			correct:   models.ChoiceB,
			createdBy: "sample-user-2",
		},
		{
			text: "What is the latest version of JavaScript (as of 2024)?",
			choices: models.Choices{
				A: "ES6",
				B: "ES2020",
				C: "ES2023",
				D: "ES2024",
			},
			correct:   models.ChoiceD,
			createdBy: "sample-user-1",
		},
	}

	ctx := context.Background()
	seeded := 0
	for _, sample := range samples {
		if _, err := questions.Create(ctx, sample.text, sample.choices, sample.correct, sample.createdBy); err != nil {
			log.Printf("[ERROR] seed question %q: %v", sample.text, err)
			continue
		}
		seeded++
	}
	log.Printf("✅ Seeded %d sample questions", seeded)
}
