package models

// AnswerChoice is one of the four choice keys of a question.
type AnswerChoice string

const (
	ChoiceA AnswerChoice = "a"
	ChoiceB AnswerChoice = "b"
	ChoiceC AnswerChoice = "c"
	ChoiceD AnswerChoice = "d"
)

// Valid reports whether c is one of the four choice keys.
func (c AnswerChoice) Valid() bool {
	switch c {
	case ChoiceA, ChoiceB, ChoiceC, ChoiceD:
		return true
	}
	return false
}

// Choices holds the four labeled answer choices of a question.
type Choices struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
	D string `json:"d"`
}

// Question is a multiple-choice prompt with one correct choice. Timestamps are
// Unix milliseconds. TotalAnswers and CorrectAnswers are derived counters kept
// in sync with the stored answer set by the answer repository.
type Question struct {
	ID             string       `json:"id"`
	CreatedBy      string       `json:"createdBy"`
	CreatedAt      int64        `json:"createdAt"`
	QuestionText   string       `json:"questionText"`
	Choices        Choices      `json:"choices"`
	CorrectAnswer  AnswerChoice `json:"correctAnswer"`
	TotalAnswers   int          `json:"totalAnswers"`
	CorrectAnswers int          `json:"correctAnswers"`
}
