package models

// UserAnswer is one user's single recorded response to one question. It is
// created at most once per (userId, questionId) pair and never mutated.
type UserAnswer struct {
	ID             string       `json:"id"`
	QuestionID     string       `json:"questionId"`
	UserID         string       `json:"userId"`
	SelectedAnswer AnswerChoice `json:"selectedAnswer"`
	IsCorrect      bool         `json:"isCorrect"`
	AnsweredAt     int64        `json:"answeredAt"`
	UserName       string       `json:"userName"`
}

// SubmitResult is the outcome of an answer submission. Domain rejections
// (already answered, unknown question) come back with Success=false and a
// user-facing Message rather than an error.
type SubmitResult struct {
	Success   bool           `json:"success"`
	IsCorrect bool           `json:"isCorrect"`
	Message   string         `json:"message"`
	Stats     *QuestionStats `json:"stats,omitempty"`
}
