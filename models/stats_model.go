package models

// RecentAnswerer is a single entry in a question's recent-answerers list.
type RecentAnswerer struct {
	UserName   string `json:"userName"`
	IsCorrect  bool   `json:"isCorrect"`
	AnsweredAt int64  `json:"answeredAt"`
}

// QuestionStats is the derived aggregate for one question, recomputed on
// demand from its stored answers. It is never persisted.
type QuestionStats struct {
	QuestionID        string           `json:"questionId"`
	TotalAnswers      int              `json:"totalAnswers"`
	CorrectAnswers    int              `json:"correctAnswers"`
	CorrectPercentage int              `json:"correctPercentage"`
	RecentAnswerers   []RecentAnswerer `json:"recentAnswerers"`
}

// AccuracyRating buckets a question's correct percentage into a difficulty
// label for display.
func (s *QuestionStats) AccuracyRating() string {
	switch {
	case s.CorrectPercentage >= 80:
		return "Easy"
	case s.CorrectPercentage >= 50:
		return "Medium"
	default:
		return "Hard"
	}
}
