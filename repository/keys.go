package repository

import "fmt"

// Key scheme shared by both storage backends. Everything lives under the
// 24 hour retention window, so indexes and records age out together.
func questionKey(questionID string) string {
	return "question:" + questionID
}

func answerKey(answerID string) string {
	return "answer:" + answerID
}

func answersByQuestionKey(questionID string) string {
	return "answers:by-question:" + questionID
}

func answersByUserKey(userID string) string {
	return "answers:by-user:" + userID
}

func questionsByUserKey(userID string) string {
	return "questions:by-user:" + userID
}

func userAnsweredKey(userID, questionID string) string {
	return fmt.Sprintf("user-answered:%s:%s", userID, questionID)
}

const recentQuestionsKey = "questions:recent"
