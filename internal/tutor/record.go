package tutor

import "github.com/abhisek/brainbytes/internal/store"

// QuestionMessage is the stored form of the asker's side of an exchange.
func QuestionMessage(pairID, userID, text string) *store.Message {
	return &store.Message{
		PairID: pairID,
		UserID: userID,
		Text:   text,
		IsUser: true,
	}
}

// AnswerMessage is the stored form of r, the tutor's side of an exchange.
func AnswerMessage(pairID, userID string, r Result) *store.Message {
	return &store.Message{
		PairID:            pairID,
		UserID:            userID,
		Text:              r.Response,
		Category:          string(r.Subject),
		QuestionType:      string(r.QuestionType),
		Sentiment:         string(r.Sentiment),
		FollowUpQuestions: r.FollowUpQuestions,
		IsFollowUp:        r.IsFollowUp,
	}
}
