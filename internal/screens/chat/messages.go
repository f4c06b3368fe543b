package chat

import "github.com/abhisek/brainbytes/internal/tutor"

// answerReadyMsg is sent when the tutor has answered a question.
// Err reports a failure to persist the exchange; the answer is still shown.
type answerReadyMsg struct {
	Question string
	Result   tutor.Result
	Err      error
}
