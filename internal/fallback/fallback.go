// Package fallback answers questions from a fixed template bank when no
// generator answer is available.
package fallback

import (
	"github.com/abhisek/brainbytes/internal/answers"
	"github.com/abhisek/brainbytes/internal/classify"
	"github.com/abhisek/brainbytes/internal/tone"
)

// Template returns the bank entry for subject and question type. Unknown
// subjects use the general subject's entry for the same type; a type with no
// entry yields DefaultResponse.
func Template(subject classify.Subject, qt classify.QuestionType) string {
	byType, ok := templates[subject]
	if !ok {
		byType = templates[classify.SubjectGeneral]
	}
	if t, ok := byType[qt]; ok {
		return t
	}
	return DefaultResponse
}

// Responder builds fallback answers.
type Responder struct {
	wrapper *tone.Wrapper
}

// NewResponder creates a Responder that wraps answers with w.
func NewResponder(w *tone.Wrapper) *Responder {
	return &Responder{wrapper: w}
}

// Respond returns a canned answer when one exists, otherwise a template for
// the classification. previous is the user's last question when the current
// one is a follow-up, or "".
func (r *Responder) Respond(question string, c classify.Result, previous string) string {
	if direct, ok := answers.Lookup(question); ok {
		return direct
	}

	response := Template(c.Subject, c.Type)
	if previous != "" {
		response = "Based on our discussion about " + previous + ", " + response
	}

	return r.wrapper.Wrap(tone.Templated, c.Sentiment, response)
}
