// Package convo tracks a short rolling conversation history per user so
// follow-up questions can be recognised and answered in context.
package convo

import (
	"strings"

	"github.com/abhisek/brainbytes/internal/classify"
)

// MaxHistory is the number of exchanges kept per user.
const MaxHistory = 5

// Context is one user's recent conversation. Slices are ordered
// most-recent-first.
type Context struct {
	RecentQuestions  []string
	RecentCategories []classify.Subject
	RecentResponses  []string
	FollowUps        []string
}

// Empty reports whether no question has been recorded yet.
func (c Context) Empty() bool {
	return len(c.RecentQuestions) == 0
}

// PreviousQuestion returns the most recent question, or "" if none.
func (c Context) PreviousQuestion() string {
	if c.Empty() {
		return ""
	}
	return c.RecentQuestions[0]
}

func (c Context) clone() Context {
	return Context{
		RecentQuestions:  append([]string(nil), c.RecentQuestions...),
		RecentCategories: append([]classify.Subject(nil), c.RecentCategories...),
		RecentResponses:  append([]string(nil), c.RecentResponses...),
		FollowUps:        append([]string(nil), c.FollowUps...),
	}
}

// push records an exchange at the front and drops anything past MaxHistory.
func (c *Context) push(question, response string, subject classify.Subject) {
	c.RecentQuestions = prepend(c.RecentQuestions, question)
	c.RecentCategories = prepend(c.RecentCategories, subject)
	c.RecentResponses = prepend(c.RecentResponses, response)
}

func prepend[T any](s []T, v T) []T {
	out := make([]T, 0, MaxHistory)
	out = append(out, v)
	out = append(out, s...)
	if len(out) > MaxHistory {
		out = out[:MaxHistory]
	}
	return out
}

// followUpIndicators are words that usually refer back to an earlier answer
// when they open a question.
var followUpIndicators = []string{
	"it", "this", "that", "they", "them", "these", "those",
	"he", "she", "his", "her", "its", "their",
	"why", "how", "when", "what about", "tell me more",
}

var connectives = []string{"", "and ", "so ", "but "}

// IsFollowUp reports whether question reads as a continuation of c.
// A question is a follow-up when history exists and it either opens with a
// reference word (optionally after "and", "so" or "but") or is four words
// or fewer.
func IsFollowUp(c Context, question string) bool {
	if c.Empty() {
		return false
	}

	q := strings.ToLower(question)
	for _, ind := range followUpIndicators {
		for _, conn := range connectives {
			if strings.HasPrefix(q, conn+ind+" ") {
				return true
			}
		}
	}

	return WordCount(question) <= 4
}

// WordCount counts space-separated fields the way the chat client does:
// consecutive spaces produce empty words, which still count.
func WordCount(s string) int {
	return len(strings.Split(s, " "))
}
