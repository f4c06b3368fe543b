// Package tone adapts answer text to the asker's mood and to the ongoing
// conversation.
package tone

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"sync"

	"github.com/abhisek/brainbytes/internal/classify"
	"github.com/abhisek/brainbytes/internal/convo"
)

// Set holds four wrapper formats per non-neutral sentiment. Each format
// has exactly one %s verb for the answer.
type Set struct {
	Frustrated [4]string
	Confused   [4]string
	Excited    [4]string
}

func (s Set) formats(sentiment classify.Sentiment) ([4]string, bool) {
	switch sentiment {
	case classify.SentimentFrustrated:
		return s.Frustrated, true
	case classify.SentimentConfused:
		return s.Confused, true
	case classify.SentimentExcited:
		return s.Excited, true
	}
	return [4]string{}, false
}

// Generated wraps answers produced by a text generator.
var Generated = Set{
	Frustrated: [4]string{
		"I understand this might be frustrating. Let me clarify: %s",
		"I sense your frustration. Here's a clearer explanation: %s",
		"I appreciate your patience. Let me try a better approach: %s",
		"I'm sorry this is challenging. Let me explain differently: %s",
	},
	Confused: [4]string{
		"I see you might be a bit confused. Let me explain more clearly: %s",
		"Let me break this down more simply: %s",
		"This can be tricky to understand. Here's a clearer explanation: %s",
		"Let me simplify this concept: %s",
	},
	Excited: [4]string{
		"I'm glad you're interested in this! %s",
		"Your enthusiasm is great! Here's what you want to know: %s",
		"It's exciting to explore this topic! %s",
		"I love your interest in learning! %s",
	},
}

// Templated wraps answers taken from the fallback template bank.
var Templated = Set{
	Frustrated: [4]string{
		"I understand this might be frustrating. Let me try to help: %s",
		"I sense your frustration. Here's a clearer explanation: %s",
		"I appreciate your patience. Let me try a better approach: %s",
		"I'm sorry this is challenging. Let me explain differently: %s",
	},
	Confused: [4]string{
		"I see you might be looking for clearer information. Let me explain: %s",
		"This concept can be confusing. Here's a more straightforward explanation: %s",
		"Let me break this down more simply: %s",
		"I understand that might be unclear. Here's a different way to think about it: %s",
	},
	Excited: [4]string{
		"I'm glad you're interested in this! %s",
		"Your enthusiasm for learning is wonderful! %s",
		"It's exciting to explore this topic together! %s",
		"I share your interest in this fascinating subject! %s",
	},
}

// Wrapper picks sentiment wrappers uniformly at random. It is safe for
// concurrent use.
type Wrapper struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewWrapper creates a Wrapper drawing from rng.
func NewWrapper(rng *rand.Rand) *Wrapper {
	return &Wrapper{rng: rng}
}

// Wrap embeds response in a randomly chosen wrapper from set. Neutral
// sentiment returns response unchanged.
func (w *Wrapper) Wrap(set Set, sentiment classify.Sentiment, response string) string {
	formats, ok := set.formats(sentiment)
	if !ok {
		return response
	}

	w.mu.Lock()
	i := w.rng.IntN(len(formats))
	w.mu.Unlock()

	return fmt.Sprintf(formats[i], response)
}

var barePronoun = regexp.MustCompile(`(?i)^(it|this|that|they|them|these|those)\b`)

// ContextPrefix names the previous question in front of response when the
// current question is too short or too vague to stand alone.
func ContextPrefix(response, previousQuestion, question string) string {
	if convo.WordCount(question) <= 4 || barePronoun.MatchString(question) {
		return fmt.Sprintf("Regarding your question about \"%s\": %s", previousQuestion, response)
	}
	return response
}
