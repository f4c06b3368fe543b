// Package tutor answers one question end to end: classification, the
// direct answer table, the remote generator with its template fallback,
// follow-up suggestions and the per-user conversation context.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/brainbytes/internal/answers"
	"github.com/abhisek/brainbytes/internal/classify"
	"github.com/abhisek/brainbytes/internal/convo"
	"github.com/abhisek/brainbytes/internal/fallback"
	"github.com/abhisek/brainbytes/internal/followup"
	"github.com/abhisek/brainbytes/internal/llm"
	"github.com/abhisek/brainbytes/internal/prompt"
	"github.com/abhisek/brainbytes/internal/tone"
)

// AnonymousUser is the context key used when no user id is given.
const AnonymousUser = "anonymous"

// DefaultRemoteTimeout bounds a single generator call.
const DefaultRemoteTimeout = 5 * time.Second

// PurposeAnswer labels generator calls made for a tutoring answer.
const PurposeAnswer = "answer"

// Source says where the response text came from.
type Source string

const (
	SourceDirect   Source = "direct"
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Outcome is the terminal state of one Handle call.
type Outcome string

const (
	OutcomeDirectHit        Outcome = "DIRECT_HIT"
	OutcomeRemoteOK         Outcome = "REMOTE_OK"
	OutcomeRemoteHTTPError  Outcome = "REMOTE_HTTP_ERROR"
	OutcomeRemoteBadPayload Outcome = "REMOTE_BAD_PAYLOAD"
	OutcomeRemoteException  Outcome = "REMOTE_EXCEPTION"
)

// Result is the answer to one question.
type Result struct {
	Subject           classify.Subject      `json:"category"`
	QuestionType      classify.QuestionType `json:"questionType"`
	Sentiment         classify.Sentiment    `json:"sentiment"`
	Response          string                `json:"response"`
	FollowUpQuestions []string              `json:"followUpQuestions"`
	IsFollowUp        bool                  `json:"isFollowUp"`
	Source            Source                `json:"source"`
	Outcome           Outcome               `json:"outcome"`
}

// Options configures a Tutor.
type Options struct {
	// Generator produces remote answers. Nil sends every non-direct
	// question to the fallback templates.
	Generator llm.Provider

	// Contexts holds per-user history. Defaults to an unbounded store.
	Contexts *convo.Store

	// Rand drives wrapper selection and follow-up shuffling. Defaults to a
	// randomly seeded source.
	Rand *rand.Rand

	// RemoteTimeout bounds each generator call. Defaults to
	// DefaultRemoteTimeout.
	RemoteTimeout time.Duration

	// MaxTokens is passed to chat-style generators. Zero leaves the
	// provider default.
	MaxTokens int

	Logger logrus.FieldLogger
}

// Tutor is safe for concurrent use.
type Tutor struct {
	generator llm.Provider
	contexts  *convo.Store
	wrapper   *tone.Wrapper
	fallback  *fallback.Responder
	followUps *followup.Generator
	timeout   time.Duration
	maxTokens int
	log       logrus.FieldLogger
}

// New creates a Tutor from opts.
func New(opts Options) *Tutor {
	contexts := opts.Contexts
	if contexts == nil {
		contexts = convo.NewStore(convo.Options{})
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	timeout := opts.RemoteTimeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	// Each consumer locks its own source, so derive one apiece.
	wrapper := tone.NewWrapper(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
	return &Tutor{
		generator: opts.Generator,
		contexts:  contexts,
		wrapper:   wrapper,
		fallback:  fallback.NewResponder(wrapper),
		followUps: followup.NewGenerator(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))),
		timeout:   timeout,
		maxTokens: opts.MaxTokens,
		log:       logger,
	}
}

// Contexts returns the conversation store the tutor updates.
func (t *Tutor) Contexts() *convo.Store {
	return t.contexts
}

// Handle answers question for userID. It never fails: remote errors fall
// back to the template bank.
func (t *Tutor) Handle(ctx context.Context, question, userID string) Result {
	if userID == "" {
		userID = AnonymousUser
	}

	c := classify.Classify(question)
	history := t.contexts.Get(userID)
	isFollowUp := convo.IsFollowUp(history, question)

	result := Result{
		Subject:      c.Subject,
		QuestionType: c.Type,
		Sentiment:    c.Sentiment,
		IsFollowUp:   isFollowUp,
	}

	if direct, ok := answers.Lookup(question); ok {
		result.Response = direct
		result.Source = SourceDirect
		result.Outcome = OutcomeDirectHit
	} else {
		previous := ""
		if isFollowUp {
			previous = history.PreviousQuestion()
		}

		text, err := t.generate(ctx, prompt.Format(question, c.Subject, c.Type, previous))
		if err != nil {
			result.Outcome = outcomeOf(err)
			result.Source = SourceFallback
			result.Response = t.fallback.Respond(question, c, previous)
			t.log.WithFields(logrus.Fields{
				"user":    userID,
				"subject": c.Subject,
				"outcome": result.Outcome,
			}).WithError(err).Warn("remote generation failed, using fallback")
		} else {
			result.Outcome = OutcomeRemoteOK
			result.Source = SourceRemote
			text = t.wrapper.Wrap(tone.Generated, c.Sentiment, text)
			if isFollowUp {
				text = tone.ContextPrefix(text, previous, question)
			}
			result.Response = text
		}
	}

	result.FollowUpQuestions = t.followUps.Generate(c.Subject, c.Type)
	t.contexts.Update(userID, question, result.Response, c.Subject)
	t.contexts.SetFollowUps(userID, result.FollowUpQuestions)

	t.log.WithFields(logrus.Fields{
		"user":    userID,
		"subject": c.Subject,
		"outcome": result.Outcome,
	}).Debug("question answered")

	return result
}

// generate makes exactly one generator call. A panic inside the provider
// is returned as an error.
func (t *Tutor) generate(ctx context.Context, text string) (_ string, err error) {
	if t.generator == nil {
		return "", &llm.ErrProviderUnavailable{Err: errors.New("no generator configured")}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &llm.ErrProviderUnavailable{Err: fmt.Errorf("generator panic: %v", r)}
		}
	}()

	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, PurposeAnswer), t.timeout)
	defer cancel()

	req := llm.UserPrompt(text)
	req.MaxTokens = t.maxTokens

	resp, err := t.generator.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", &llm.ErrInvalidResponse{Err: errors.New("empty generated text")}
	}
	return resp.Text, nil
}

func outcomeOf(err error) Outcome {
	var httpErr *llm.ErrHTTPStatus
	if errors.As(err, &httpErr) {
		return OutcomeRemoteHTTPError
	}
	var invErr *llm.ErrInvalidResponse
	if errors.As(err, &invErr) {
		return OutcomeRemoteBadPayload
	}
	return OutcomeRemoteException
}
