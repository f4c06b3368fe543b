package tutor

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/abhisek/brainbytes/internal/answers"
	"github.com/abhisek/brainbytes/internal/classify"
	"github.com/abhisek/brainbytes/internal/convo"
	"github.com/abhisek/brainbytes/internal/fallback"
	"github.com/abhisek/brainbytes/internal/followup"
	"github.com/abhisek/brainbytes/internal/llm"
)

func newTestTutor(gen llm.Provider) (*Tutor, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(Options{
		Generator:     gen,
		Contexts:      convo.NewStore(convo.Options{}),
		Rand:          rand.New(rand.NewPCG(1, 2)),
		RemoteTimeout: 200 * time.Millisecond,
		Logger:        logger,
	}), hook
}

func TestHandle_DirectHitBypassesGenerator(t *testing.T) {
	for _, q := range []string{"what is 1+1", "WHAT IS 1+1", "What Is 1+1"} {
		t.Run(q, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: "should not be used"})
			tu, _ := newTestTutor(mock)

			got := tu.Handle(context.Background(), q, "u1")

			want, _ := answers.Lookup("what is 1+1")
			if got.Response != want {
				t.Errorf("Response = %q, want canned answer", got.Response)
			}
			if mock.CallCount() != 0 {
				t.Errorf("CallCount = %d, want 0", mock.CallCount())
			}
			if got.Outcome != OutcomeDirectHit || got.Source != SourceDirect {
				t.Errorf("Outcome/Source = %s/%s", got.Outcome, got.Source)
			}
			if got.Subject != classify.SubjectMath {
				t.Errorf("Subject = %s, want math", got.Subject)
			}
		})
	}
}

func TestHandle_RemoteOK(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Photosynthesis turns light into sugar."})
	tu, _ := newTestTutor(mock)

	got := tu.Handle(context.Background(), "explain how photosynthesis works", "u1")

	if got.Response != "Photosynthesis turns light into sugar." {
		t.Errorf("Response = %q", got.Response)
	}
	if got.Outcome != OutcomeRemoteOK || got.Source != SourceRemote {
		t.Errorf("Outcome/Source = %s/%s", got.Outcome, got.Source)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req, _ := mock.LastCall()
	if !strings.Contains(req.Prompt(), "explain how photosynthesis works") {
		t.Errorf("prompt %q does not contain the question", req.Prompt())
	}
	if !strings.HasPrefix(req.Prompt(), "Explain thoroughly how this works") {
		t.Errorf("prompt %q lacks the explanation instruction", req.Prompt())
	}
}

func TestHandle_RemoteSentimentWrapping(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Cells divide by mitosis."})
	tu, _ := newTestTutor(mock)

	got := tu.Handle(context.Background(), "I'm confused, explain how cells divide", "u1")

	if got.Sentiment != classify.SentimentConfused {
		t.Fatalf("Sentiment = %s, want confused", got.Sentiment)
	}
	if got.Response == "Cells divide by mitosis." {
		t.Error("confused sentiment should wrap the response")
	}
	if !strings.Contains(got.Response, "Cells divide by mitosis.") {
		t.Errorf("wrapped response %q lost the original text", got.Response)
	}
}

func TestHandle_FailuresUseFallback(t *testing.T) {
	const question = "what is quantum entanglement"

	tests := []struct {
		name    string
		resp    llm.MockResponse
		outcome Outcome
	}{
		{"http status", llm.MockResponse{Err: &llm.ErrHTTPStatus{StatusCode: 503}}, OutcomeRemoteHTTPError},
		{"bad payload", llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("no generated_text")}}, OutcomeRemoteBadPayload},
		{"empty text", llm.MockResponse{Text: "   "}, OutcomeRemoteBadPayload},
		{"transport", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}}, OutcomeRemoteException},
		{"rate limit", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("slow down")}}, OutcomeRemoteException},
		{"plain error", llm.MockResponse{Err: errors.New("boom")}, OutcomeRemoteException},
		{"panic", llm.MockResponse{Panic: "kaboom"}, OutcomeRemoteException},
		{"timeout", llm.MockResponse{Text: "late", Delay: 5 * time.Second}, OutcomeRemoteException},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			tu, hook := newTestTutor(mock)

			got := tu.Handle(context.Background(), question, "u1")

			if got.Outcome != tt.outcome {
				t.Errorf("Outcome = %s, want %s", got.Outcome, tt.outcome)
			}
			if got.Source != SourceFallback {
				t.Errorf("Source = %s, want fallback", got.Source)
			}
			want := fallback.Template(classify.SubjectScience, classify.TypeDefinition)
			if got.Response != want {
				t.Errorf("Response = %q, want science/definition template", got.Response)
			}
			if mock.CallCount() != 1 {
				t.Errorf("CallCount = %d, want exactly 1 (no retries)", mock.CallCount())
			}

			var warned bool
			for _, e := range hook.AllEntries() {
				if e.Level == logrus.WarnLevel && e.Data["outcome"] == tt.outcome {
					warned = true
				}
			}
			if !warned {
				t.Error("expected a warning log with the outcome")
			}
		})
	}
}

func TestHandle_NoGeneratorUsesFallback(t *testing.T) {
	tu, _ := newTestTutor(nil)
	got := tu.Handle(context.Background(), "tell me about the roman empire", "")
	if got.Source != SourceFallback || got.Response == "" {
		t.Errorf("got %+v", got)
	}
}

func TestHandle_TimeoutRespectsRemoteBound(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "late", Delay: time.Minute})
	tu, _ := newTestTutor(mock)

	start := time.Now()
	got := tu.Handle(context.Background(), "what is an element", "u1")
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Handle took %s, want it bounded by the remote timeout", elapsed)
	}
	if got.Source != SourceFallback {
		t.Errorf("Source = %s, want fallback", got.Source)
	}
}

func TestHandle_AnonymousUser(t *testing.T) {
	tu, _ := newTestTutor(llm.NewMockProvider(llm.MockResponse{Text: "answer"}))
	tu.Handle(context.Background(), "what is a cell", "")

	c := tu.Contexts().Get(AnonymousUser)
	if c.PreviousQuestion() != "what is a cell" {
		t.Errorf("anonymous context = %+v", c)
	}
}

func TestHandle_UpdatesContext(t *testing.T) {
	tu, _ := newTestTutor(llm.NewMockProvider())

	got := tu.Handle(context.Background(), "what is pi", "u1")
	c := tu.Contexts().Get("u1")

	if c.PreviousQuestion() != "what is pi" {
		t.Errorf("PreviousQuestion = %q", c.PreviousQuestion())
	}
	if len(c.RecentResponses) != 1 || c.RecentResponses[0] != got.Response {
		t.Errorf("RecentResponses = %v", c.RecentResponses)
	}
	if len(c.RecentCategories) != 1 || c.RecentCategories[0] != got.Subject {
		t.Errorf("RecentCategories = %v", c.RecentCategories)
	}
	if strings.Join(c.FollowUps, "|") != strings.Join(got.FollowUpQuestions, "|") {
		t.Errorf("FollowUps = %v, want %v", c.FollowUps, got.FollowUpQuestions)
	}
}

func TestHandle_HistoryCapped(t *testing.T) {
	tu, _ := newTestTutor(llm.NewMockProvider())
	for i := 0; i < 10; i++ {
		tu.Handle(context.Background(), "what is pi", "u1")
	}
	c := tu.Contexts().Get("u1")
	if len(c.RecentQuestions) != convo.MaxHistory {
		t.Errorf("len(RecentQuestions) = %d, want %d", len(c.RecentQuestions), convo.MaxHistory)
	}
}

func TestHandle_FollowUpFlag(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "An atom is the smallest unit of an element."},
		llm.MockResponse{Text: "Atoms bond by sharing electrons."},
	)
	tu, _ := newTestTutor(mock)

	first := tu.Handle(context.Background(), "what is an atom in chemistry", "u1")
	if first.IsFollowUp {
		t.Error("first question cannot be a follow-up")
	}

	second := tu.Handle(context.Background(), "it broke", "u1")
	if !second.IsFollowUp {
		t.Fatal("short pronoun question after history should be a follow-up")
	}

	req, _ := mock.LastCall()
	if !strings.Contains(req.Prompt(), `Previous question: "what is an atom in chemistry"`) {
		t.Errorf("follow-up prompt %q lacks previous question", req.Prompt())
	}
	if !strings.HasPrefix(second.Response, `Regarding your question about "what is an atom in chemistry": `) {
		t.Errorf("Response = %q, want context prefix", second.Response)
	}
	if !strings.Contains(second.Response, "Atoms bond by sharing electrons.") {
		t.Errorf("Response = %q lost the generated text", second.Response)
	}
}

func TestHandle_FollowUpFallbackUsesContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "The Roman Empire lasted centuries."},
		llm.MockResponse{Err: &llm.ErrHTTPStatus{StatusCode: 500}},
	)
	tu, _ := newTestTutor(mock)

	tu.Handle(context.Background(), "tell me about the roman empire", "u1")
	got := tu.Handle(context.Background(), "why did it fall", "u1")

	if !got.IsFollowUp {
		t.Fatal("expected follow-up")
	}
	if !strings.HasPrefix(got.Response, "Based on our discussion about tell me about the roman empire, ") {
		t.Errorf("Response = %q, want discussion prefix", got.Response)
	}
}

func TestHandle_FollowUpSuggestions(t *testing.T) {
	tu, _ := newTestTutor(llm.NewMockProvider())
	got := tu.Handle(context.Background(), "what is an atom", "u1")

	if len(got.FollowUpQuestions) == 0 || len(got.FollowUpQuestions) > followup.MaxSuggestions {
		t.Fatalf("FollowUpQuestions = %v", got.FollowUpQuestions)
	}
	allowed := map[string]bool{}
	for _, c := range followup.Candidates(got.Subject, got.QuestionType) {
		allowed[c] = true
	}
	seen := map[string]bool{}
	for _, q := range got.FollowUpQuestions {
		if !allowed[q] {
			t.Errorf("suggestion %q not a candidate", q)
		}
		if seen[q] {
			t.Errorf("duplicate suggestion %q", q)
		}
		seen[q] = true
	}
}

func TestHandle_Concurrent(t *testing.T) {
	mock := llm.NewMockProvider()
	for i := 0; i < 50; i++ {
		mock.AddResponse(llm.MockResponse{Text: "ok"})
	}
	tu, _ := newTestTutor(mock)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := []string{"a", "b", "c"}[i%3]
			if r := tu.Handle(context.Background(), "explain gravity", user); r.Response == "" {
				t.Errorf("empty response for %s", user)
			}
		}(i)
	}
	wg.Wait()

	if mock.CallCount() != 50 {
		t.Errorf("CallCount = %d, want 50", mock.CallCount())
	}
	if tu.Contexts().Len() != 3 {
		t.Errorf("Len = %d, want 3", tu.Contexts().Len())
	}
}

func TestHandle_PurposeLabel(t *testing.T) {
	var purpose string
	gen := providerFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		purpose = llm.PurposeFrom(ctx)
		if _, ok := ctx.Deadline(); !ok {
			t.Error("generator context has no deadline")
		}
		return &llm.Response{Text: "ok"}, nil
	})
	tu, _ := newTestTutor(gen)
	tu.Handle(context.Background(), "explain gravity", "u1")

	if purpose != PurposeAnswer {
		t.Errorf("purpose = %q, want %q", purpose, PurposeAnswer)
	}
}

type providerFunc func(context.Context, llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
