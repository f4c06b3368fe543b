package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainbytes/internal/classify"
	"github.com/abhisek/brainbytes/internal/router"
	"github.com/abhisek/brainbytes/internal/store"
	"github.com/abhisek/brainbytes/internal/tutor"
)

// stubTutor answers every question with a fixed result.
type stubTutor struct {
	mu     sync.Mutex
	result tutor.Result
	asked  []string
	users  []string
}

func (s *stubTutor) Handle(_ context.Context, question, userID string) tutor.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, question)
	s.users = append(s.users, userID)
	return s.result
}

// memRepo is an in-memory store.MessageRepo.
type memRepo struct {
	msgs      []*store.Message
	appendErr error
}

func (m *memRepo) Append(_ context.Context, msgs ...*store.Message) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.msgs = append(m.msgs, msgs...)
	return nil
}
func (m *memRepo) List(context.Context, store.MessageFilter) ([]store.Message, error) {
	out := make([]store.Message, 0, len(m.msgs))
	for _, msg := range m.msgs {
		out = append(out, *msg)
	}
	return out, nil
}
func (m *memRepo) Stats(context.Context, int) (*store.LearningStats, error) {
	return &store.LearningStats{}, nil
}
func (m *memRepo) Clear(context.Context) (int, error) { return 0, nil }

func scienceAnswer() tutor.Result {
	return tutor.Result{
		Subject:           classify.SubjectScience,
		QuestionType:      classify.TypeDefinition,
		Sentiment:         classify.SentimentNeutral,
		Response:          "Photosynthesis turns light into chemical energy.",
		FollowUpQuestions: []string{"What is chlorophyll?", "Why are leaves green?", "Where does the oxygen come from?"},
		Source:            tutor.SourceDirect,
	}
}

func keyPress(r rune) tea.Msg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.Msg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *ChatScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

// findAnswer runs cmd and any batched commands, skipping spinner ticks,
// until an answerReadyMsg turns up.
func findAnswer(t *testing.T, cmd tea.Cmd) answerReadyMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	switch msg := cmd().(type) {
	case answerReadyMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if m, ok := c().(answerReadyMsg); ok {
				return m
			}
		}
	}
	t.Fatal("no answerReadyMsg produced")
	return answerReadyMsg{}
}

func TestAskShowsThinkingThenAnswer(t *testing.T) {
	tt := &stubTutor{result: scienceAnswer()}
	repo := &memRepo{}
	s := New(tt, repo, "u1")

	typeText(s, "what is photosynthesis")
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if !s.thinking {
		t.Fatal("expected thinking while the answer is pending")
	}
	if s.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", s.input.Value())
	}
	if view := s.View(80, 30); !strings.Contains(view, "Thinking") {
		t.Error("expected thinking indicator in view")
	}

	msg := findAnswer(t, cmd)
	s.Update(msg)

	if s.thinking {
		t.Error("expected thinking cleared after answer")
	}
	if len(tt.asked) != 1 || tt.asked[0] != "what is photosynthesis" {
		t.Errorf("unexpected questions asked: %v", tt.asked)
	}
	if tt.users[0] != "u1" {
		t.Errorf("expected user u1, got %q", tt.users[0])
	}
	view := s.View(80, 30)
	for _, want := range []string{"what is photosynthesis", "Photosynthesis turns light", "[science]", "What is chlorophyll?"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if s.Status() != "science" {
		t.Errorf("expected status science, got %q", s.Status())
	}
}

func TestAnswerIsPersistedAsPair(t *testing.T) {
	repo := &memRepo{}
	s := New(&stubTutor{result: scienceAnswer()}, repo, "")

	msg := s.answer("what is photosynthesis")().(answerReadyMsg)
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if len(repo.msgs) != 2 {
		t.Fatalf("expected 2 stored messages, got %d", len(repo.msgs))
	}
	q, a := repo.msgs[0], repo.msgs[1]
	if !q.IsUser || a.IsUser {
		t.Error("expected question then answer")
	}
	if q.PairID == "" || q.PairID != a.PairID {
		t.Errorf("expected shared pair id, got %q and %q", q.PairID, a.PairID)
	}
	if q.UserID != tutor.AnonymousUser {
		t.Errorf("expected anonymous user, got %q", q.UserID)
	}
	if a.Category != "science" || len(a.FollowUpQuestions) != 3 {
		t.Errorf("unexpected answer record: %+v", a)
	}
}

func TestPersistFailureIsShownButAnswerKept(t *testing.T) {
	repo := &memRepo{appendErr: errors.New("disk full")}
	s := New(&stubTutor{result: scienceAnswer()}, repo, "u1")

	_, cmd := s.ask("what is photosynthesis")
	s.Update(findAnswer(t, cmd))

	view := s.View(80, 30)
	if !strings.Contains(view, "disk full") {
		t.Error("expected persistence error in view")
	}
	if !strings.Contains(view, "Photosynthesis turns light") {
		t.Error("expected answer shown despite persistence error")
	}
}

func TestBlankQuestionIgnored(t *testing.T) {
	s := New(&stubTutor{}, nil, "u1")
	typeText(s, "   ")
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("expected no command for blank question")
	}
	if len(s.exchanges) != 0 {
		t.Error("expected no exchange for blank question")
	}
}

func TestSecondQuestionIgnoredWhileThinking(t *testing.T) {
	s := New(&stubTutor{result: scienceAnswer()}, nil, "u1")
	s.ask("first")
	_, cmd := s.ask("second")

	if cmd != nil {
		t.Error("expected no command while an answer is pending")
	}
	if len(s.exchanges) != 1 {
		t.Errorf("expected 1 exchange, got %d", len(s.exchanges))
	}
}

func TestTypingBlockedWhileThinking(t *testing.T) {
	s := New(&stubTutor{result: scienceAnswer()}, nil, "u1")
	s.ask("first")
	typeText(s, "abc")

	if s.input.Model.Value() != "" {
		t.Errorf("expected typing ignored while thinking, got %q", s.input.Model.Value())
	}
}

func TestAltNumberAsksSuggestion(t *testing.T) {
	tt := &stubTutor{result: scienceAnswer()}
	s := New(tt, nil, "u1")

	_, cmd := s.ask("what is photosynthesis")
	s.Update(findAnswer(t, cmd))

	_, cmd = s.Update(tea.KeyPressMsg{Code: '2', Mod: tea.ModAlt})
	s.Update(findAnswer(t, cmd))

	if len(tt.asked) != 2 || tt.asked[1] != "Why are leaves green?" {
		t.Errorf("expected second suggestion asked, got %v", tt.asked)
	}
}

func TestPlainDigitsAreTyped(t *testing.T) {
	s := New(&stubTutor{result: scienceAnswer()}, nil, "u1")
	_, cmd := s.ask("what is photosynthesis")
	s.Update(findAnswer(t, cmd))

	typeText(s, "2+2")
	if s.input.Value() != "2+2" {
		t.Errorf("expected digits typed into input, got %q", s.input.Value())
	}
}

func TestAltNumberWithoutSuggestionIsNoop(t *testing.T) {
	s := New(&stubTutor{}, nil, "u1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt})
	if cmd != nil {
		t.Error("expected no command without suggestions")
	}
}

func TestCtrlHPushesHistory(t *testing.T) {
	s := New(&stubTutor{}, &memRepo{}, "u1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "History" {
		t.Errorf("expected History screen, got %q", push.Screen.Title())
	}
}

func TestCtrlHWithoutStoreIsNoop(t *testing.T) {
	s := New(&stubTutor{}, nil, "u1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	if cmd != nil {
		t.Error("expected no history without a store")
	}
}

func TestWelcomeShownBeforeFirstQuestion(t *testing.T) {
	s := New(&stubTutor{}, nil, "")
	if !strings.Contains(s.View(80, 20), "BrainBytes tutor") {
		t.Error("expected welcome text")
	}
}

func TestTranscriptFitsHeight(t *testing.T) {
	s := New(&stubTutor{result: scienceAnswer()}, nil, "u1")
	for i := 0; i < 10; i++ {
		_, cmd := s.ask("question")
		s.Update(findAnswer(t, cmd))
	}
	out := s.renderTranscript(80, 12)
	if n := len(strings.Split(out, "\n")); n > 12 {
		t.Errorf("expected at most 12 lines, got %d", n)
	}

	s.Update(specialKey(tea.KeyPgUp))
	if s.scroll == 0 {
		t.Error("expected pgup to scroll back")
	}
	s.Update(specialKey(tea.KeyPgDown))
	if s.scroll != 0 {
		t.Errorf("expected pgdown back to bottom, got %d", s.scroll)
	}
}
