package chat

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/brainbytes/internal/router"
	"github.com/abhisek/brainbytes/internal/screen"
	"github.com/abhisek/brainbytes/internal/screens/history"
	"github.com/abhisek/brainbytes/internal/store"
	"github.com/abhisek/brainbytes/internal/tutor"
	"github.com/abhisek/brainbytes/internal/ui/components"
	"github.com/abhisek/brainbytes/internal/ui/layout"
	"github.com/abhisek/brainbytes/internal/ui/theme"
)

// maxSuggestions is how many follow-ups can be picked with alt+1..alt+3.
const maxSuggestions = 3

// Answerer produces tutor answers.
type Answerer interface {
	Handle(ctx context.Context, question, userID string) tutor.Result
}

// exchange is one question and, once it arrives, its answer.
type exchange struct {
	question string
	result   tutor.Result
	pending  bool
}

// ChatScreen is the main conversation screen.
type ChatScreen struct {
	tutor    Answerer
	messages store.MessageRepo
	userID   string

	exchanges []exchange
	input     components.TextInput
	spinner   spinner.Model
	thinking  bool
	scroll    int // lines scrolled up from the bottom
	errMsg    string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen. messages may be nil, in which case nothing is
// persisted and the history screen is unavailable.
func New(t Answerer, messages store.MessageRepo, userID string) *ChatScreen {
	if userID == "" {
		userID = tutor.AnonymousUser
	}
	return &ChatScreen{
		tutor:    t,
		messages: messages,
		userID:   userID,
		input:    components.NewTextInput("Ask about math, science or history..."),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Chat"
}

// Status is the subject of the latest answer, if any.
func (s *ChatScreen) Status() string {
	for i := len(s.exchanges) - 1; i >= 0; i-- {
		if !s.exchanges[i].pending {
			return string(s.exchanges[i].result.Subject)
		}
	}
	return ""
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Ask"}}
	if len(s.suggestions()) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Alt+1-3", Description: "Follow-up"})
	}
	hints = append(hints, layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"})
	if s.messages != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+H", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerReadyMsg:
		return s.handleAnswer(msg)

	case spinner.TickMsg:
		if !s.thinking {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key := msg.String(); key {
	case "enter":
		return s.ask(s.input.Value())
	case "alt+1", "alt+2", "alt+3":
		idx := int(key[len(key)-1] - '1')
		if sugg := s.suggestions(); idx < len(sugg) {
			return s.ask(sugg[idx])
		}
		return s, nil
	case "pgup":
		s.scroll += 5
		return s, nil
	case "pgdown":
		s.scroll = max(s.scroll-5, 0)
		return s, nil
	case "ctrl+h":
		if s.messages == nil {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(s.messages, s.userID)}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// ask starts answering q in the background. Ignored while another answer
// is pending or when q is blank.
func (s *ChatScreen) ask(q string) (screen.Screen, tea.Cmd) {
	q = strings.TrimSpace(q)
	if q == "" || s.thinking {
		return s, nil
	}

	s.exchanges = append(s.exchanges, exchange{question: q, pending: true})
	s.input.Reset()
	s.input.SetDisabled(true)
	s.thinking = true
	s.scroll = 0
	s.errMsg = ""

	return s, tea.Batch(s.answer(q), s.spinner.Tick)
}

func (s *ChatScreen) answer(q string) tea.Cmd {
	t, repo, userID := s.tutor, s.messages, s.userID
	return func() tea.Msg {
		ctx := context.Background()
		result := t.Handle(ctx, q, userID)

		msg := answerReadyMsg{Question: q, Result: result}
		if repo != nil {
			pairID := uuid.NewString()
			err := repo.Append(ctx,
				tutor.QuestionMessage(pairID, userID, q),
				tutor.AnswerMessage(pairID, userID, result),
			)
			if err != nil {
				msg.Err = fmt.Errorf("save exchange: %w", err)
			}
		}
		return msg
	}
}

func (s *ChatScreen) handleAnswer(msg answerReadyMsg) (screen.Screen, tea.Cmd) {
	for i := len(s.exchanges) - 1; i >= 0; i-- {
		if s.exchanges[i].pending && s.exchanges[i].question == msg.Question {
			s.exchanges[i].result = msg.Result
			s.exchanges[i].pending = false
			break
		}
	}
	s.thinking = false
	s.input.SetDisabled(false)
	s.scroll = 0
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
	}
	return s, nil
}

// suggestions are the follow-ups offered with the latest answer.
func (s *ChatScreen) suggestions() []string {
	if s.thinking || len(s.exchanges) == 0 {
		return nil
	}
	last := s.exchanges[len(s.exchanges)-1]
	if len(last.result.FollowUpQuestions) > maxSuggestions {
		return last.result.FollowUpQuestions[:maxSuggestions]
	}
	return last.result.FollowUpQuestions
}
