package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainbytes/internal/router"
	"github.com/abhisek/brainbytes/internal/screen"
	"github.com/abhisek/brainbytes/internal/store"
	"github.com/abhisek/brainbytes/internal/ui/layout"
	"github.com/abhisek/brainbytes/internal/ui/theme"
)

// pageSize is how many recent messages the screen loads.
const pageSize = 200

// subjectFilters is the cycle order of the "f" key.
var subjectFilters = []string{"", "math", "science", "history", "general"}

type historyLoadedMsg struct {
	Subject string
	Pairs   []Pair
	Err     error
}

// Pair is a stored question with its answer. Answer is nil when only the
// question was saved.
type Pair struct {
	Question store.Message
	Answer   *store.Message
}

// Pairs groups messages by pair ID, keeping the order of first appearance.
func Pairs(msgs []store.Message) []Pair {
	index := make(map[string]int)
	var pairs []Pair
	for _, m := range msgs {
		i, ok := index[m.PairID]
		if !ok {
			i = len(pairs)
			index[m.PairID] = i
			pairs = append(pairs, Pair{})
		}
		if m.IsUser {
			pairs[i].Question = m
		} else {
			a := m
			pairs[i].Answer = &a
		}
	}
	return pairs
}

// HistoryScreen lists the stored conversation for one user, newest first.
type HistoryScreen struct {
	messages store.MessageRepo
	userID   string
	filter   int
	pairs    []Pair
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(messages store.MessageRepo, userID string) *HistoryScreen {
	return &HistoryScreen{
		messages: messages,
		userID:   userID,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	subject := subjectFilters[s.filter]
	repo, userID := s.messages, s.userID
	return func() tea.Msg {
		msgs, err := repo.List(context.Background(), store.MessageFilter{
			Subject: subject,
			UserID:  userID,
			Limit:   pageSize,
		})
		if err != nil {
			return historyLoadedMsg{Subject: subject, Err: err}
		}
		pairs := Pairs(msgs)
		for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		}
		return historyLoadedMsg{Subject: subject, Pairs: pairs}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

// Status is the subject filter, empty when showing every subject.
func (s *HistoryScreen) Status() string {
	return subjectFilters[s.filter]
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Expand"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "F", Description: "Filter subject"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Subject != subjectFilters[s.filter] {
			return s, nil
		}
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.pairs = msg.Pairs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.pairs)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		case "f":
			s.filter = (s.filter + 1) % len(subjectFilters)
			s.selected = 0
			s.expanded = make(map[int]bool)
			s.loaded = false
			return s, s.load()
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.pairs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Ask a question!")
	}

	var b strings.Builder
	b.WriteString("\n")

	lineWidth := max(width-6, 10)
	for i, p := range s.pairs {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		subject := "pending"
		if p.Answer != nil {
			subject = p.Answer.Category
		}
		when := p.Question.CreatedAt.Local().Format("Jan 02 15:04")
		badge := theme.SubjectBadge(subject).Render(fmt.Sprintf("%-8s", subject))
		question := strings.ReplaceAll(p.Question.Text, "\n", " ")

		line := fmt.Sprintf("%s%s  %s  %s", prefix, theme.Hint.Render(when), badge, style.Render(question))
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(line))
		b.WriteString("\n")

		if s.expanded[i] && p.Answer != nil {
			b.WriteString(lipgloss.NewStyle().
				Width(lineWidth).PaddingLeft(6).Foreground(theme.TextDim).
				Render(p.Answer.Text))
			b.WriteString("\n")
		}
	}

	lines := strings.Split(b.String(), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
