package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainbytes/internal/ui/theme"
)

const welcomeText = "Hi! I'm your BrainBytes tutor. Ask me anything about math, science or history."

func (s *ChatScreen) View(width, height int) string {
	input := s.input.View(width - 2)

	var status string
	switch {
	case s.thinking:
		status = "  " + s.spinner.View() + " " + theme.Hint.Render("Thinking...")
	case s.errMsg != "":
		status = "  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)
	default:
		status = s.renderSuggestions(width)
	}

	bottom := status + "\n" + input
	transcriptHeight := max(height-lipgloss.Height(bottom)-1, 0)

	return s.renderTranscript(width, transcriptHeight) + "\n" + bottom
}

// renderTranscript renders the conversation and keeps the last height lines,
// shifted by the scroll offset.
func (s *ChatScreen) renderTranscript(width, height int) string {
	textWidth := max(width-6, 10)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth).PaddingLeft(4)

	var b strings.Builder
	if len(s.exchanges) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Italic(true).Render(welcomeText))
		b.WriteString("\n")
	}

	for _, ex := range s.exchanges {
		b.WriteString("\n")
		b.WriteString("  " + theme.UserLabel.Render("You"))
		b.WriteString("\n")
		b.WriteString(body.Render(ex.question))
		b.WriteString("\n\n")

		label := "  " + theme.TutorLabel.Render("Tutor")
		if ex.pending {
			b.WriteString(label + "\n")
			b.WriteString(body.Foreground(theme.TextDim).Render("..."))
			b.WriteString("\n")
			continue
		}
		b.WriteString(label + "  " + renderBadges(ex))
		b.WriteString("\n")
		b.WriteString(body.Render(ex.result.Response))
		b.WriteString("\n")
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	maxScroll := max(len(lines)-height, 0)
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := len(lines) - s.scroll
	start := max(end-height, 0)
	return strings.Join(lines[start:end], "\n")
}

func renderBadges(ex exchange) string {
	r := ex.result
	subject := string(r.Subject)
	parts := []string{theme.SubjectBadge(subject).Render("[" + subject + "]")}
	if r.QuestionType != "" {
		parts = append(parts, theme.Hint.Render("["+string(r.QuestionType)+"]"))
	}
	if r.IsFollowUp {
		parts = append(parts, theme.Hint.Render("(follow-up)"))
	}
	return strings.Join(parts, " ")
}

func (s *ChatScreen) renderSuggestions(width int) string {
	sugg := s.suggestions()
	if len(sugg) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("  " + theme.Hint.Render("You might also ask:"))
	for i, q := range sugg {
		line := fmt.Sprintf("  %s %s", theme.Selected.Render(fmt.Sprintf("alt+%d", i+1)), theme.Suggestion.Render(q))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(line))
	}
	return b.String()
}
