package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainbytes/internal/ui/theme"
)

// MaxQuestionLength caps what a learner can type in one question.
const MaxQuestionLength = 500

// TextInput wraps bubbles/textinput with a prompt and BrainBytes styling.
type TextInput struct {
	Model    textinput.Model
	disabled bool
}

// NewTextInput creates a focused question input.
func NewTextInput(placeholder string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = MaxQuestionLength
	ti.Prompt = "› "
	ti.Focus()
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Input is ignored while disabled.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.disabled {
		if _, ok := msg.(tea.KeyMsg); ok {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input at the given width.
func (t TextInput) View(width int) string {
	t.Model.SetWidth(max(width-4, 10))
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)
	if t.disabled {
		style = style.BorderForeground(theme.Border)
	}
	return style.Render(t.Model.View())
}

// Value returns the trimmed input.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// SetDisabled blocks typing, e.g. while an answer is pending.
func (t *TextInput) SetDisabled(d bool) {
	t.disabled = d
}

// Disabled reports whether typing is blocked.
func (t TextInput) Disabled() bool {
	return t.disabled
}
