package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainbytes/internal/ui/layout"
)

// Screen is one page of the terminal UI. Screens are stacked by the
// router; only the top one is drawn and receives key presses.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body of the screen into width x height cells. The
	// header and footer are drawn around it.
	View(width, height int) string

	// Title is shown in the middle of the header bar.
	Title() string
}

// KeyHintProvider is implemented by screens that list their own keys in
// the footer. Others get DefaultHints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a badge on the right
// of the header bar.
type StatusProvider interface {
	Status() string
}

var DefaultHints = []layout.KeyHint{
	{Key: "Esc", Description: "Back"},
	{Key: "Ctrl+C", Description: "Quit"},
}

// Hints returns s's key hints, or DefaultHints.
func Hints(s Screen) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		return p.KeyHints()
	}
	return DefaultHints
}
