package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary = lipgloss.Color("#6366F1") // indigo
	Text    = lipgloss.Color("#E2E8F0")
	TextDim = lipgloss.Color("#8A94A6")
	Error   = lipgloss.Color("#EF4444")
	BgCard  = lipgloss.Color("#1A2233")
	Border  = lipgloss.Color("#2E3A4F")

	math    = lipgloss.Color("#2DD4BF") // teal
	science = lipgloss.Color("#60A5FA") // blue
	history = lipgloss.Color("#F59E0B") // amber
)

var subjectColors = map[string]color.Color{
	"math":    math,
	"science": science,
	"history": history,
	"error":   Error,
}

var (
	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	UserLabel  = lipgloss.NewStyle().Foreground(math).Bold(true)
	TutorLabel = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// Selected marks a key the user can press; Suggestion is the text it
	// would send.
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Suggestion = lipgloss.NewStyle().Foreground(history)
)

// SubjectColor is the accent for an answer category. "general" and
// anything unknown are dimmed.
func SubjectColor(subject string) color.Color {
	if c, ok := subjectColors[subject]; ok {
		return c
	}
	return TextDim
}

func SubjectBadge(subject string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SubjectColor(subject)).Bold(true)
}
