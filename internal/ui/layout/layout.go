package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainbytes/internal/ui/theme"
)

// Smallest terminal the chat can be drawn in.
const (
	MinWidth  = 60
	MinHeight = 16
)

type KeyHint struct {
	Key         string
	Description string
}

// Frame is the chrome around a screen: a header bar with the brand, the
// screen title and a status badge, and a footer bar of key hints.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
	Width  int
	Height int
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Render draws the frame around body, which is called with the space left
// between header and footer. A terminal below the minimum size gets a
// resize notice instead.
func (f Frame) Render(body func(width, height int) string) string {
	if IsTooSmall(f.Width, f.Height) {
		return tooSmall(f.Width, f.Height)
	}
	header := f.header()
	footer := f.footer()
	h := max(f.Height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().Width(f.Width).Height(h).Render(body(f.Width, h))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (f Frame) header() string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  BrainBytes")
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	status := ""
	if f.Status != "" {
		status = theme.SubjectBadge(f.Status).Render(f.Status) + "  "
	}

	// Center the title across the bar, leaving at least one space on
	// either side of it.
	inner := max(f.Width-4, 0)
	bw, tw, sw := lipgloss.Width(brand), lipgloss.Width(title), lipgloss.Width(status)
	left := max((inner-tw)/2-bw, 1)
	right := max(inner-bw-left-tw-sw, 1)

	return bar.Width(f.Width).Render(brand + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + status)
}

func (f Frame) footer() string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(f.Hints))
	for i, h := range f.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(f.Width).Render("  " + strings.Join(parts, "   "))
}

func tooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height))
}
