package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainbytes/internal/router"
	"github.com/abhisek/brainbytes/internal/screen"
	"github.com/abhisek/brainbytes/internal/screens/chat"
	"github.com/abhisek/brainbytes/internal/store"
	"github.com/abhisek/brainbytes/internal/ui/layout"
)

// Options configures the terminal chat UI.
type Options struct {
	Tutor chat.Answerer
	// Messages persists exchanges and backs the history screen. Optional.
	Messages store.MessageRepo
	// UserID keys conversation context. Empty means anonymous.
	UserID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	chat   *chat.ChatScreen
	width  int
	height int
}

// newAppModel creates a new AppModel with the chat screen at the root.
func newAppModel(opts Options) AppModel {
	c := chat.New(opts.Tutor, opts.Messages, opts.UserID)
	return AppModel{
		router: router.New(c),
		chat:   c,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width > 0 && m.height > 0 {
		v.SetContent(m.render())
	}
	return v
}

// render draws the active screen inside the header and footer bars.
func (m AppModel) render() string {
	active := m.router.Active()
	f := layout.Frame{
		Title:  active.Title(),
		Hints:  screen.Hints(active),
		Width:  m.width,
		Height: m.height,
	}
	if p, ok := active.(screen.StatusProvider); ok {
		f.Status = p.Status()
	}
	return f.Render(m.router.View)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
