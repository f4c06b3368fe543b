package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainbytes/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen. The root screen is never closed.
type PopScreenMsg struct{}

// Router keeps the stack of open screens.
//
// Key, mouse and paste input goes to the top screen only. Any other
// message is handed to every screen on the stack, so an answer that
// arrives while the history is open still reaches the chat below it.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) Pop() {
	if n := len(r.stack); n > 1 {
		r.stack[n-1] = nil
		r.stack = r.stack[:n-1]
	}
}

// Active is the top screen.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case tea.KeyMsg, tea.MouseMsg, tea.PasteMsg:
		return r.updateAt(len(r.stack)-1, msg)
	}

	var cmds []tea.Cmd
	for i := range r.stack {
		cmds = append(cmds, r.updateAt(i, msg))
	}
	return tea.Batch(cmds...)
}

func (r *Router) updateAt(i int, msg tea.Msg) tea.Cmd {
	next, cmd := r.stack[i].Update(msg)
	r.stack[i] = next
	return cmd
}

// View renders the top screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
