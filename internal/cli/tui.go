package cli

import (
	"sync/atomic"

	"github.com/alexanderramin/studyai/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
)

// programRelay forwards timer callbacks into a running program. Callbacks
// posted before the program is stored are dropped.
type programRelay struct {
	program atomic.Pointer[tea.Program]
}

func (r *programRelay) post(fn func()) {
	if p := r.program.Load(); p != nil {
		p.Send(scheduledMsg{fn: fn})
	}
}

// runTUI starts the full-screen interface and blocks until it exits.
func runTUI(app *App) error {
	relay := &programRelay{}
	loop := schedule.NewPosting(relay.post)
	defer loop.Close()

	m := newAppModel(app, loop)
	defer m.state.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	relay.program.Store(p)
	_, err := p.Run()
	return err
}
