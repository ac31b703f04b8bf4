package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowsyncsolutions/pixelpress/internal/engine"
	"github.com/flowsyncsolutions/pixelpress/internal/storage"
)

// RunBoard opens the live dashboard. It records one session in the
// metrics ledger, then keeps the view fresh two ways: a 1-second tick
// inside the program, and a store watcher that pushes a refresh when
// another process (the CLI, a game) mutates shared state.
func RunBoard(svc *engine.Service, out io.Writer) error {
	svc.SessionStart()

	m := newBoardModel(svc)
	p := tea.NewProgram(m, tea.WithOutput(out))

	stopWatch := storage.Watch(svc.Store(), 1500*time.Millisecond, func() {
		p.Send(externalChangeMsg{})
	})
	defer stopWatch()

	_, err := p.Run()
	return err
}
