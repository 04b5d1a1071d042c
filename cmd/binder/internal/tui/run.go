package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/pkg/uithread"
)

// Run hosts s until the user quits or the root frame is closed. The calling
// goroutine becomes the UI thread for the duration.
func Run(s *session.Session, opts ...tea.ProgramOption) error {
	release := uithread.Enter()
	defer release()

	m := New(s)
	p := tea.NewProgram(m, opts...)
	uithread.RegisterDispatch(func(callback func()) {
		p.Send(DispatchMsg(callback))
	})
	defer uithread.RegisterDispatch(nil)

	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}
