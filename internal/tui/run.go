package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/chessrules-go/internal/render"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// Run shows sess full screen until the player quits.
func Run(sess *session.Session, display render.Options) error {
	p := tea.NewProgram(NewModel(sess, display), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
