// Package tui is the full screen front end: the board, a scrolling log of
// the game flow and a prompt, on top of a session.Session.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessrules-go/internal/render"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const maxLogLines = 200

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Model is the bubbletea model wrapping a session.
type Model struct {
	sess     *session.Session
	display  render.Options
	input    textinput.Model
	logLines []string

	width  int
	height int
}

// NewModel returns a model for sess. The session should be created with
// HideBoard set, since the model draws the board itself.
func NewModel(sess *session.Session, display render.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "row col"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	m := Model{sess: sess, display: display, input: ti}
	m.appendReply(sess.Start())
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			m.appendLog("> " + line)
			reply := m.sess.Handle(line)
			m.appendReply(reply)
			if reply.Quit {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) appendReply(r session.Reply) {
	for _, line := range r.Lines {
		for _, ln := range strings.Split(strings.TrimRight(line, "\n"), "\n") {
			m.appendLog(ln)
		}
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) status() string {
	b := m.sess.Board()
	status := fmt.Sprintf("turn %d  %s to move  [%s]", b.Turn, b.ToMove, m.sess.Phase())
	if from, ok := m.sess.Selected(); ok {
		status += "  selected " + from.String()
	}
	return status
}

func (m Model) View() string {
	header := titleStyle.Render("chessrules  " + m.status())

	boardBox := boxStyle.Render(render.Render(m.sess.Board(), m.display))

	logHeight := max(5, m.height-8)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logWidth := max(20, m.width-lipgloss.Width(boardBox)-2)
	logBox := boxStyle.Width(logWidth).Height(logHeight).Render(logBody)

	body := lipgloss.JoinHorizontal(lipgloss.Top, boardBox, logBox)
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(m.input.View())

	return header + "\n" + body + "\n" + inputBox + "\n"
}
