// Package session runs an interactive two player game on top of the rules
// engine. A Session consumes one line of player input at a time and
// answers with the text to show, so the same game flow drives both the
// line prompt and the full screen front end.
package session

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/boardfile"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// Player facing messages.
const (
	MsgSelectFrom = "Select a piece to move by specifying the row then the column, separated by whitespace. Then press enter:"
	MsgSelectTo   = "Enter the square to which you would like to move this piece:"
	MsgBadInput   = "Input not received in proper format."
	MsgTryAgain   = "Try again please:"
	MsgPlayAgain  = "Play Again? Enter Yes (Y) or Quit (Q)"
	MsgStalemate  = "Stalemate. Nobody wins."
	MsgGoodbye    = "Thanks for playing. Bye bye now!"
)

// Phase is the point of the game flow a session is waiting at.
type Phase int

const (
	// SelectFrom waits for the square of the piece to move.
	SelectFrom Phase = iota
	// SelectTo waits for the destination of the selected piece.
	SelectTo
	// GameOver waits for the play again answer.
	GameOver
	// Finished means the player quit; further input is ignored.
	Finished
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case SelectTo:
		return "select-to"
	case GameOver:
		return "game-over"
	case Finished:
		return "finished"
	}
	return "select-from"
}

// Options configures a Session.
type Options struct {
	// Checkpoint is the board file written each time a position is
	// presented. Empty disables checkpoints.
	Checkpoint string
	// Render controls how boards are drawn in replies.
	Render render.Options
	// HideBoard leaves the board out of replies, for front ends that draw
	// it themselves.
	HideBoard bool
}

// Reply is the output of one step of the game flow.
type Reply struct {
	Lines []string
	// Quit is set once the player has left the game.
	Quit bool
}

// String joins the reply lines.
func (r Reply) String() string {
	return strings.Join(r.Lines, "\n")
}

func (r *Reply) add(format string, args ...interface{}) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Session holds the state of one interactive game.
type Session struct {
	board   chess.Board
	history []chess.Board
	phase   Phase
	from    chess.Square
	opts    Options
	rng     *rand.Rand
}

// New creates a session starting from board. rng supplies the random moves.
func New(board chess.Board, opts Options, rng *rand.Rand) *Session {
	return &Session{board: board, opts: opts, rng: rng}
}

// Board returns the current position.
func (s *Session) Board() chess.Board { return s.board }

// Phase returns what the session is waiting for.
func (s *Session) Phase() Phase { return s.phase }

// Selected returns the square chosen in the select-from phase.
func (s *Session) Selected() (chess.Square, bool) {
	return s.from, s.phase == SelectTo
}

// History returns the number of positions that can be undone.
func (s *Session) History() int { return len(s.history) }

// Start presents the opening position.
func (s *Session) Start() Reply {
	var r Reply
	s.present(&r)
	return r
}

// Handle processes one line of player input.
func (s *Session) Handle(line string) Reply {
	var r Reply
	cmd := ParseCommand(line)

	switch s.phase {
	case Finished:
		r.Quit = true
	case GameOver:
		s.handleGameOver(cmd, &r)
	case SelectTo:
		s.handleSelectTo(cmd, &r)
	default:
		s.handleSelectFrom(cmd, &r)
	}
	return r
}

func (s *Session) handleSelectFrom(cmd Command, r *Reply) {
	switch cmd.Kind {
	case CmdSquare:
		if err := engine.ValidateFrom(s.board, cmd.Square, s.board.ToMove); err != nil {
			s.reject(r, err.Error())
			return
		}
		s.from = cmd.Square
		s.phase = SelectTo
		r.add(MsgSelectTo)
	case CmdBack:
		// Nothing is selected yet
	default:
		if msg, ok := s.common(cmd, r); !ok {
			s.reject(r, msg)
		}
	}
}

func (s *Session) handleSelectTo(cmd Command, r *Reply) {
	switch cmd.Kind {
	case CmdSquare:
		if err := engine.Validate(s.board, s.from, cmd.Square, s.board.ToMove); err != nil {
			s.reject(r, err.Error())
			r.add(MsgSelectTo)
			return
		}
		s.push()
		s.board = engine.Apply(s.board, s.from, cmd.Square)
		r.add("\n\n")
		s.present(r)
	case CmdBack:
		s.present(r)
	default:
		if msg, ok := s.common(cmd, r); !ok {
			s.reject(r, msg)
			r.add(MsgSelectTo)
		}
	}
}

// common handles the commands accepted in both selection phases. It
// returns a rejection message and false when the command failed.
func (s *Session) common(cmd Command, r *Reply) (string, bool) {
	switch cmd.Kind {
	case CmdQuit:
		s.quit(r)
	case CmdUndo:
		s.undo()
		s.present(r)
	case CmdRandom:
		move, ok := engine.RandomMove(s.board, s.rng)
		if !ok {
			return errors.ErrNoLegalMove.Error(), false
		}
		r.add("Moving %s to %s", s.glyph(s.board.Get(move.From)), move.To)
		s.push()
		s.board = engine.Apply(s.board, move.From, move.To)
		s.present(r)
	case CmdSave:
		if err := boardfile.Save(cmd.File, s.board); err != nil {
			return err.Error(), false
		}
		s.present(r)
	case CmdLoad:
		board, err := boardfile.Load(cmd.File)
		if err != nil {
			return err.Error(), false
		}
		s.board = board
		s.present(r)
	default:
		return MsgBadInput, false
	}
	return "", true
}

func (s *Session) handleGameOver(cmd Command, r *Reply) {
	switch cmd.Kind {
	case CmdYes:
		s.board = chess.NewBoard()
		s.history = nil
		s.present(r)
	case CmdQuit:
		s.quit(r)
	default:
		r.add(MsgPlayAgain)
	}
}

// present shows the current position and moves to the phase it calls for:
// select-from while the side to move has a legal move, game over otherwise.
func (s *Session) present(r *Reply) {
	if s.opts.Checkpoint != "" {
		if err := boardfile.Save(s.opts.Checkpoint, s.board); err != nil {
			r.add("%v", err)
		}
	}

	colour := s.board.ToMove

	switch engine.Status(s.board) {
	case engine.Checkmate:
		s.phase = GameOver
		r.add("%s wins!", colour.Opposite())
		s.showBoard(r)
		r.add(MsgPlayAgain)
		return
	case engine.Stalemate:
		s.phase = GameOver
		r.add(MsgStalemate)
		s.showBoard(r)
		r.add(MsgPlayAgain)
		return
	}

	s.phase = SelectFrom
	r.add("Turn: %d, %s to move.", s.board.Turn, colour)
	if king, ok := s.board.FindKing(colour); ok {
		if n := engine.CountAttackers(s.board, king, colour); n > 0 {
			r.add("%s's king is in check by %d opposing pieces.", colour, n)
		}
	}
	s.showBoard(r)
	r.add(MsgSelectFrom)
}

func (s *Session) showBoard(r *Reply) {
	if !s.opts.HideBoard {
		r.add("%s", render.Render(s.board, s.opts.Render))
	}
}

func (s *Session) reject(r *Reply, msg string) {
	r.add("%s %s", msg, MsgTryAgain)
}

func (s *Session) quit(r *Reply) {
	s.phase = Finished
	r.Quit = true
	r.add(MsgGoodbye)
}

func (s *Session) push() {
	s.history = append(s.history, s.board)
}

// undo restores the position before the last move. With no history the
// board is left as it is.
func (s *Session) undo() {
	if n := len(s.history); n > 0 {
		s.board = s.history[n-1]
		s.history = s.history[:n-1]
	}
}

func (s *Session) glyph(p chess.Piece) string {
	if s.opts.Render.Plain {
		return string(p.Letter())
	}
	return p.String()
}

// RunLines drives the session as a line prompt, reading commands from in
// and writing replies to out until the player quits or in is exhausted.
func (s *Session) RunLines(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, s.Start()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		reply := s.Handle(scanner.Text())
		if len(reply.Lines) > 0 {
			if _, err := fmt.Fprintln(out, reply); err != nil {
				return err
			}
		}
		if reply.Quit {
			return nil
		}
	}
	return scanner.Err()
}
