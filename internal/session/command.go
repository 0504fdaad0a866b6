package session

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// CommandKind identifies a player command.
type CommandKind int

const (
	CmdInvalid CommandKind = iota
	CmdSquare
	CmdBack
	CmdQuit
	CmdYes
	CmdUndo
	CmdRandom
	CmdSave
	CmdLoad
)

// String returns the name of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdSquare:
		return "square"
	case CmdBack:
		return "back"
	case CmdQuit:
		return "quit"
	case CmdYes:
		return "yes"
	case CmdUndo:
		return "undo"
	case CmdRandom:
		return "random"
	case CmdSave:
		return "save"
	case CmdLoad:
		return "load"
	}
	return "invalid"
}

// Command is one parsed line of player input.
type Command struct {
	Kind CommandKind
	// Square is the zero-based square for CmdSquare. It may be off the board.
	Square chess.Square
	// File is the file name for CmdSave and CmdLoad, possibly empty.
	File string
}

// ParseCommand interprets a line of input. Keywords are matched first, then
// the save and load prefixes, then a pair of 1-based coordinates.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	switch line {
	case "r":
		return Command{Kind: CmdRandom}
	case "b", "B":
		return Command{Kind: CmdBack}
	case "q", "Q":
		return Command{Kind: CmdQuit}
	case "y", "Y", "yes", "Yes":
		return Command{Kind: CmdYes}
	case "u", "U":
		return Command{Kind: CmdUndo}
	}

	switch {
	case strings.HasPrefix(line, "s"):
		return Command{Kind: CmdSave, File: strings.TrimSpace(strings.TrimLeft(line, "s"))}
	case strings.HasPrefix(line, "l"):
		return Command{Kind: CmdLoad, File: strings.TrimSpace(strings.TrimLeft(line, "l"))}
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{Kind: CmdInvalid}
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{Kind: CmdInvalid}
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{Kind: CmdInvalid}
	}
	return Command{Kind: CmdSquare, Square: chess.Sq(row-1, col-1)}
}
