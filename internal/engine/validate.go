// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateFrom checks that from is on the board and holds a piece of colour.
func ValidateFrom(board chess.Board, from chess.Square, colour chess.Colour) error {
	if !from.InBounds() {
		return &errors.MoveError{Reason: errors.ReasonOutOfBounds, From: from, Square: from}
	}
	piece := board.Get(from)
	if !piece.IsPiece() {
		return &errors.MoveError{Reason: errors.ReasonNoPiece, From: from}
	}
	if piece.Colour != colour {
		return &errors.MoveError{Reason: errors.ReasonNotYourPiece, From: from}
	}
	return nil
}

// Validate decides whether colour may move the piece on from to to. It
// returns nil for a legal move and a *errors.MoveError otherwise. The
// board is not modified. colour must have a king on the board.
func Validate(board chess.Board, from, to chess.Square, colour chess.Colour) error {
	if err := ValidateFrom(board, from, colour); err != nil {
		return err
	}
	if !to.InBounds() {
		return &errors.MoveError{Reason: errors.ReasonOutOfBounds, From: from, To: to, Square: to}
	}
	if target := board.Get(to); target.IsPiece() {
		if target.Type == chess.King {
			return illegal(errors.ReasonCaptureKing, from, to)
		}
		if target.Colour == colour {
			return illegal(errors.ReasonSquareOccupied, from, to)
		}
	}
	if err := CanMove(board, from, to); err != nil {
		return err
	}

	king, ok := board.FindKing(colour)
	errors.Precondition(ok, "Validate", "%v has no king", colour)

	checking := AttackersOf(board, king, colour)
	moveDir, moveHasDir := DirectionOf(from, to)

	if from == king {
		return validateKingMove(board, from, to, colour, checking, moveDir)
	}

	pinDir, pinned := PinDirection(board, from, king, colour)
	switch {
	case pinned && len(checking) == 0:
		// A pinned piece may slide along the pin, up to and including the pinner
		if moveHasDir && moveDir == pinDir {
			return nil
		}
		return illegal(errors.ReasonPinned, from, to)

	case pinned:
		// Even capturing or blocking the checker would expose the king to the pinner
		return illegal(errors.ReasonPinnedInCheck, from, to)

	case len(checking) == 0:
		return nil

	case len(checking) == 1:
		attacker := checking[0]
		if to == attacker {
			return nil
		}
		if _, aligned := DirectionOf(attacker, king); aligned && containsSquare(PathBetween(attacker, king), to) {
			return nil
		}
		// Knight and pawn checks have no path to block
		return illegal(errors.ReasonStillInCheck, from, to)

	default:
		return illegal(errors.ReasonMustMoveKing, from, to)
	}
}

// validateKingMove applies the rules for moving the king itself.
func validateKingMove(board chess.Board, from, to chess.Square, colour chess.Colour, checking []chess.Square, moveDir Direction) error {
	if CountAttackers(board, to, colour) > 0 {
		if len(checking) > 0 {
			return illegal(errors.ReasonStillInCheck, from, to)
		}
		return illegal(errors.ReasonSelfCheck, from, to)
	}

	// Retreating straight away from a sliding checker: the scan from to was
	// shielded by the king still standing on from.
	for _, attacker := range checking {
		attackDir, ok := DirectionOf(attacker, from)
		if !ok {
			continue // knights have no line
		}
		if attackDir == moveDir {
			return illegal(errors.ReasonStillInCheck, from, to)
		}
	}
	return nil
}

// IsLegal reports whether Validate accepts the move.
func IsLegal(board chess.Board, from, to chess.Square, colour chess.Colour) bool {
	return Validate(board, from, to, colour) == nil
}

func illegal(reason errors.Reason, from, to chess.Square) error {
	return &errors.MoveError{Reason: reason, From: from, To: to}
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
