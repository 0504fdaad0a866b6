package engine

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// RandomMove picks a legal move for the side to move using rng. The pieces
// are tried in a random order and the first one with any legal destination
// moves to one of them chosen uniformly. It reports false when the side to
// move has no legal move.
func RandomMove(board chess.Board, rng *rand.Rand) (chess.Move, bool) {
	colour := board.ToMove
	pieces := board.FindPieces(colour)
	rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	for _, from := range pieces {
		targets := LegalDestinations(board, from, colour)
		if len(targets) == 0 {
			continue
		}
		return chess.Move{From: from, To: targets[rng.Intn(len(targets))]}, true
	}
	return chess.Move{}, false
}
