package game

import "github.com/jbrot/santorini-ai/board"

// GameVictory is the terminal state: both players' final pawn positions and
// the winner.
type GameVictory struct {
	b                                      board.Board
	player1a, player1b, player2a, player2b board.Point
	winner                                 board.Player
}

func (g GameVictory) Board() board.Board   { return g.b }
func (g GameVictory) Winner() board.Player { return g.winner }

// PlayerPawns returns the two pawn locations belonging to which.
func (g GameVictory) PlayerPawns(which board.Player) (board.Point, board.Point) {
	if which == board.PlayerOne {
		return g.player1a, g.player1b
	}
	return g.player2a, g.player2b
}
