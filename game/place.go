// Package game implements the Santorini turn state machine: a phase-tagged
// Game type per spec §9's guidance for languages without generic phase
// tags — PlaceOne, PlaceTwo, Move, Build, and Victory are distinct struct
// types, and legal transitions are the only way to get from one to the
// next.
package game

import "github.com/jbrot/santorini-ai/board"

// GamePlaceOne is the game immediately after setup: PlayerOne places both
// of its pawns.
type GamePlaceOne struct {
	b      board.Board
	active board.Player
	st     stamp
}

// NewGame starts a fresh game on an empty board with PlayerOne to place.
func NewGame() GamePlaceOne {
	b := board.NewBoard()
	g := GamePlaceOne{b: b, active: board.PlayerOne}
	g.st = computeStamp(b, nil, g.active)
	return g
}

func (g GamePlaceOne) Board() board.Board   { return g.b }
func (g GamePlaceOne) Player() board.Player { return g.active }

// PlaceAction is a validated placement of two pawns, bound to the Game it
// was derived from.
type PlaceAction struct {
	pos1, pos2 board.Point
	st         stamp
}

// CanPlace validates a placement of two distinct pawns on empty cells.
func (g GamePlaceOne) CanPlace(p1, p2 board.Point) (PlaceAction, bool) {
	if p1 == p2 {
		return PlaceAction{}, false
	}
	return PlaceAction{pos1: p1, pos2: p2, st: g.st}, true
}

// Apply places PlayerOne's two pawns and advances to PlaceTwo.
func (g GamePlaceOne) Apply(a PlaceAction) GamePlaceTwo {
	checkStamp(a.st, g.st)
	next := GamePlaceTwo{
		b:        g.b,
		player1a: a.pos1,
		player1b: a.pos2,
		active:   g.active.Other(),
	}
	next.st = computeStamp(next.b, []board.Point{next.player1a, next.player1b}, next.active)
	return next
}

// Resign converts a non-terminal state to Victory for the opponent.
// Resignation before both players have placed their pawns has no meaningful
// board snapshot to hand to the winner (the four-distinct-pawns invariant
// Victory carries can't be satisfied yet), so it is only exposed on Move
// and Build, the phases where all four pawns are on the board.

// GamePlaceTwo is the game after PlayerOne has placed; PlayerTwo places
// next.
type GamePlaceTwo struct {
	b                  board.Board
	player1a, player1b board.Point
	active             board.Player
	st                 stamp
}

func (g GamePlaceTwo) Board() board.Board      { return g.b }
func (g GamePlaceTwo) Player() board.Player    { return g.active }
func (g GamePlaceTwo) Player1Locs() (board.Point, board.Point) {
	return g.player1a, g.player1b
}

// CanPlace validates a placement of two distinct pawns on cells not already
// occupied by PlayerOne's pawns.
func (g GamePlaceTwo) CanPlace(p1, p2 board.Point) (PlaceAction, bool) {
	if p1 == p2 {
		return PlaceAction{}, false
	}
	occupied := []board.Point{g.player1a, g.player1b}
	for _, o := range occupied {
		if p1 == o || p2 == o {
			return PlaceAction{}, false
		}
	}
	return PlaceAction{pos1: p1, pos2: p2, st: g.st}, true
}

// Apply places PlayerTwo's two pawns and advances to Move, with PlayerOne
// to move first.
func (g GamePlaceTwo) Apply(a PlaceAction) GameMove {
	checkStamp(a.st, g.st)
	next := GameMove{
		b:        g.b,
		player1a: g.player1a,
		player1b: g.player1b,
		player2a: a.pos1,
		player2b: a.pos2,
		active:   g.active.Other(),
	}
	next.st = computeStamp(next.b, next.allPawns(), next.active)
	return next
}
