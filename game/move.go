package game

import "github.com/jbrot/santorini-ai/board"

// GameMove is the game waiting for the active player to move one of its two
// pawns.
type GameMove struct {
	b                                          board.Board
	player1a, player1b, player2a, player2b     board.Point
	active                                     board.Player
	st                                         stamp
}

func (g GameMove) Board() board.Board   { return g.b }
func (g GameMove) Player() board.Player { return g.active }

func (g GameMove) allPawns() []board.Point {
	return []board.Point{g.player1a, g.player1b, g.player2a, g.player2b}
}

func (g GameMove) activePawnLocs() [2]board.Point {
	if g.active == board.PlayerOne {
		return [2]board.Point{g.player1a, g.player1b}
	}
	return [2]board.Point{g.player2a, g.player2b}
}

// PlayerPawns returns the two pawn locations belonging to which.
func (g GameMove) PlayerPawns(which board.Player) (board.Point, board.Point) {
	if which == board.PlayerOne {
		return g.player1a, g.player1b
	}
	return g.player2a, g.player2b
}

// Pawn wraps a specific board location as the active player's piece,
// exposing the legal-move queries for it.
type Pawn struct {
	game GameMove
	pos  board.Point
}

// Pos returns the pawn's location.
func (pw Pawn) Pos() board.Point { return pw.pos }

// ActivePawns returns the active player's two pawns.
func (g GameMove) ActivePawns() []Pawn {
	locs := g.activePawnLocs()
	return []Pawn{{game: g, pos: locs[0]}, {game: g, pos: locs[1]}}
}

// MoveAction is a validated single-step move of one active pawn, bound to
// the Game it was derived from.
type MoveAction struct {
	from, to board.Point
	st       stamp
}

func levelLimit(h board.CoordLevel) board.CoordLevel {
	switch h {
	case board.Ground:
		return board.One
	case board.One:
		return board.Two
	case board.Two:
		return board.Three
	default:
		panic("game: a pawn can never stand on Three or Capped")
	}
}

// CanMove validates a one-step move to an adjacent, unoccupied cell whose
// height is at most one more than the pawn's current height.
func (pw Pawn) CanMove(to board.Point) (MoveAction, bool) {
	g := pw.game
	if board.Distance(pw.pos, to) != 1 {
		return MoveAction{}, false
	}
	limit := levelLimit(g.b.LevelAt(pw.pos))
	cb := board.NewCompositeBoard(g.b, g.allPawns())
	if !cb.Reachable(to, limit) {
		return MoveAction{}, false
	}
	return MoveAction{from: pw.pos, to: to, st: g.st}, true
}

// Actions enumerates every legal move for this pawn, in neighbor-table
// order.
func (pw Pawn) Actions() []MoveAction {
	var out []MoveAction
	for _, n := range board.Neighbors(pw.pos) {
		if a, ok := pw.CanMove(n); ok {
			out = append(out, a)
		}
	}
	return out
}

func (g GameMove) withPawnAt(from, to board.Point) GameMove {
	next := g
	switch {
	case g.player1a == from:
		next.player1a = to
	case g.player1b == from:
		next.player1b = to
	case g.player2a == from:
		next.player2a = to
	case g.player2b == from:
		next.player2b = to
	default:
		panic("game: moving pawn not found among the four tracked pawns")
	}
	return next
}

// MoveOutcome is the result of applying a MoveAction: either the game
// continues to the Build phase, or the moving pawn reached height Three and
// the game is over.
type MoveOutcome struct {
	build   GameBuild
	victory GameVictory
	won     bool
}

// Won reports whether this outcome ended the game.
func (o MoveOutcome) Won() bool { return o.won }

// Build returns the resulting Build-phase game. Valid only if !Won().
func (o MoveOutcome) Build() GameBuild { return o.build }

// Victory returns the resulting terminal game. Valid only if Won().
func (o MoveOutcome) Victory() GameVictory { return o.victory }

// Apply moves the pawn. A move onto a Three ends the game immediately,
// before any build: the destination's height is checked against the board
// as it stood before the move (moving never changes board height).
func (g GameMove) Apply(a MoveAction) MoveOutcome {
	checkStamp(a.st, g.st)

	if g.b.LevelAt(a.to) == board.Three {
		next := g.withPawnAt(a.from, a.to)
		v := GameVictory{
			b:        next.b,
			player1a: next.player1a,
			player1b: next.player1b,
			player2a: next.player2a,
			player2b: next.player2b,
			winner:   g.active,
		}
		return MoveOutcome{victory: v, won: true}
	}

	next := g.withPawnAt(a.from, a.to)
	build := GameBuild{
		b:         next.b,
		player1a:  next.player1a,
		player1b:  next.player1b,
		player2a:  next.player2a,
		player2b:  next.player2b,
		active:    g.active,
		activeLoc: a.to,
	}
	build.st = computeStamp(build.b, build.allPawns(), build.active)
	return MoveOutcome{build: build, won: false}
}

// Resign ends the game immediately with the opponent as winner.
func (g GameMove) Resign() GameVictory {
	return GameVictory{
		b:        g.b,
		player1a: g.player1a,
		player1b: g.player1b,
		player2a: g.player2a,
		player2b: g.player2b,
		winner:   g.active.Other(),
	}
}
