package game

import "github.com/jbrot/santorini-ai/board"

// GameBuild is the game waiting for the pawn that just moved to build on an
// adjacent cell.
type GameBuild struct {
	b                                      board.Board
	player1a, player1b, player2a, player2b board.Point
	active                                 board.Player
	activeLoc                              board.Point
	st                                     stamp
}

func (g GameBuild) Board() board.Board   { return g.b }
func (g GameBuild) Player() board.Player { return g.active }

func (g GameBuild) allPawns() []board.Point {
	return []board.Point{g.player1a, g.player1b, g.player2a, g.player2b}
}

// BuildPawn is the single pawn allowed to build this phase: the one that
// just moved.
type BuildPawn struct {
	game GameBuild
	pos  board.Point
}

// ActivePawn returns the pawn that must build.
func (g GameBuild) ActivePawn() BuildPawn {
	return BuildPawn{game: g, pos: g.activeLoc}
}

// Pos returns the building pawn's location.
func (bp BuildPawn) Pos() board.Point { return bp.pos }

// BuildAction is a validated single build on a cell adjacent to the active
// pawn, bound to the Game it was derived from.
type BuildAction struct {
	loc board.Point
	st  stamp
}

// CanBuild validates a build at an adjacent, unoccupied, not-yet-Capped
// cell. Occupancy is checked the same way move legality is (via
// CompositeBoard), so a pawn can never dome its own or an opponent's
// square. The cell the pawn just vacated is always unoccupied and in
// range, so building back onto it is allowed.
func (bp BuildPawn) CanBuild(loc board.Point) (BuildAction, bool) {
	g := bp.game
	if board.Distance(bp.pos, loc) != 1 {
		return BuildAction{}, false
	}
	cb := board.NewCompositeBoard(g.b, g.allPawns())
	if !cb.Reachable(loc, board.Three) {
		return BuildAction{}, false
	}
	return BuildAction{loc: loc, st: g.st}, true
}

// Actions enumerates every legal build for the active pawn, in
// neighbor-table order.
func (bp BuildPawn) Actions() []BuildAction {
	var out []BuildAction
	for _, n := range board.Neighbors(bp.pos) {
		if a, ok := bp.CanBuild(n); ok {
			out = append(out, a)
		}
	}
	return out
}

// BuildOutcome is the result of applying a BuildAction: either the turn
// passes to the other player, or that player has no legal move and the
// game is over by stalemate.
type BuildOutcome struct {
	move    GameMove
	victory GameVictory
	won     bool
}

// Won reports whether this outcome ended the game.
func (o BuildOutcome) Won() bool { return o.won }

// Move returns the resulting Move-phase game for the other player. Valid
// only if !Won().
func (o BuildOutcome) Move() GameMove { return o.move }

// Victory returns the resulting terminal game. Valid only if Won().
func (o BuildOutcome) Victory() GameVictory { return o.victory }

// Apply builds at loc, raising that cell's level, then hands the turn to
// the other player. If the other player has no legal move, the game ends
// by stalemate and the player who just built wins.
func (g GameBuild) Apply(a BuildAction) BuildOutcome {
	checkStamp(a.st, g.st)

	nb := g.b
	nb.Build(a.loc)

	next := GameMove{
		b:        nb,
		player1a: g.player1a,
		player1b: g.player1b,
		player2a: g.player2a,
		player2b: g.player2b,
		active:   g.active.Other(),
	}
	next.st = computeStamp(next.b, next.allPawns(), next.active)

	if !hasAnyMove(next) {
		v := GameVictory{
			b:        nb,
			player1a: g.player1a,
			player1b: g.player1b,
			player2a: g.player2a,
			player2b: g.player2b,
			winner:   g.active,
		}
		return BuildOutcome{victory: v, won: true}
	}
	return BuildOutcome{move: next, won: false}
}

func hasAnyMove(g GameMove) bool {
	for _, pw := range g.ActivePawns() {
		if len(pw.Actions()) > 0 {
			return true
		}
	}
	return false
}

// Resign ends the game immediately with the opponent as winner.
func (g GameBuild) Resign() GameVictory {
	return GameVictory{
		b:        g.b,
		player1a: g.player1a,
		player1b: g.player1b,
		player2a: g.player2a,
		player2b: g.player2b,
		winner:   g.active.Other(),
	}
}
