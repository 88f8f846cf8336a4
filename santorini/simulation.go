package santorini

import (
	xrand "golang.org/x/exp/rand"

	"github.com/jbrot/santorini-ai/board"
	"github.com/jbrot/santorini-ai/game"
)

// Simulation is the default semi-greedy rollout: at each ply it takes an
// immediate win if one exists for the player to move, and otherwise picks a
// uniformly random non-winning continuation via reservoir sampling. It
// returns +1.0/-1.0 (never an intermediate value) from the perspective of
// the player who moved into the node being scored.
type Simulation struct{}

func (Simulation) Simulate(n Node, rng *xrand.Rand) float64 {
	if n.IsVictory {
		return 1.0
	}

	g := n.MoveState
	entryPlayer := g.Player()
	for {
		r := findAction(g, rng)
		if r.won {
			if r.winner == entryPlayer {
				return -1.0
			}
			return 1.0
		}
		g = r.next
	}
}

type scanResult struct {
	winner board.Player
	won    bool
	next   game.GameMove
}

// findAction scans every (move, build) pair for g's active player in
// neighbor-table order. If any pair wins outright it reports that
// immediately; otherwise it returns a uniformly chosen non-winning
// continuation, selected by reservoir sampling (rng.Float64() < 1.0/count)
// as each candidate is discovered — the vacated cell a pawn just moved from
// is always a legal build target (it was not Capped while the pawn stood
// on it, and is adjacent and now unoccupied), so at least one non-winning
// continuation always exists whenever no move wins outright.
func findAction(g game.GameMove, rng *xrand.Rand) scanResult {
	scanner := g.Player()
	var choice game.GameMove
	count := 0.0

	for _, pawn := range g.ActivePawns() {
		for _, mv := range pawn.Actions() {
			moveOutcome := g.Apply(mv)
			if moveOutcome.Won() {
				return scanResult{winner: scanner, won: true}
			}
			bg := moveOutcome.Build()
			for _, ba := range bg.ActivePawn().Actions() {
				buildOutcome := bg.Apply(ba)
				if buildOutcome.Won() {
					return scanResult{winner: scanner, won: true}
				}
				count++
				if rng.Float64() < 1.0/count {
					choice = buildOutcome.Move()
				}
			}
		}
	}
	return scanResult{next: choice}
}
