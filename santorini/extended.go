package santorini

import (
	xrand "golang.org/x/exp/rand"

	"github.com/jbrot/santorini-ai/game"
)

// ExtendedSimulation is the backtracking rollout variant carried over from
// original_source/src/mcts/santorini.rs: when the greedy scan from the
// current ply finds only a losing continuation, it tries an alternate
// action from the previous ply before conceding, rather than taking the
// first forced loss at face value. It is never the default rollout — the
// spec names it an optional variant only — but is wired as a selectable
// mcts.SimulationPolicy for ai.Config.
type ExtendedSimulation struct{}

// possibleAction pairs a full-turn action's outcome with the resulting
// continuation (valid only if !won).
type possibleAction struct {
	won  bool
	next game.GameMove
}

func possibleActions(g game.GameMove) []possibleAction {
	var out []possibleAction
	for _, pawn := range g.ActivePawns() {
		for _, mv := range pawn.Actions() {
			moveOutcome := g.Apply(mv)
			if moveOutcome.Won() {
				out = append(out, possibleAction{won: true})
				continue
			}
			bg := moveOutcome.Build()
			for _, ba := range bg.ActivePawn().Actions() {
				buildOutcome := bg.Apply(ba)
				if buildOutcome.Won() {
					out = append(out, possibleAction{won: true})
					continue
				}
				out = append(out, possibleAction{next: buildOutcome.Move()})
			}
		}
	}
	return out
}

func shuffle(actions []possibleAction, rng *xrand.Rand) {
	for i := len(actions) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		actions[i], actions[j] = actions[j], actions[i]
	}
}

func (ExtendedSimulation) Simulate(n Node, rng *xrand.Rand) float64 {
	if n.IsVictory {
		return 1.0
	}

	g := n.MoveState
	player := g.Player()

	r := findAction(g, rng)
	if r.won {
		if r.winner == player {
			return -1.0
		}
		return 1.0
	}
	previous := g
	g = r.next

	for {
		r := findAction(g, rng)
		if !r.won {
			previous = g
			g = r.next
			continue
		}

		if alt, choice, ok := backtrack(previous, rng); ok {
			previous = alt
			g = choice
			continue
		}

		if r.winner == player {
			return -1.0
		}
		return 1.0
	}
}

// backtrack tries every action from g in random order, looking for one
// whose immediate continuation (alt) isn't itself a forced loss, and
// returns that continuation along with the next non-losing state reached
// from it (choice). The caller resumes play from alt/choice instead of the
// line that was about to force a loss.
func backtrack(g game.GameMove, rng *xrand.Rand) (alt, choice game.GameMove, ok bool) {
	actions := possibleActions(g)
	shuffle(actions, rng)
	for _, a := range actions {
		if a.won {
			continue
		}
		r := findAction(a.next, rng)
		if !r.won {
			return a.next, r.next, true
		}
	}
	return game.GameMove{}, game.GameMove{}, false
}
