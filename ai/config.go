// Package ai implements the MCTS-driven FullPlayer: it wraps an
// mcts.Tree[santorini.Node], reconciling the tree's root against the
// opponent's actual move each turn and advancing it to decide its own
// (§6, "MCTS AI integration").
package ai

import (
	"github.com/jbrot/santorini-ai/mcts"
	"github.com/jbrot/santorini-ai/santorini"
)

// Config bundles the tunable knobs for an MCTSPlayer, following the
// teacher's DefaultConfig/IsValid convention.
type Config struct {
	Budget      uint32
	Exploration float32
	// UsePUCT selects the PUCT tree policy instead of the default UCB1.
	UsePUCT bool
	// Extended selects santorini.ExtendedSimulation (the backtracking
	// rollout variant) instead of the default santorini.Simulation. Never
	// the default — an explicit opt-in per config (§9 Open Questions).
	Extended bool
}

// DefaultConfig mirrors mcts.DefaultConfig: 500 rollouts per move, UCB1,
// the default (non-backtracking) rollout.
func DefaultConfig() Config {
	mc := mcts.DefaultConfig()
	return Config{Budget: mc.Budget, Exploration: mc.Exploration}
}

// IsValid reports whether c can be used to drive a search.
func (c Config) IsValid() bool {
	return c.Budget > 0 && c.Exploration >= 0
}

func (c Config) treePolicy() mcts.TreePolicy {
	if c.UsePUCT {
		return mcts.NewPUCT(c.Exploration)
	}
	return mcts.NewUCB1(c.Exploration)
}

func (c Config) simulationPolicy() mcts.SimulationPolicy[santorini.Node] {
	if c.Extended {
		return santorini.ExtendedSimulation{}
	}
	return santorini.Simulation{}
}
