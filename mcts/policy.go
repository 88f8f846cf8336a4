package mcts

import (
	"github.com/chewxy/math32"
)

// Config bundles the tunable search parameters, following the teacher's
// DefaultConfig/IsValid convention (mcts/tree.go's Config in the source
// repo).
type Config struct {
	Budget      uint32
	Exploration float32
}

// DefaultConfig returns a reasonable default: 500 rollouts per move, with
// the canonical sqrt(2) UCB1 exploration constant.
func DefaultConfig() Config {
	return Config{
		Budget:      500,
		Exploration: math32.Sqrt(2),
	}
}

// IsValid reports whether c can be used to drive a search.
func (c Config) IsValid() bool {
	return c.Budget > 0 && c.Exploration >= 0
}

// UCB1 selects children by the standard multi-armed-bandit formula: a
// child's raw score is rescaled from [-1,+1] to [0,1] and augmented by an
// exploration term that shrinks with the child's own visit count and grows
// with the parent's.
type UCB1 struct {
	C float32
}

// NewUCB1 builds a UCB1 policy with exploration constant c.
func NewUCB1(c float32) *UCB1 { return &UCB1{C: c} }

// DefaultUCB1 returns UCB1 with the canonical sqrt(2) constant.
func DefaultUCB1() *UCB1 { return &UCB1{C: math32.Sqrt(2)} }

func (u *UCB1) Select(parentVisits uint32, children []ChildStat) int {
	best := -1
	var bestWeight float32
	for i, c := range children {
		rescaled := (1 + float32(c.Score)) / 2
		augment := math32.Sqrt(math32.Log(float32(parentVisits)) / float32(c.Visits))
		weight := rescaled + u.C*augment
		if best == -1 || weight > bestWeight {
			bestWeight = weight
			best = i
		}
	}
	if best == -1 {
		panic("mcts: select called on a node with no children")
	}
	return best
}

// PUCT is the AlphaZero-style predictor-augmented variant: the exploration
// term grows with sqrt(parent visits) rather than sqrt(ln(parent visits)),
// biasing search toward breadth early and exploitation as the parent
// accumulates visits.
type PUCT struct {
	C float32
}

// NewPUCT builds a PUCT policy with exploration constant c.
func NewPUCT(c float32) *PUCT { return &PUCT{C: c} }

func (p *PUCT) Select(parentVisits uint32, children []ChildStat) int {
	best := -1
	var bestWeight float32
	for i, c := range children {
		rescaled := (1 + float32(c.Score)) / 2
		augment := math32.Sqrt(float32(parentVisits)) / float32(c.Visits)
		weight := rescaled + p.C*augment
		if best == -1 || weight > bestWeight {
			bestWeight = weight
			best = i
		}
	}
	if best == -1 {
		panic("mcts: select called on a node with no children")
	}
	return best
}
