// Package mcts implements a generic Monte Carlo Tree Search: a tree of
// Node[T] values parameterized by expansion, simulation, and tree-selection
// policies supplied by the caller. The tree owns its nodes directly (a
// plain parent-owns-children hierarchy); Advance/Reconcile discard a
// subtree by dropping the last reference to it and letting the garbage
// collector reclaim it, which is the Go-idiomatic reading of the spec's
// "a flat arena with indices is an acceptable alternative" — here the
// runtime's collector plays the role the teacher's own arena+freelist
// (mcts/naughty.go) plays for a much larger, NN-training-scale tree.
package mcts

import (
	xrand "golang.org/x/exp/rand"
)

// ExpansionPolicy produces the children of a node from its state. An empty
// result marks state as terminal (unexpandable).
type ExpansionPolicy[T comparable] interface {
	Expand(state T) []T
}

// SimulationPolicy estimates a state's value via rollout, returning a score
// in [-1, +1] from the perspective of the player who moved into state.
type SimulationPolicy[T comparable] interface {
	Simulate(state T, rng *xrand.Rand) float64
}

// ChildStat is the subset of a child node's bookkeeping a TreePolicy needs
// to weigh it against its siblings.
type ChildStat struct {
	Score  float64
	Visits uint32
}

// TreePolicy picks which child to descend into during selection, given the
// parent's visit count and each child's current stats.
type TreePolicy interface {
	Select(parentVisits uint32, children []ChildStat) int
}

// Node is one vertex of the search tree: a game state, its visit count, its
// running mean score, and — once expanded — its children.
type Node[T comparable] struct {
	state    T
	visits   uint32
	score    float64
	children []*Node[T]
	expanded bool
}

// State returns the node's game state.
func (n *Node[T]) State() T { return n.state }

// Visits returns the node's visit count.
func (n *Node[T]) Visits() uint32 { return n.visits }

// Score returns the node's running mean score.
func (n *Node[T]) Score() float64 { return n.score }

func newNode[T comparable](state T, sim SimulationPolicy[T], rng *xrand.Rand) *Node[T] {
	return &Node[T]{
		state:  state,
		visits: 1,
		score:  sim.Simulate(state, rng),
	}
}

// expand generates state's children, seeding each with a rollout, and folds
// their scores into this node's running mean. Returns the number of
// children added and the sum of their scores, for the caller to propagate
// further up the tree.
func (n *Node[T]) expand(exp ExpansionPolicy[T], sim SimulationPolicy[T], rng *xrand.Rand) (uint32, float64) {
	if n.expanded {
		panic("mcts: node already expanded")
	}
	n.expanded = true

	states := exp.Expand(n.state)
	if len(states) == 0 {
		return 0, 0
	}

	children := make([]*Node[T], len(states))
	var sumChildScores float64
	for i, s := range states {
		c := newNode(s, sim, rng)
		children[i] = c
		sumChildScores += c.score
	}
	n.children = children

	v := n.visits
	added := uint32(len(children))
	n.visits = v + added
	n.score = (n.score*float64(v) - sumChildScores) / float64(n.visits)
	return added, sumChildScores
}

// step runs one MCTS iteration rooted at n: expand if unvisited-past-root,
// otherwise select a child by tree policy and recurse. It returns the
// number of new visits and the score delta to back-propagate, with sign
// flipped at each level (the spec's backprop sign convention: a state is
// always scored from its own player's perspective, which alternates with
// every ply).
func (n *Node[T]) step(exp ExpansionPolicy[T], sim SimulationPolicy[T], tp TreePolicy, rng *xrand.Rand) (uint32, float64) {
	if n.expanded && len(n.children) == 0 {
		// Terminal node: a fixed leaf contributes nothing further to its
		// parent's statistics on repeat visits.
		return 0, 0
	}

	if !n.expanded {
		return n.expand(exp, sim, rng)
	}

	stats := make([]ChildStat, len(n.children))
	for i, c := range n.children {
		stats[i] = ChildStat{Score: c.score, Visits: c.visits}
	}
	idx := tp.Select(n.visits, stats)
	count, delta := n.children[idx].step(exp, sim, tp, rng)

	newSum := n.score*float64(n.visits) - delta
	n.visits += count
	n.score = newSum / float64(n.visits)
	return count, -delta
}

// Tree drives MCTS search over states of type T.
type Tree[T comparable] struct {
	root       *Node[T]
	expansion  ExpansionPolicy[T]
	simulation SimulationPolicy[T]
	treePolicy TreePolicy
	rng        *xrand.Rand
	budget     uint32
}

// NewTree builds a tree rooted at state, ready to Step or Advance. A nil
// treePolicy defaults to UCB1 with the standard sqrt(2) exploration
// constant; a zero budget defaults to DefaultConfig().Budget.
func NewTree[T comparable](state T, expansion ExpansionPolicy[T], simulation SimulationPolicy[T], treePolicy TreePolicy, rng *xrand.Rand, budget uint32) *Tree[T] {
	if treePolicy == nil {
		treePolicy = DefaultUCB1()
	}
	if budget == 0 {
		budget = DefaultConfig().Budget
	}
	return &Tree[T]{
		root:       newNode(state, simulation, rng),
		expansion:  expansion,
		simulation: simulation,
		treePolicy: treePolicy,
		rng:        rng,
		budget:     budget,
	}
}

// Root returns the state at the tree's current root.
func (t *Tree[T]) Root() T { return t.root.state }

// RootVisits returns the root's visit count.
func (t *Tree[T]) RootVisits() uint32 { return t.root.visits }

// RootScore returns the root's running mean score.
func (t *Tree[T]) RootScore() float64 { return t.root.score }

// Step runs a single MCTS iteration.
func (t *Tree[T]) Step() (uint32, float64) {
	return t.root.step(t.expansion, t.simulation, t.treePolicy, t.rng)
}

// Advance runs Step for the tree's configured budget, then promotes the
// child with the highest raw score to root, discarding its siblings. Ties
// are broken by first-seen (strict ">" below never replaces an earlier
// equally-scored candidate).
func (t *Tree[T]) Advance() T {
	for i := uint32(0); i < t.budget; i++ {
		t.Step()
	}
	if !t.root.expanded || len(t.root.children) == 0 {
		panic("mcts: cannot advance a root with no children")
	}

	best := 0
	bestScore := t.root.children[0].score
	for i := 1; i < len(t.root.children); i++ {
		if t.root.children[i].score > bestScore {
			bestScore = t.root.children[i].score
			best = i
		}
	}
	t.root = t.root.children[best]
	return t.root.state
}

// Reconcile finds the child of the current root satisfying matches and
// promotes it to root, discarding the rest of the tree. It panics if no
// child matches — the search tree has desynchronized from the actual game,
// which the spec treats as a contract violation (§6, MCTS AI integration).
func (t *Tree[T]) Reconcile(matches func(T) bool) {
	if !t.root.expanded {
		panic("mcts: cannot reconcile an unexpanded root")
	}
	for _, c := range t.root.children {
		if matches(c.state) {
			t.root = c
			return
		}
	}
	panic("mcts: no matching child — tree desynchronized")
}

// Children exposes the current root's children's states, for callers (e.g.
// the AI player checking whether the root has been expanded, or debug
// tooling) that need to inspect them directly.
func (t *Tree[T]) Children() []T {
	if !t.root.expanded {
		return nil
	}
	out := make([]T, len(t.root.children))
	for i, c := range t.root.children {
		out[i] = c.state
	}
	return out
}
