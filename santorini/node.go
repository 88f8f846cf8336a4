// Package santorini plugs the Santorini turn state machine (package game)
// into the generic MCTS engine (package mcts): it defines the node type one
// level of the search tree stores, the expansion policy that enumerates a
// full turn's (move, build) pairs, and the semi-greedy rollout used to seed
// new nodes.
package santorini

import "github.com/jbrot/santorini-ai/game"

// Node is what one level of the search tree holds: the (move, build) pair
// that produced it and the resulting state, which is either a further Move
// phase or a terminal Victory. HasMove/HasBuild flag which action fields
// are meaningful — the root node of a tree has neither set.
//
// Node must stay a plain comparable struct (no slices, maps, or pointers):
// mcts.Tree[T] requires T comparable so root reconciliation can match a
// child's state by value equality against the actual observed game.
type Node struct {
	HasMove  bool
	Move     game.MoveAction
	HasBuild bool
	Build    game.BuildAction

	IsVictory    bool
	MoveState    game.GameMove
	VictoryState game.GameVictory
}

// RootNode wraps a Move-phase game as a fresh search root, with no action
// pair attached.
func RootNode(g game.GameMove) Node {
	return Node{MoveState: g}
}
