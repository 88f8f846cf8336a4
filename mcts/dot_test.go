package mcts

import (
	"strings"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/stretchr/testify/require"
)

func TestWriteDOTRendersExpandedTree(t *testing.T) {
	rng := xrand.New(xrand.NewSource(1))
	tree := NewTree[countState](5, countExpansion{limit: 5}, countSimulation{}, DefaultUCB1(), rng, 20)
	tree.Step()

	dot, err := tree.WriteDOT(func(s countState) string { return s.String() }, -1)
	require.NoError(t, err)
	require.Contains(t, dot, "digraph")
	require.Contains(t, dot, "v=3") // root after one expansion: 1 + 2 children
	require.Contains(t, dot, "->")
}

func TestWriteDOTRespectsMaxDepth(t *testing.T) {
	rng := xrand.New(xrand.NewSource(1))
	tree := NewTree[countState](5, countExpansion{limit: 5}, countSimulation{}, DefaultUCB1(), rng, 20)
	tree.Step()

	shallow, err := tree.WriteDOT(func(s countState) string { return s.String() }, 0)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(shallow, "label"))
}

func (s countState) String() string {
	if int(s) == 0 {
		return "terminal"
	}
	return "interior"
}
