package santorini

import (
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/jbrot/santorini-ai/board"
	"github.com/jbrot/santorini-ai/game"
	"github.com/stretchr/testify/require"
)

func pt(t *testing.T, x, y int) board.Point {
	t.Helper()
	cx, ok := board.NewCoord(x)
	require.True(t, ok)
	cy, ok := board.NewCoord(y)
	require.True(t, ok)
	p, ok := board.NewPoint(cx, cy)
	require.True(t, ok)
	return p
}

func freshMove(t *testing.T) game.GameMove {
	t.Helper()
	g1 := game.NewGame()
	a1, ok := g1.CanPlace(pt(t, 1, 1), pt(t, 3, 3))
	require.True(t, ok)
	g2 := g1.Apply(a1)
	a2, ok := g2.CanPlace(pt(t, 1, 3), pt(t, 3, 1))
	require.True(t, ok)
	return g2.Apply(a2)
}

// Scenario: the expansion of a root node must equal the sum, over every
// active pawn's legal moves, of the legal builds available after that
// move (or 1, for a move that wins outright).
func TestExpansionCompleteness(t *testing.T) {
	g := freshMove(t)
	root := RootNode(g)

	children := Expansion{}.Expand(root)

	expected := 0
	for _, pawn := range g.ActivePawns() {
		for _, mv := range pawn.Actions() {
			outcome := g.Apply(mv)
			if outcome.Won() {
				expected++
				continue
			}
			expected += len(outcome.Build().ActivePawn().Actions())
		}
	}
	require.Equal(t, expected, len(children))
	require.NotEmpty(t, children)
}

func TestExpansionOfVictoryIsEmpty(t *testing.T) {
	n := Node{IsVictory: true}
	require.Empty(t, Expansion{}.Expand(n))
}

func TestExpansionHasNoDuplicateActionPairs(t *testing.T) {
	g := freshMove(t)
	children := Expansion{}.Expand(RootNode(g))

	seen := make(map[Node]bool)
	for _, c := range children {
		key := Node{HasMove: c.HasMove, Move: c.Move, HasBuild: c.HasBuild, Build: c.Build}
		require.False(t, seen[key], "duplicate action pair")
		seen[key] = true
	}
}

func TestSimulationReturnsOnlyExtremes(t *testing.T) {
	rng := xrand.New(xrand.NewSource(7))
	g := freshMove(t)
	for i := 0; i < 20; i++ {
		v := Simulation{}.Simulate(RootNode(g), rng)
		require.True(t, v == 1.0 || v == -1.0)
	}
}

func TestSimulationOfVictoryIsAlwaysOne(t *testing.T) {
	rng := xrand.New(xrand.NewSource(1))
	n := Node{IsVictory: true}
	require.Equal(t, 1.0, Simulation{}.Simulate(n, rng))
}

func TestExtendedSimulationReturnsOnlyExtremes(t *testing.T) {
	rng := xrand.New(xrand.NewSource(3))
	g := freshMove(t)
	for i := 0; i < 10; i++ {
		v := ExtendedSimulation{}.Simulate(RootNode(g), rng)
		require.True(t, v == 1.0 || v == -1.0)
	}
}
