package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighborsCornerHasThree(t *testing.T) {
	p := mustPoint(t, 0, 0)
	require.Len(t, Neighbors(p), 3)
}

func TestNeighborsEdgeHasFive(t *testing.T) {
	p := mustPoint(t, 2, 0)
	require.Len(t, Neighbors(p), 5)
}

func TestNeighborsInteriorHasEight(t *testing.T) {
	p := mustPoint(t, 2, 2)
	require.Len(t, Neighbors(p), 8)
}

func TestNeighborsAreAllDistanceOne(t *testing.T) {
	p := mustPoint(t, 2, 2)
	for _, n := range Neighbors(p) {
		require.Equal(t, 1, Distance(p, n))
	}
}

func TestNeighborOrderIsFixed(t *testing.T) {
	p := mustPoint(t, 2, 2)
	want := []Point{
		mustPoint(t, 1, 1), mustPoint(t, 2, 1), mustPoint(t, 3, 1),
		mustPoint(t, 1, 2), mustPoint(t, 3, 2),
		mustPoint(t, 1, 3), mustPoint(t, 2, 3), mustPoint(t, 3, 3),
	}
	require.Equal(t, want, Neighbors(p))
}
