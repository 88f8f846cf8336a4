package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, x, y int) Point {
	t.Helper()
	cx, ok := NewCoord(x)
	require.True(t, ok)
	cy, ok := NewCoord(y)
	require.True(t, ok)
	p, ok := NewPoint(cx, cy)
	require.True(t, ok)
	return p
}

func TestPointRoundTrip(t *testing.T) {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			p := mustPoint(t, x, y)
			got, ok := NewPoint(p.X(), p.Y())
			require.True(t, ok)
			require.Equal(t, p, got)
			require.Equal(t, p, PointFromOffset(p.Offset()))
		}
	}
}

func TestNewCoordRejectsOutOfRange(t *testing.T) {
	_, ok := NewCoord(-1)
	require.False(t, ok)
	_, ok = NewCoord(BoardWidth)
	require.False(t, ok)
}

func TestDistanceBounds(t *testing.T) {
	a := mustPoint(t, 0, 0)
	b := mustPoint(t, 3, 4)
	require.LessOrEqual(t, Distance(a, b), Taxicab(a, b))
	require.LessOrEqual(t, Taxicab(a, b), 2*Distance(a, b))
}

func TestFreshBoardIsAllGround(t *testing.T) {
	b := NewBoard()
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			p := mustPoint(t, x, y)
			require.Equal(t, Ground, b.LevelAt(p))
		}
	}
}

func TestBuildProgressesThroughLevels(t *testing.T) {
	b := NewBoard()
	p := mustPoint(t, 2, 2)

	require.Equal(t, Ground, b.LevelAt(p))
	b.Build(p)
	require.Equal(t, One, b.LevelAt(p))
	b.Build(p)
	require.Equal(t, Two, b.LevelAt(p))
	b.Build(p)
	require.Equal(t, Three, b.LevelAt(p))
	b.Build(p)
	require.Equal(t, Capped, b.LevelAt(p))
}

func TestBuildOnCappedPanics(t *testing.T) {
	b := NewBoard()
	p := mustPoint(t, 2, 2)
	for i := 0; i < 4; i++ {
		b.Build(p)
	}
	require.Equal(t, Capped, b.LevelAt(p))
	require.Panics(t, func() { b.Build(p) })
}

func TestLessThanEquals(t *testing.T) {
	b := NewBoard()
	p := mustPoint(t, 0, 0)

	require.True(t, b.LessThanEquals(p, Ground))
	require.True(t, b.LessThanEquals(p, Three))

	b.Build(p) // One
	require.False(t, b.LessThanEquals(p, Ground))
	require.True(t, b.LessThanEquals(p, One))
	require.True(t, b.LessThanEquals(p, Two))

	b.Build(p) // Two
	b.Build(p) // Three
	b.Build(p) // Capped
	require.False(t, b.LessThanEquals(p, Three))
}

func TestCompositeBoardCapsOccupiedCells(t *testing.T) {
	b := NewBoard()
	occupied := mustPoint(t, 1, 1)
	cb := NewCompositeBoard(b, []Point{occupied})

	require.False(t, cb.Reachable(occupied, Three))
	other := mustPoint(t, 1, 2)
	require.True(t, cb.Reachable(other, Ground))
}

func TestBitPackScenario(t *testing.T) {
	// Two points in the same 16-cell word and one in the second word,
	// built to different levels, must not interfere with each other.
	b := NewBoard()
	p0 := mustPoint(t, 0, 0)  // offset 0, word 0
	p15 := mustPoint(t, 0, 3) // offset 15, word 0
	p16 := mustPoint(t, 1, 3) // offset 16, word 1

	b.Build(p0)
	b.Build(p16)
	b.Build(p16)

	require.Equal(t, One, b.LevelAt(p0))
	require.Equal(t, Ground, b.LevelAt(p15))
	require.Equal(t, Two, b.LevelAt(p16))
}
