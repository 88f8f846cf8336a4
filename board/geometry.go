package board

// neighborOffsets lists the 8 king-move deltas in a fixed order. Actions
// derived by walking a pawn's neighbors (move targets, build targets) are
// enumerated in this order, which is what makes rollout/search results
// deterministic for a fixed RNG seed.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var neighborTable [BoardWidth * BoardHeight][]Point

func init() {
	for offset := 0; offset < BoardWidth*BoardHeight; offset++ {
		p := PointFromOffset(offset)
		var neighbors []Point
		for _, d := range neighborOffsets {
			nx, okx := NewCoord(int(p.x) + d[0])
			ny, oky := NewCoord(int(p.y) + d[1])
			if !okx || !oky {
				continue
			}
			neighbors = append(neighbors, Point{x: nx, y: ny})
		}
		neighborTable[offset] = neighbors
	}
}

// Neighbors returns the in-bounds king-move neighbors of p, in the fixed
// order of neighborOffsets.
func Neighbors(p Point) []Point {
	return neighborTable[p.Offset()]
}
