package board

// CompositeBoard is a transient view over a Board with a set of occupied
// cells (pawn positions) capped, used to test move/build legality without
// letting an action land on a cell another pawn stands on.
type CompositeBoard struct {
	board Board
}

// NewCompositeBoard copies b and caps every point in occupied.
func NewCompositeBoard(b Board, occupied []Point) CompositeBoard {
	cb := CompositeBoard{board: b}
	for _, p := range occupied {
		cb.board.Cap(p)
	}
	return cb
}

// Reachable reports whether p's height in the composite view is at most
// limit — the single legality test shared by move and build checks.
func (cb CompositeBoard) Reachable(p Point, limit CoordLevel) bool {
	return cb.board.LessThanEquals(p, limit)
}
