// Package player defines the thin external contract a game driver uses to
// talk to either side of a match: one interface per phase (§9's tagged-
// union-with-match-dispatch guidance, realized in Go as distinct method
// names per phase rather than one generic method overloaded per type,
// which Go's method sets don't support), plus the combined FullPlayer a
// complete implementation must satisfy.
package player

import "github.com/jbrot/santorini-ai/game"

// Widget is an opaque UI snapshot returned by Render. Its concrete
// rendering is an external collaborator's concern (a terminal UI, a GUI —
// out of scope here per spec §1); this type only gives FullPlayer
// implementations somewhere to hand a snapshot to.
type Widget struct {
	Data interface{}
}

type resultKind int

const (
	ResultNoMove resultKind = iota
	ResultPlaceTwo
	ResultMove
	ResultBuild
	ResultVictory
)

// StepResult is the outcome of one Step call: either the player has not
// produced an action yet (NoMove — the driver calls Step again), or a
// transition to the named next phase.
type StepResult struct {
	kind     resultKind
	placeTwo game.GamePlaceTwo
	move     game.GameMove
	build    game.GameBuild
	victory  game.GameVictory
}

// Kind reports which variant this result carries.
func (r StepResult) Kind() resultKind { return r.kind }

// IsNoMove reports whether Step produced no action.
func (r StepResult) IsNoMove() bool { return r.kind == ResultNoMove }

// PlaceTwo returns the resulting PlaceTwo game. Valid only if
// Kind() == ResultPlaceTwo.
func (r StepResult) PlaceTwo() game.GamePlaceTwo { return r.placeTwo }

// Move returns the resulting Move game. Valid only if Kind() == ResultMove.
func (r StepResult) Move() game.GameMove { return r.move }

// Build returns the resulting Build game. Valid only if
// Kind() == ResultBuild.
func (r StepResult) Build() game.GameBuild { return r.build }

// Victory returns the resulting terminal game. Valid only if
// Kind() == ResultVictory.
func (r StepResult) Victory() game.GameVictory { return r.victory }

func NoMove() StepResult { return StepResult{kind: ResultNoMove} }

func PlaceTwoResult(g game.GamePlaceTwo) StepResult {
	return StepResult{kind: ResultPlaceTwo, placeTwo: g}
}

func MoveResult(g game.GameMove) StepResult {
	return StepResult{kind: ResultMove, move: g}
}

func BuildResult(g game.GameBuild) StepResult {
	return StepResult{kind: ResultBuild, build: g}
}

func VictoryResult(g game.GameVictory) StepResult {
	return StepResult{kind: ResultVictory, victory: g}
}

// PlaceOnePlayer is implemented by whoever plays the PlaceOne phase.
type PlaceOnePlayer interface {
	PreparePlaceOne(g game.GamePlaceOne)
	RenderPlaceOne(g game.GamePlaceOne) Widget
	StepPlaceOne(g game.GamePlaceOne) (StepResult, error)
}

// PlaceTwoPlayer is implemented by whoever plays the PlaceTwo phase.
type PlaceTwoPlayer interface {
	PreparePlaceTwo(g game.GamePlaceTwo)
	RenderPlaceTwo(g game.GamePlaceTwo) Widget
	StepPlaceTwo(g game.GamePlaceTwo) (StepResult, error)
}

// MovePlayer is implemented by whoever plays the Move phase.
type MovePlayer interface {
	PrepareMove(g game.GameMove)
	RenderMove(g game.GameMove) Widget
	StepMove(g game.GameMove) (StepResult, error)
}

// BuildPlayer is implemented by whoever plays the Build phase.
type BuildPlayer interface {
	PrepareBuild(g game.GameBuild)
	RenderBuild(g game.GameBuild) Widget
	StepBuild(g game.GameBuild) (StepResult, error)
}

// FullPlayer is the intersection required to play every phase of a turn
// (§6): a driver holds two of these, one per side.
type FullPlayer interface {
	PlaceOnePlayer
	PlaceTwoPlayer
	MovePlayer
	BuildPlayer
}
