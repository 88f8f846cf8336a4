package ai

import (
	"log"

	xrand "golang.org/x/exp/rand"

	"github.com/jbrot/santorini-ai/board"
	"github.com/jbrot/santorini-ai/game"
	"github.com/jbrot/santorini-ai/mcts"
	"github.com/jbrot/santorini-ai/player"
	"github.com/jbrot/santorini-ai/santorini"
)

// MCTSPlayer is the search-driven FullPlayer. It keeps one mcts.Tree alive
// across an entire game, reconciling its root to the opponent's real move
// at the start of every Move phase and replacing it outright with a fresh
// tree on the very first move (there is nothing to reconcile against yet).
type MCTSPlayer struct {
	cfg    Config
	rng    *xrand.Rand
	tree   *mcts.Tree[santorini.Node]
	logger *log.Logger
}

// NewMCTSPlayer builds an MCTSPlayer. logger may be nil, in which case
// diagnostics are discarded.
func NewMCTSPlayer(cfg Config, seed uint64, logger *log.Logger) *MCTSPlayer {
	if !cfg.IsValid() {
		panic("ai: invalid config")
	}
	return &MCTSPlayer{
		cfg:    cfg,
		rng:    xrand.New(xrand.NewSource(seed)),
		logger: logger,
	}
}

func (a *MCTSPlayer) logf(format string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

// --- PlaceOne / PlaceTwo: the search tree has no placement model (the
// teacher's own original placed randomly too — see mcts_ai.rs's
// random_pt — with a TODO noting placement was never added to the tree),
// so the AI places by picking uniformly among the board's interior cells
// that are still free, avoiding the easily-exploited edges and corners.

func (a *MCTSPlayer) randomInteriorPoint() board.Point {
	for {
		x, ok1 := board.NewCoord(1 + a.rng.Intn(board.BoardWidth-2))
		y, ok2 := board.NewCoord(1 + a.rng.Intn(board.BoardHeight-2))
		if !ok1 || !ok2 {
			continue
		}
		p, ok := board.NewPoint(x, y)
		if ok {
			return p
		}
	}
}

func (a *MCTSPlayer) PreparePlaceOne(g game.GamePlaceOne) {}

func (a *MCTSPlayer) RenderPlaceOne(g game.GamePlaceOne) player.Widget {
	return player.Widget{Data: g}
}

func (a *MCTSPlayer) StepPlaceOne(g game.GamePlaceOne) (player.StepResult, error) {
	p1, p2 := a.randomInteriorPoint(), a.randomInteriorPoint()
	action, ok := g.CanPlace(p1, p2)
	if !ok {
		return player.NoMove(), nil
	}
	return player.PlaceTwoResult(g.Apply(action)), nil
}

func (a *MCTSPlayer) PreparePlaceTwo(g game.GamePlaceTwo) {}

func (a *MCTSPlayer) RenderPlaceTwo(g game.GamePlaceTwo) player.Widget {
	return player.Widget{Data: g}
}

func (a *MCTSPlayer) StepPlaceTwo(g game.GamePlaceTwo) (player.StepResult, error) {
	p1, p2 := a.randomInteriorPoint(), a.randomInteriorPoint()
	action, ok := g.CanPlace(p1, p2)
	if !ok {
		return player.NoMove(), nil
	}
	return player.MoveResult(g.Apply(action)), nil
}

// PrepareMove reconciles the live tree's root against the actual game: if
// this is the first move of the game, a fresh tree is built rooted at g;
// otherwise, the child of the current root whose resulting Move state
// equals g is promoted to root, discarding the rest of the tree. No match
// means the tree has desynchronized from the real game, a contract
// violation (mirrors mcts_ai.rs's prepare()).
func (a *MCTSPlayer) PrepareMove(g game.GameMove) {
	// A promoted root that was never itself expanded during the previous
	// turn's search (too small a budget to revisit it) has nothing to
	// reconcile against; rebuild fresh from the actual game rather than
	// treating that as a desync.
	if a.tree == nil || len(a.tree.Children()) == 0 {
		a.tree = mcts.NewTree[santorini.Node](
			santorini.RootNode(g),
			santorini.Expansion{},
			a.cfg.simulationPolicy(),
			a.cfg.treePolicy(),
			a.rng,
			a.cfg.Budget,
		)
		return
	}

	a.tree.Reconcile(func(n santorini.Node) bool {
		return !n.IsVictory && n.MoveState == g
	})
}

func (a *MCTSPlayer) RenderMove(g game.GameMove) player.Widget {
	return player.Widget{Data: g}
}

func (a *MCTSPlayer) StepMove(g game.GameMove) (player.StepResult, error) {
	next := a.tree.Advance()
	a.logf("mcts: advanced root, stats=%+v", a.tree.Stats())

	if !next.HasMove {
		panic("ai: advanced root carries no move action")
	}
	outcome := g.Apply(next.Move)
	if outcome.Won() {
		return player.VictoryResult(outcome.Victory()), nil
	}
	return player.BuildResult(outcome.Build()), nil
}

func (a *MCTSPlayer) PrepareBuild(g game.GameBuild) {}

func (a *MCTSPlayer) RenderBuild(g game.GameBuild) player.Widget {
	return player.Widget{Data: g}
}

func (a *MCTSPlayer) StepBuild(g game.GameBuild) (player.StepResult, error) {
	next := a.tree.Root()
	if !next.HasBuild {
		panic("ai: advanced root carries no build action")
	}
	outcome := g.Apply(next.Build)
	if outcome.Won() {
		return player.VictoryResult(outcome.Victory()), nil
	}
	return player.MoveResult(outcome.Move()), nil
}
