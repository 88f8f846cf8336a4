// Package arena drives one FullPlayer against another through a complete
// game, following the turn protocol in spec §6: prepare once per phase,
// step until a non-NoMove result, transition to the returned phase.
// Adapted from the teacher's arena.go Play method, stripped of the
// self-play example recording and NN-training bookkeeping that method also
// did — this version's only job is refereeing one game to a result.
package arena

import (
	"github.com/pkg/errors"

	"github.com/jbrot/santorini-ai/board"
	"github.com/jbrot/santorini-ai/game"
	"github.com/jbrot/santorini-ai/player"
)

// Arena referees one game between two FullPlayers.
type Arena struct {
	p1, p2 player.FullPlayer
}

// New builds an Arena. p1 plays PlayerOne, p2 plays PlayerTwo.
func New(p1, p2 player.FullPlayer) *Arena {
	return &Arena{p1: p1, p2: p2}
}

func (a *Arena) playerFor(p board.Player) player.FullPlayer {
	if p == board.PlayerOne {
		return a.p1
	}
	return a.p2
}

// Play drives one game from a fresh board to a GameVictory.
func (a *Arena) Play() (game.GameVictory, error) {
	place1 := game.NewGame()
	place2, err := a.runPlaceOne(place1)
	if err != nil {
		return game.GameVictory{}, err
	}
	mv, err := a.runPlaceTwo(place2)
	if err != nil {
		return game.GameVictory{}, err
	}
	return a.runTurns(mv)
}

func (a *Arena) runPlaceOne(g game.GamePlaceOne) (game.GamePlaceTwo, error) {
	p := a.playerFor(g.Player())
	p.PreparePlaceOne(g)
	for {
		res, err := p.StepPlaceOne(g)
		if err != nil {
			return game.GamePlaceTwo{}, errors.WithMessage(err, "arena: PlaceOne step")
		}
		if !res.IsNoMove() {
			return res.PlaceTwo(), nil
		}
	}
}

func (a *Arena) runPlaceTwo(g game.GamePlaceTwo) (game.GameMove, error) {
	p := a.playerFor(g.Player())
	p.PreparePlaceTwo(g)
	for {
		res, err := p.StepPlaceTwo(g)
		if err != nil {
			return game.GameMove{}, errors.WithMessage(err, "arena: PlaceTwo step")
		}
		if !res.IsNoMove() {
			return res.Move(), nil
		}
	}
}

func (a *Arena) runTurns(g game.GameMove) (game.GameVictory, error) {
	for {
		p := a.playerFor(g.Player())

		p.PrepareMove(g)
		moveRes, err := a.stepUntilDecided(func() (player.StepResult, error) { return p.StepMove(g) })
		if err != nil {
			return game.GameVictory{}, errors.WithMessage(err, "arena: Move step")
		}
		if isVictory(moveRes) {
			return moveRes.Victory(), nil
		}

		build := moveRes.Build()
		p.PrepareBuild(build)
		buildRes, err := a.stepUntilDecided(func() (player.StepResult, error) { return p.StepBuild(build) })
		if err != nil {
			return game.GameVictory{}, errors.WithMessage(err, "arena: Build step")
		}
		if isVictory(buildRes) {
			return buildRes.Victory(), nil
		}

		g = buildRes.Move()
	}
}

func isVictory(res player.StepResult) bool {
	return res.Kind() == player.ResultVictory
}

func (a *Arena) stepUntilDecided(step func() (player.StepResult, error)) (player.StepResult, error) {
	for {
		res, err := step()
		if err != nil {
			return player.StepResult{}, err
		}
		if !res.IsNoMove() {
			return res, nil
		}
	}
}
