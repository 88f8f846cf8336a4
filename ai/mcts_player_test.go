package ai

import (
	"testing"

	"github.com/jbrot/santorini-ai/game"
	"github.com/jbrot/santorini-ai/player"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.True(t, DefaultConfig().IsValid())
}

func TestNewMCTSPlayerPanicsOnInvalidConfig(t *testing.T) {
	require.Panics(t, func() {
		NewMCTSPlayer(Config{Budget: 0}, 1, nil)
	})
}

func TestMCTSPlayerPlaysOneFullTurn(t *testing.T) {
	cfg := Config{Budget: 20, Exploration: 1.4}
	ai := NewMCTSPlayer(cfg, 1, nil)

	g1 := game.NewGame()
	ai.PreparePlaceOne(g1)
	res1, err := ai.StepPlaceOne(g1)
	require.NoError(t, err)
	require.False(t, res1.IsNoMove())

	g2 := res1.PlaceTwo()
	ai2 := NewMCTSPlayer(cfg, 2, nil)
	ai2.PreparePlaceTwo(g2)
	res2, err := ai2.StepPlaceTwo(g2)
	require.NoError(t, err)
	require.False(t, res2.IsNoMove())

	mv := res2.Move()
	ai.PrepareMove(mv)
	res3, err := ai.StepMove(mv)
	require.NoError(t, err)
	require.False(t, res3.IsNoMove())

	if res3.Kind() != player.ResultVictory { // a first move can never win outright
		build := res3.Build()
		ai.PrepareBuild(build)
		res4, err := ai.StepBuild(build)
		require.NoError(t, err)
		require.False(t, res4.IsNoMove())
	}
}
