package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunAllDeterministic(t *testing.T) {
	cfg := Config{Preset: "lightshow", Scene: "cradle", Ticks: 120, Runs: 3, Seed: 7}

	first, err := RunAll(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	second, err := RunAll(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, first, 3)
	for i := range first {
		require.Equal(t, i, first[i].Index)
		require.Equal(t, uint64(7+i), first[i].Seed)
		require.Equal(t, uint64(120), first[i].Stats.Tick)
		require.Equal(t, 7, first[i].Stats.Bodies)
		require.Equal(t, first[i].Fingerprint, second[i].Fingerprint)
		require.NotEqual(t, first[i].ID, second[i].ID)
	}
}

func TestRunAllRejectsEmptyBatch(t *testing.T) {
	_, err := RunAll(context.Background(), Config{Preset: "lightshow", Runs: 0, Ticks: 10}, zap.NewNop())
	require.ErrorIs(t, err, errNoRuns)
}

func TestRunAllUnknownPreset(t *testing.T) {
	_, err := RunAll(context.Background(), Config{Preset: "missing", Runs: 1, Ticks: 10}, zap.NewNop())
	require.Error(t, err)
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunAll(ctx, Config{Preset: "lightshow", Scene: "rain", Runs: 2, Ticks: 1000, Seed: 1}, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}
