package main

import (
	"strings"
	"testing"

	"github.com/plus3/rockfall/sim"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	moves, err := sim.ParseMoves(">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>")
	require.NoError(t, err)

	logger := zerolog.Nop()
	s, err := sim.New(sim.Config{Moves: moves, Logger: &logger})
	require.NoError(t, err)

	res, err := s.Run(2022)
	require.NoError(t, err)

	r := &Report{
		Input:       "example.txt",
		Moves:       len(moves),
		Fingerprint: sim.FingerprintSurface.String(),
		MaxRocks:    sim.DefaultMaxRocks,
		Result:      res,
		Compactions: s.Compactions(),
		Snapshots:   s.Snapshots(),
		Phase:       s.Phase(),
		Stages:      s.Stats(),
	}

	var sb strings.Builder
	require.NoError(t, r.Generate(&sb))
	out := sb.String()

	assert.Contains(t, out, "- **Input:** example.txt (40 moves)")
	assert.Contains(t, out, "- **Tower Height:** 3068")
	assert.Contains(t, out, "- **Extrapolated:** true")
	assert.Contains(t, out, "  - **Period:** 35 rocks")
	assert.Contains(t, out, "  - **Gain:** 53 rows per period")
	assert.Contains(t, out, "## Stage Timings (63 rocks)")
	assert.Contains(t, out, "- **DetectStage:**")
}

func TestReportWithoutCycle(t *testing.T) {
	r := &Report{
		Fingerprint: sim.FingerprintNone.String(),
		Result:      sim.Result{Rocks: 10, Height: 17, Simulated: 10},
		Stages:      &sim.SchedulerStats{},
	}

	var sb strings.Builder
	require.NoError(t, r.Generate(&sb))

	assert.Contains(t, sb.String(), "- **Tower Height:** 17")
	assert.NotContains(t, sb.String(), "Period")
}
