package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRun_CorridorRenderAndCSV(t *testing.T) {
	dir := t.TempDir()
	cfg := runConfig{
		scenarioPath: writeScenario(t, "map: [\"Z...H\"]\nsteps: 4\n"),
		csvPath:      filepath.Join(dir, "stats.csv"),
		render:       true,
	}
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(cfg, &out, logger))

	frames := out.String()
	assert.True(t, strings.HasPrefix(frames, "Z...H\n"), frames)
	assert.Contains(t, frames, "tick 4\n....B\n")

	data, err := os.ReadFile(cfg.csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5, "header plus one row per step")
	assert.True(t, strings.HasPrefix(lines[4], "4,1,1,1,0,"), lines[4])
}

func TestRun_DumpAppliesOverrides(t *testing.T) {
	cfg := runConfig{steps: 3, stepsSet: true, seed: 77, seedSet: true, dump: true}
	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, slog.New(slog.NewTextHandler(io.Discard, nil))))
	assert.Contains(t, out.String(), "steps: 3")
	assert.Contains(t, out.String(), "seed: 77")
}

func TestRun_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(runConfig{scenarioPath: filepath.Join(t.TempDir(), "nope.yaml")}, io.Discard, logger)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run(runConfig{steps: -2, stepsSet: true}, io.Discard, logger)
	assert.Error(t, err)
}

func TestRun_WarnsOnSplitBoard(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	cfg := runConfig{scenarioPath: writeScenario(t, "map: [\"Z#H\"]\nsteps: 1\n")}
	require.NoError(t, run(cfg, io.Discard, logger))
	assert.Contains(t, logs.String(), "regions=2")
	assert.Contains(t, logs.String(), "stats.unreachable=1")
}
