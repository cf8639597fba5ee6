package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-paths/internal/fixture"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestRun_DijkstraEveryRoute(t *testing.T) {
	out, _, err := runArgs(t, "-fixture", "scenario")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"A (cost 0)",
		"A→B (cost 1)",
		"A→B→C (cost 3)",
		"A→B→C→D (cost 4)",
	}, lines(out))
}

func TestRun_DijkstraThresholds(t *testing.T) {
	out, _, err := runArgs(t, "-fixture", "scenario", "-max-cost", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A (cost 0)", "A→B (cost 1)"}, lines(out))

	out, _, err = runArgs(t, "-fixture", "scenario", "-impassable", "2", "-to", "C")
	require.Error(t, err, "B→C weighs 2 and A→C 10; both are walls")
	assert.ErrorIs(t, err, errNoRoute)
	assert.Empty(t, out)
}

func TestRun_AStarGrid(t *testing.T) {
	var b strings.Builder
	b.WriteString("edges:\n")
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				b.WriteString("  - {from: \"" + id(r, c) + "\", to: \"" + id(r, c+1) + "\", weight: 2}\n")
			}
			if r+1 < 3 {
				b.WriteString("  - {from: \"" + id(r, c) + "\", to: \"" + id(r+1, c) + "\", weight: 2}\n")
			}
		}
	}
	file := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(file, []byte(b.String()), 0o600))

	out, _, err := runArgs(t, "-graph", file, "-algo", "astar", "-heuristic", "manhattan", "-from", "0,0", "-to", "2,2")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], "(cost 8)"), got[0])
	assert.True(t, strings.HasPrefix(got[0], "0,0→"), got[0])
}

func id(r, c int) string {
	return string(rune('0'+r)) + "," + string(rune('0'+c))
}

func TestRun_FloydWarshallFiltered(t *testing.T) {
	out, _, err := runArgs(t, "-fixture", "negative_dag", "-algo", "floydwarshall", "-from", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"A (cost 0)",
		"A→C→B (cost -1)",
		"A→C (cost 1)",
		"A→C→B→D (cost 0)",
	}, lines(out))

	_, _, err = runArgs(t, "-fixture", "negative_cycle", "-algo", "floydwarshall")
	assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
}

func TestRun_MetricsAndLogs(t *testing.T) {
	out, logs, err := runArgs(t, "-fixture", "undirected", "-to", "U", "-metrics", "-v", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "S→B→A→T→U (cost 7)")
	assert.Contains(t, out, `lvlath_paths_runs_total{algorithm="dijkstra",outcome="ok"} 1`)
	assert.Contains(t, logs, "run finished")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"NoInput", nil, errUsage},
		{"BothInputs", []string{"-fixture", "scenario", "-graph", "x.yaml"}, errUsage},
		{"UnknownFixture", []string{"-fixture", "nope"}, fixture.ErrUnknownFixture},
		{"UnknownAlgo", []string{"-fixture", "scenario", "-algo", "bellman"}, errUsage},
		{"AStarNeedsTarget", []string{"-fixture", "scenario", "-algo", "astar"}, errNoTarget},
		{"BadHeuristic", []string{"-fixture", "scenario", "-algo", "astar", "-to", "D", "-heuristic", "euclid"}, errUsage},
		{"ManhattanNeedsGrid", []string{"-fixture", "scenario", "-algo", "astar", "-to", "D", "-heuristic", "manhattan"}, errUsage},
		{"MissingSource", []string{"-fixture", "scenario", "-from", "Z"}, shortest.ErrSourceNotFound},
		{"NegativeWeights", []string{"-fixture", "negative_dag", "-from", "A"}, shortest.ErrNegativeWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runArgs(t, tc.args...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
