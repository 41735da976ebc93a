package experiments

import (
	"encoding/csv"
	"hive/experiments/metrics"
	"hive/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunExperiment(t *testing.T) {
	config := Config{
		Rules:    game.StandardRules(),
		Games:    2,
		MaxTurns: 6,
		Seed:     42,
		Root:     t.TempDir(),
	}
	easy := metrics.AgentConfig{ID: 1, Depth: 1, Mode: "balanced", Workers: 1}
	matchUps := [][]metrics.AgentConfig{{easy, baseline}, {baseline, easy}}

	dir, err := runExperiment("test", config, []metrics.AgentConfig{easy, baseline}, matchUps)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(config.Root, "test"), filepath.Dir(dir))

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, agents, 3, "header plus two agents")
	require.Equal(t, []string{"id", "depth", "mode", "workers"}, agents[0])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 5, "header plus two games for each of two match-ups")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, 1+4*6, "six turns per game, nobody can win that fast")
}

func TestNewPlayer(t *testing.T) {
	p, err := newPlayer(baseline, 1)
	require.NoError(t, err)
	require.Equal(t, "random", p.Name())

	_, err = newPlayer(metrics.AgentConfig{ID: 5, Depth: 2, Mode: "reckless"}, 1)
	require.ErrorContains(t, err, "unknown evaluation mode")
}
