package experiments

import (
	"fmt"
	"hive/engine"
	"hive/experiments/metrics"
	"hive/game"
	"hive/meta"
	"hive/player"
	"hive/searcher"

	"github.com/rs/zerolog/log"
)

// Config controls how many games each match-up plays and where results go.
type Config struct {
	Rules    game.RuleSet
	Games    int // Per match up
	MaxTurns int
	Seed     uint64
	Root     string
}

func DefaultConfig() Config {
	return Config{
		Rules:    game.StandardRules(),
		Games:    10,
		MaxTurns: meta.MAX_TURNS,
		Seed:     1,
		Root:     meta.RESULTS_DIR,
	}
}

// baseline plays random legal actions.
var baseline = metrics.AgentConfig{ID: 0, Mode: "random"}

var difficultyConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: searcher.Easy.Depth(), Mode: searcher.Balanced.String(), Workers: 1},
	{ID: 2, Depth: searcher.Medium.Depth(), Mode: searcher.Balanced.String(), Workers: 1},
	{ID: 3, Depth: searcher.Hard.Depth(), Mode: searcher.Balanced.String(), Workers: meta.GO_ROUTINES},
}

// RunDifficultyExperiment pairs every difficulty against the random baseline
// and against each other, playing both colours.
func RunDifficultyExperiment(config Config) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for i, a := range difficultyConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{a, baseline}, []metrics.AgentConfig{baseline, a})
		for _, b := range difficultyConfigs[i+1:] {
			matchUps = append(matchUps, []metrics.AgentConfig{a, b}, []metrics.AgentConfig{b, a})
		}
	}

	return runExperiment("difficulty", config, append(difficultyConfigs, baseline), matchUps)
}

// RunModeExperiment pairs the evaluation modes against each other at medium
// depth.
func RunModeExperiment(config Config) (string, error) {
	modes := []searcher.Mode{searcher.Balanced, searcher.Aggressive, searcher.Defensive}
	configs := make([]metrics.AgentConfig, len(modes))
	for i, mode := range modes {
		configs[i] = metrics.AgentConfig{ID: i + 1, Depth: searcher.Medium.Depth(), Mode: mode.String(), Workers: 1}
	}

	matchUps := [][]metrics.AgentConfig{}
	for i, a := range configs {
		for _, b := range configs[i+1:] {
			matchUps = append(matchUps, []metrics.AgentConfig{a, b}, []metrics.AgentConfig{b, a})
		}
	}

	return runExperiment("mode", config, configs, matchUps)
}

func runExperiment(name string, config Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < config.Games; i++ {
			count++
			seed := config.Seed + uint64(count)
			winner, gameMetric, moveMetrics, err := runGame(config, config1, config2, seed)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(config.Root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays agent1 as White against agent2 as Black.
func runGame(config Config, agent1, agent2 metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	white, err := newPlayer(agent1, seed)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	black, err := newPlayer(agent2, seed+1)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(config.Rules, white, black, engine.WithMaxTurns(config.MaxTurns))
	return e.Run()
}

func newPlayer(config metrics.AgentConfig, seed uint64) (player.Player, error) {
	if config.Depth <= 0 {
		return player.NewRandom(seed), nil
	}

	mode, err := searcher.ParseMode(config.Mode)
	if err != nil {
		return nil, err
	}
	return player.NewSearch(fmt.Sprintf("agent%d", config.ID),
		searcher.WithDepth(config.Depth),
		searcher.WithMode(mode),
		searcher.WithWorkers(config.Workers),
		searcher.WithMetrics(),
	), nil
}
