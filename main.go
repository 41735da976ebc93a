package main

import (
	"flag"
	"fmt"
	"hive/experiments"
	"hive/game"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "difficulty", "Experiment to run: difficulty or mode")
	rulesPath := flag.String("rules", "", "YAML rules file; standard rules when empty")
	games := flag.Int("games", 10, "Number of games per match up")
	maxTurns := flag.Int("max-turns", 0, "Turn cap per game; default when zero")
	seed := flag.Uint64("seed", 1, "Seed for the random players")
	out := flag.String("out", "", "Directory for result files; default when empty")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	config := experiments.DefaultConfig()
	config.Games = *games
	config.Seed = *seed
	if *maxTurns > 0 {
		config.MaxTurns = *maxTurns
	}
	if *out != "" {
		config.Root = *out
	}
	if *rulesPath != "" {
		rules, err := game.LoadRules(*rulesPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load rules")
		}
		config.Rules = rules
	}

	if err := run(*experiment, config); err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
}

func run(name string, config experiments.Config) error {
	var dir string
	var err error
	switch name {
	case "difficulty":
		dir, err = experiments.RunDifficultyExperiment(config)
	case "mode":
		dir, err = experiments.RunModeExperiment(config)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)
	return nil
}
