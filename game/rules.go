package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Reserve counts unplaced pieces per kind for one team.
type Reserve [NumKinds]int

// Total returns the number of unplaced pieces.
func (r Reserve) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// RuleSet holds the configurable parts of the rules.
type RuleSet struct {
	// QueenDeadline is the placement turn (1-based, per team) by which the
	// Queen must be down. Zero disables the rule.
	QueenDeadline int `yaml:"queen_deadline"`
	// QueenBeforeMovement forbids moving any piece until the team's Queen is placed.
	QueenBeforeMovement bool `yaml:"queen_before_movement"`
	// IsolatedPlacement forbids placing next to opposing pieces once both
	// teams have a piece on the board.
	IsolatedPlacement bool `yaml:"isolated_placement"`
	// Reserve is the starting hand of each team, by kind name.
	Reserve map[string]int `yaml:"reserve"`
}

// InitialReserve converts the named hand into a Reserve. Unknown names panic;
// LoadRules validates them first.
func (r RuleSet) InitialReserve() Reserve {
	var reserve Reserve
	for name, count := range r.Reserve {
		kind, ok := kindByName(name)
		if !ok {
			panic(fmt.Sprintf("unknown piece kind %q in reserve", name))
		}
		reserve[kind] = count
	}
	return reserve
}

// Validate checks that the rule set describes a playable game.
func (r RuleSet) Validate() error {
	if r.QueenDeadline < 0 {
		return fmt.Errorf("invalid rules: queen_deadline must not be negative, got %d", r.QueenDeadline)
	}
	queens := 0
	for name, count := range r.Reserve {
		kind, ok := kindByName(name)
		if !ok {
			return fmt.Errorf("invalid rules: unknown piece kind %q", name)
		}
		if count < 0 {
			return fmt.Errorf("invalid rules: negative count %d for %s", count, name)
		}
		if kind == Queen {
			queens = count
		}
	}
	if queens != 1 {
		return fmt.Errorf("invalid rules: each team needs exactly one Queen, got %d", queens)
	}
	return nil
}

// LoadRules reads a YAML rules file. Fields missing from the file keep their
// standard values.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("failed to read rules: %w", err)
	}
	rules := StandardRules()
	hand := rules.Reserve
	rules.Reserve = nil
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RuleSet{}, fmt.Errorf("failed to parse rules: %w", err)
	}
	// Merge so a file may override a single kind
	for name, count := range rules.Reserve {
		hand[name] = count
	}
	rules.Reserve = hand
	if err := rules.Validate(); err != nil {
		return RuleSet{}, err
	}
	return rules, nil
}

func kindByName(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
