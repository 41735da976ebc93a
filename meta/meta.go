// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the default number of goroutines expanding a search tree.
const GO_ROUTINES = 8

// EASY_DEPTH defines the search depth of the easy machine player.
const EASY_DEPTH = 1

// MEDIUM_DEPTH defines the search depth of the medium machine player.
const MEDIUM_DEPTH = 2

// HARD_DEPTH defines the search depth of the hard machine player.
const HARD_DEPTH = 3

// MACHINE_DELAY defines how long the machine waits before replying to a human.
const MACHINE_DELAY = 500 * time.Millisecond

// MAX_TURNS caps machine-only games that never reach a result.
const MAX_TURNS = 300

// RESULTS_DIR defines where experiment CSV files are written.
const RESULTS_DIR = "results"
