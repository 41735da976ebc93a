package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Mode        string
	Workers     int
	Duration    time.Duration // time spent building, deepening and scoring the tree
	Leaves      int           // leaves expanded since the previous search
	Score       int
	IsTreeReset bool
}

type MoveMetric struct {
	Step   int
	Player int // Team
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // Team
	Winner         string // Team name, "" for no winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates search work between two moves. Implementations must
// be safe for concurrent AddLeaf calls.
type Collector interface {
	AddLeaf()
	AddDuration(d time.Duration)
	SetTreeReset(value bool)
	// Complete snapshots the counters and resets them for the next move.
	Complete(depth int, mode string, workers int) SearchMetric
}

type collector struct {
	leaves      atomic.Int64
	duration    atomic.Int64
	isTreeReset atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddDuration(d time.Duration) {
	m.duration.Add(int64(d))
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

func (m *collector) Complete(depth int, mode string, workers int) SearchMetric {
	return SearchMetric{
		Depth:       depth,
		Mode:        mode,
		Workers:     workers,
		Duration:    time.Duration(m.duration.Swap(0)),
		Leaves:      int(m.leaves.Swap(0)),
		IsTreeReset: m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddLeaf()                  {}
func (m *dummyCollector) AddDuration(time.Duration) {}
func (m *dummyCollector) SetTreeReset(value bool)   {}
func (m *dummyCollector) Complete(depth int, mode string, workers int) SearchMetric {
	return SearchMetric{Depth: depth, Mode: mode, Workers: workers}
}
