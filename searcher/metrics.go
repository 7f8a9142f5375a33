package searcher

import (
	"sync/atomic"
	"time"
)

// MoveMetrics describes one BestMove search.
type MoveMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Goroutines int
	Depth      int
	Nodes      int64 // Positions visited, including interior nodes
	Leaves     int64 // Positions statically evaluated
	Passes     int64 // Forced passes encountered inside the tree
}

// MetricsCollector accumulates counters during a search. Implementations
// must be safe for concurrent use by the root worker pool.
type MetricsCollector interface {
	Start(goroutines, depth int)
	AddNode()
	AddLeaf()
	AddPass()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime  time.Time
	goroutines int
	depth      int
	nodes      atomic.Int64
	leaves     atomic.Int64
	passes     atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.passes.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddPass() {
	m.passes.Add(1)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Passes:     m.passes.Load(),
	}
}

type noMetricsCollector struct{}

// NewNoMetricsCollector returns a collector that discards everything, for
// searches where the counter traffic is unwanted overhead.
func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(goroutines, depth int) {}
func (m *noMetricsCollector) AddNode()                    {}
func (m *noMetricsCollector) AddLeaf()                    {}
func (m *noMetricsCollector) AddPass()                    {}
func (m *noMetricsCollector) Complete() MoveMetrics       { return MoveMetrics{} }
