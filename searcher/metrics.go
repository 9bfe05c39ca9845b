package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Searches   int64
	Placements int64
}

type MetricsCollector interface {
	Start()
	AddSearch()
	AddPlacement()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	searches   atomic.Int64
	placements atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.searches.Store(0)
	m.placements.Store(0)
}

func (m *metricsCollector) AddSearch() {
	m.searches.Add(1)
}

func (m *metricsCollector) AddPlacement() {
	m.placements.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Searches:   m.searches.Load(),
		Placements: m.placements.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddSearch()              {}
func (m *noMetricsCollector) AddPlacement()           {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
