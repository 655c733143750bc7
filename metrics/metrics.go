package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks parameter synchronization traffic
type Metrics struct {
	stateReads      atomic.Int64
	stateWrites     atomic.Int64
	configLoads     atomic.Int64
	incompleteLoads atomic.Int64
	configSaves     atomic.Int64

	// Per-field write stats
	mu         sync.RWMutex
	fieldStats map[string]*FieldStats
	startTime  time.Time
}

// FieldStats tracks how often clients wrote a specific field
type FieldStats struct {
	Field        string    `json:"field"`
	Writes       int64     `json:"writes"`
	LastWriteAt  time.Time `json:"last_write_at"`
	FirstWriteAt time.Time `json:"first_write_at"`
}

// NewMetrics creates a new metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{
		fieldStats: make(map[string]*FieldStats),
		startTime:  time.Now(),
	}
}

// RecordStateRead records a live-state read
func (m *Metrics) RecordStateRead() {
	m.stateReads.Add(1)
}

// RecordStateWrite records a live-state write touching the given fields
func (m *Metrics) RecordStateWrite(fields []string) {
	m.stateWrites.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for _, field := range fields {
		stats, exists := m.fieldStats[field]
		if !exists {
			stats = &FieldStats{
				Field:        field,
				FirstWriteAt: now,
			}
			m.fieldStats[field] = stats
		}
		stats.Writes++
		stats.LastWriteAt = now
	}
}

// RecordConfigLoad records one module reading its configuration
func (m *Metrics) RecordConfigLoad(complete bool) {
	m.configLoads.Add(1)
	if !complete {
		m.incompleteLoads.Add(1)
	}
}

// RecordConfigSave records a configuration save
func (m *Metrics) RecordConfigSave() {
	m.configSaves.Add(1)
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	topFields := make([]*FieldStats, 0, len(m.fieldStats))
	for _, stats := range m.fieldStats {
		copied := *stats
		topFields = append(topFields, &copied)
	}

	// Most written first (top 10)
	sort.Slice(topFields, func(i, j int) bool {
		if topFields[i].Writes != topFields[j].Writes {
			return topFields[i].Writes > topFields[j].Writes
		}
		return topFields[i].Field < topFields[j].Field
	})
	if len(topFields) > 10 {
		topFields = topFields[:10]
	}

	uptime := time.Since(m.startTime)

	return &Snapshot{
		StateReads:      m.stateReads.Load(),
		StateWrites:     m.stateWrites.Load(),
		ConfigLoads:     m.configLoads.Load(),
		IncompleteLoads: m.incompleteLoads.Load(),
		ConfigSaves:     m.configSaves.Load(),
		TopFields:       topFields,
		UptimeSeconds:   int64(uptime.Seconds()),
		StartTime:       m.startTime,
	}
}

// Snapshot represents a point-in-time view of metrics
type Snapshot struct {
	StateReads      int64         `json:"state_reads"`
	StateWrites     int64         `json:"state_writes"`
	ConfigLoads     int64         `json:"config_loads"`
	IncompleteLoads int64         `json:"incomplete_loads"`
	ConfigSaves     int64         `json:"config_saves"`
	TopFields       []*FieldStats `json:"top_fields"`
	UptimeSeconds   int64         `json:"uptime_seconds"`
	StartTime       time.Time     `json:"start_time"`
}
