package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks API statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal   atomic.Int64
	ItemsAdded      atomic.Int64
	ItemsDeleted    atomic.Int64
	FetchFailures   atomic.Int64
	InFlightFetches atomic.Int32
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the request counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncItemsAdded increments the added items counter
func (m *Metrics) IncItemsAdded() {
	m.ItemsAdded.Add(1)
}

// IncItemsDeleted increments the deleted items counter
func (m *Metrics) IncItemsDeleted() {
	m.ItemsDeleted.Add(1)
}

// IncFetchFailures increments the failed fetch counter
func (m *Metrics) IncFetchFailures() {
	m.FetchFailures.Add(1)
}

// fetchStarted marks a fetch as running and returns the func that ends it
func (m *Metrics) fetchStarted() func() {
	m.InFlightFetches.Add(1)
	return func() { m.InFlightFetches.Add(-1) }
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal   int64     `json:"requests_total"`
	ItemsAdded      int64     `json:"items_added"`
	ItemsDeleted    int64     `json:"items_deleted"`
	FetchFailures   int64     `json:"fetch_failures"`
	InFlightFetches int32     `json:"in_flight_fetches"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:   m.RequestsTotal.Load(),
		ItemsAdded:      m.ItemsAdded.Load(),
		ItemsDeleted:    m.ItemsDeleted.Load(),
		FetchFailures:   m.FetchFailures.Load(),
		InFlightFetches: m.InFlightFetches.Load(),
		StartTime:       m.StartTime,
		Uptime:          time.Since(m.StartTime).String(),
	}
}
