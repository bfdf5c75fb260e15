// Package metrics defines the collector the ledger reports business counters to.
// Implementations can export metrics to various backends.
package metrics

// Transaction outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

// Collector defines the interface for collecting ledger metrics.
type Collector interface {
	// RecordTransaction counts a deposit or withdrawal by kind and outcome.
	RecordTransaction(kind, outcome string)
	RecordCustomerRegistered()
	RecordAccountOpened()
}

// NoOpCollector is a no-op implementation of Collector.
// It's used as the default collector when metrics are not needed.
type NoOpCollector struct{}

// RecordTransaction does nothing.
func (NoOpCollector) RecordTransaction(kind, outcome string) {}

// RecordCustomerRegistered does nothing.
func (NoOpCollector) RecordCustomerRegistered() {}

// RecordAccountOpened does nothing.
func (NoOpCollector) RecordAccountOpened() {}

var _ Collector = NoOpCollector{}
