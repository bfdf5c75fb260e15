package prometheus

import (
	"github.com/amirasaad/ledger/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements metrics.Collector for Prometheus.
type PrometheusCollector struct {
	namespace string

	transactions *prometheus.CounterVec
	customers    prometheus.Counter
	accounts     prometheus.Counter
}

// NewPrometheusCollector creates a new Prometheus metrics collector.
func NewPrometheusCollector(namespace string) *PrometheusCollector {
	return &PrometheusCollector{
		namespace: namespace,
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_total",
				Help:      "Total number of transactions per kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		customers: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "customers_registered_total",
				Help:      "Total number of registered customers",
			},
		),
		accounts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_opened_total",
				Help:      "Total number of opened checking accounts",
			},
		),
	}
}

// Register registers all metrics with the given Prometheus registry.
func (pc *PrometheusCollector) Register(registry prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{pc.transactions, pc.customers, pc.accounts} {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// RecordTransaction records a deposit or withdrawal outcome.
func (pc *PrometheusCollector) RecordTransaction(kind, outcome string) {
	pc.transactions.WithLabelValues(kind, outcome).Inc()
}

// RecordCustomerRegistered records a customer registration.
func (pc *PrometheusCollector) RecordCustomerRegistered() {
	pc.customers.Inc()
}

// RecordAccountOpened records an opened account.
func (pc *PrometheusCollector) RecordAccountOpened() {
	pc.accounts.Inc()
}

var _ metrics.Collector = (*PrometheusCollector)(nil)
