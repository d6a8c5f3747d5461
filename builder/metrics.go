package builder

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "genremap"

// Metrics holds the Prometheus counters updated during ingestion.
type Metrics struct {
	RecordsIngested prometheus.Counter
	RecordsSkipped  prometheus.Counter
	PairsCounted    prometheus.Counter
}

// NewMetrics creates the builder counters and registers them with reg.
// A nil reg yields working but unregistered counters. Registering twice on
// the same registry reuses the already registered collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RecordsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "builder",
			Name:      "records_ingested_total",
			Help:      "Total number of records that contributed to the graph",
		}),
		RecordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "builder",
			Name:      "records_skipped_total",
			Help:      "Total number of invalid records dropped under the skip policy",
		}),
		PairsCounted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "builder",
			Name:      "pairs_counted_total",
			Help:      "Total number of label pair observations added to the graph",
		}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.RecordsIngested, err = register(reg, m.RecordsIngested); err != nil {
		return nil, err
	}
	if m.RecordsSkipped, err = register(reg, m.RecordsSkipped); err != nil {
		return nil, err
	}
	if m.PairsCounted, err = register(reg, m.PairsCounted); err != nil {
		return nil, err
	}

	return m, nil
}

// register registers c, returning the existing collector on duplicates.
func register(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// observe updates counters; safe on a nil receiver.
func (m *Metrics) observe(ingested, skipped, pairs int) {
	if m == nil {
		return
	}
	m.RecordsIngested.Add(float64(ingested))
	m.RecordsSkipped.Add(float64(skipped))
	m.PairsCounted.Add(float64(pairs))
}
