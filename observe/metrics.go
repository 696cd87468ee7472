package observe

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/maxflow/flow"
)

// Metrics counts augmentation rounds and pushed units. Register it once per
// registry; the same value may observe any number of runs, concurrently.
type Metrics struct {
	Augmentations prometheus.Counter
	Pushed        prometheus.Counter
	Bottleneck    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Augmentations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maxflow_augmentations_total",
			Help: "Augmenting paths applied across all max-flow runs.",
		}),
		Pushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maxflow_pushed_units_total",
			Help: "Flow units pushed from source to sink across all runs.",
		}),
		Bottleneck: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "maxflow_bottleneck_units",
			Help:    "Bottleneck capacity of each augmenting path.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Augmentations, m.Pushed, m.Bottleneck} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// OnAugment implements flow.Observer.
func (m *Metrics) OnAugment(r flow.Round) {
	m.Augmentations.Inc()
	m.Pushed.Add(float64(r.Bottleneck))
	m.Bottleneck.Observe(float64(r.Bottleneck))
}
