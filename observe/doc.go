// Package observe provides flow.Observer implementations for tracing and
// metering Edmonds–Karp runs.
//
//	LogObserver - one logrus entry per augmentation round.
//	Metrics     - Prometheus counters and a bottleneck histogram.
//	Multi       - fans a round out to several observers.
//
// Observers only see flow.Round values; they never touch the residual
// network. Metrics is safe for concurrent use; LogObserver is as safe as the
// logger it wraps (a *logrus.Logger is).
package observe
