package decorator

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/chainkit"
)

// Outcome labels recorded by Metrics.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeAbort = "abort"
	OutcomeJump  = "jump"
)

// Metrics records Prometheus metrics per handler.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inFlight    *prometheus.GaugeVec
}

// NewMetrics creates handler metrics under namespace and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "handler_invocations_total",
				Help:      "Handler invocations by outcome",
			},
			[]string{"handler", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "handler_duration_seconds",
				Help:      "Handler duration including pending work",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"handler"},
		),
		inFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "handler_in_flight",
				Help:      "Handler invocations not yet resolved",
			},
			[]string{"handler"},
		),
	}

	for _, c := range []prometheus.Collector{m.invocations, m.duration, m.inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register handler metrics: %w", err)
		}
	}

	return m, nil
}

// Decorator returns a decorator recording metrics for every handler it wraps.
func (m *Metrics) Decorator() chainkit.Decorator {
	return func(next chainkit.Invoker, info chainkit.Info) chainkit.Invoker {
		label := info.Label()
		return func(ctx context.Context, args ...any) chainkit.Result {
			start := time.Now()
			m.inFlight.WithLabelValues(label).Inc()

			return next(ctx, args...).Finally(ctx, func(_ any, err error) {
				m.inFlight.WithLabelValues(label).Dec()
				m.duration.WithLabelValues(label).Observe(time.Since(start).Seconds())
				m.invocations.WithLabelValues(label, Outcome(err)).Inc()
			})
		}
	}
}

// Outcome classifies an invocation error for metric labels.
func Outcome(err error) string {
	switch chainkit.SignalKind(err) {
	case "abort":
		return OutcomeAbort
	case "jump":
		return OutcomeJump
	}
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
