package decorator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/chainkit"
	"github.com/dmitrymomot/chainkit/core/config"
	"github.com/dmitrymomot/chainkit/core/logger"
)

// Config drives the standard decorator stack built by Default.
type Config struct {
	LogLevel         string        `env:"CHAINKIT_LOG_LEVEL" envDefault:"info"`
	SlowThreshold    time.Duration `env:"CHAINKIT_SLOW_THRESHOLD" envDefault:"500ms"`
	MetricsEnabled   bool          `env:"CHAINKIT_METRICS_ENABLED" envDefault:"true"`
	MetricsNamespace string        `env:"CHAINKIT_METRICS_NAMESPACE" envDefault:"chainkit"`
	TracingEnabled   bool          `env:"CHAINKIT_TRACING_ENABLED" envDefault:"false"`
	TracerName       string        `env:"CHAINKIT_TRACER_NAME" envDefault:"github.com/dmitrymomot/chainkit"`
	RecoverStack     bool          `env:"CHAINKIT_RECOVER_STACK" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Deps holds optional collaborators for Default. Zero values fall back to:
// a logger built from Config.LogLevel, prometheus.DefaultRegisterer, and a
// tracer from the global OpenTelemetry provider.
type Deps struct {
	Logger     *slog.Logger
	Registerer prometheus.Registerer
	Tracer     trace.Tracer
}

// Default builds the standard decorator stack, outermost first:
// tracing, logging, metrics, slow-call warnings, panic recovery.
// Tracing and metrics are only included when enabled.
func Default(cfg Config, deps Deps) ([]chainkit.Decorator, error) {
	log := deps.Logger
	if log == nil {
		log = logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}

	var decorators []chainkit.Decorator

	if cfg.TracingEnabled {
		tracer := deps.Tracer
		if tracer == nil {
			tracer = otel.Tracer(cfg.TracerName)
		}
		decorators = append(decorators, Tracing(tracer))
	}

	decorators = append(decorators, Logging(log))

	if cfg.MetricsEnabled {
		m, err := NewMetrics(cfg.MetricsNamespace, deps.Registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to build decorators: %w", err)
		}
		decorators = append(decorators, m.Decorator())
	}

	decorators = append(decorators,
		SlowLog(log, cfg.SlowThreshold),
		Recover(log, cfg.RecoverStack),
	)

	return decorators, nil
}
