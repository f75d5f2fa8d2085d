// Package decorator provides cross-cutting decorators for chainkit handlers.
//
// Decorators are passed to chainkit.New and applied to every handler of every
// pipeline the engine builds. The first decorator becomes the outermost wrapper.
//
// # Available Decorators
//
//   - Logging: debug records per invocation with a random invocation ID, error records for failures
//   - SlowLog: warning when an invocation exceeds a threshold
//   - Recover: converts panics into errors wrapping chainkit.ErrPanic
//   - Metrics: Prometheus counters, histograms and in-flight gauges per handler
//   - Tracing: one OpenTelemetry span per invocation
//
// All of them observe pending results through chainkit.Result.Finally, so
// asynchronous handlers are measured until their future settles.
//
// # Basic Usage
//
//	log := logger.New(logger.WithDevelopment("orders"))
//	metrics, err := decorator.NewMetrics("orders", prometheus.DefaultRegisterer)
//	if err != nil {
//		return err
//	}
//
//	engine := chainkit.New(
//		chainkit.WithLogger(log),
//		chainkit.WithDecorators(
//			decorator.Logging(log),
//			metrics.Decorator(),
//			decorator.Recover(log, false),
//		),
//	)
//
// # Configuration From Environment
//
// Default builds the standard stack from Config, which LoadConfig reads from
// CHAINKIT_* environment variables:
//
//	cfg, err := decorator.LoadConfig()
//	if err != nil {
//		return err
//	}
//	decorators, err := decorator.Default(cfg, decorator.Deps{Logger: log})
//	if err != nil {
//		return err
//	}
//	engine := chainkit.New(chainkit.WithDecorators(decorators...))
//
// Control signals (abort, jump) are reported as their own outcome, never as
// failures.
package decorator
