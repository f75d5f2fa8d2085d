// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small logger factory with environment presets and a set of attribute
// helpers for handler pipelines.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/chainkit/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// Levels read from configuration are converted with ParseLevel:
//
//	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for empty input, which slog drops, so they
// are safe to pass unconditionally:
//
//	log.Error("handler failed",
//		logger.Handler(info.Name),   // omitted for anonymous handlers
//		logger.Signal(kind),         // omitted for genuine errors
//		logger.Error(err),           // omitted when err is nil
//		logger.Duration(elapsed),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())
//	log.Info("test message")
//	// assert on buf.String()
package logger
