// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Correlation
//
// Two helpers attach correlation fields:
//   - WithRayID extracts the RayID of an HTTP request from the Fiber context.
//   - WithRun tags every line of one engine invocation with its run id and engine name,
//     so an invocation can be followed whether it came from the CLI or the HTTP surface.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithRun(log, runID, "glossary")
//	l.Warn("Term skipped", zap.String("term", name))
package logger
