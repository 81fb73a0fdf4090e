// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and keeps all output on stderr, leaving stdout
// free for generated source when the output target is "-".
//
// # Run Correlation
//
// Every invocation of the generator gets a run id. The WithRunID helper attaches
// it to the logger so that all entries of one run can be correlated in CI logs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (machine readable) or console (human readable)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Catalog fetched", zap.Int("bytes", n))
package logger
