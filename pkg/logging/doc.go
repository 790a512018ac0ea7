// Package logging provides structured logging utilities for recipe-helper components.
//
// # Overview
//
// This package wraps the standard library slog package with project-specific defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("recipe-helper", "v1.0.0", "")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("building recipe", "name", "chocolate-cake")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("cookbook", "v2.0.0", "debug")
//	logger.Info("building recipes", "count", 3)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug recipe-helper cost
//	LOG_LEVEL=error recipe-helper prices
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "price database loaded",
//	    "module": "recipe-helper",
//	    "version": "v1.0.0",
//	    "entries": 42
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "prices.LoadFile",
//	        "file": "database.go",
//	        "line": 45
//	    },
//	    "msg": "loading price file",
//	    "module": "recipe-helper",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("myapp", version, logLevel)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("recipe built",
//	    "name", "chocolate-cake",
//	    "ingredients", 9,
//	    "total", 12.4,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("price row parsed", "name", name) // Development/troubleshooting
//	slog.Info("recipe built")                    // Normal operations
//	slog.Warn("duplicate price row")             // Potential issues
//	slog.Error("price file invalid")             // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to build recipe",
//	    "error", err,
//	    "recipe", name,
//	    "source", source,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/prices - Price database loading
//   - pkg/recipe - Recipe construction
//   - pkg/cookbook - Recipe directory discovery and batch builds
//
// All components share consistent logging format and configuration.
package logging
