// Package logging provides structured logging utilities for recipegen.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command logs the same way. It supports environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
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
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipegen", "v1.0.0")
//	    slog.Info("generating", "input", "recipe")
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("recipegen", "v1.0.0", "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is passed:
//
//	LOG_LEVEL=debug recipegen generate
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "recipes generated",
//	    "module": "recipegen",
//	    "version": "v1.0.0",
//	    "count": 1204
//	}
package logging
