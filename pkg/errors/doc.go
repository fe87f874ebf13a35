// Package errors provides structured error types for better observability
// and programmatic error handling across recipegen.
//
// Record-level failures carry ErrCodeUnrecognized and are recovered by the
// generator; everything else aborts the run.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to parse recipe document",
//	    cause,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
package errors
