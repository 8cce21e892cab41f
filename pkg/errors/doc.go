// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidChoice,
//	    "coil tier outside declared option range",
//	    map[string]interface{}{
//	        "machine": "Electric Blast Furnace",
//	        "choice":  "coil",
//	        "value":   17,
//	    },
//	)
package errors
