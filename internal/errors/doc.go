// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// capacity, calculation, etc.) and for carrying the underlying cause, and maps
// them to process exit codes.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
