// Package errors provides the classified error primitives used across outscaffold.
//
// Key features:
//   - ErrorCategory: Broad error classification (permission, invalid_path, config, etc.)
//   - ErrorSeverity: Impact level (fatal, error)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing messages for the CLI
//
// Example usage:
//
//	err := errors.InvalidPathError("path component is not a directory").
//		WithContext("path", "outputs/CIFAR").
//		WithCause(statErr).
//		Build()
package errors
