// Package domain defines the core types of docpatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Operation: One patch instruction (literal, regex, template, insert)
//   - Result: What a single operation did to the buffer
//   - Report: The ordered results of a run plus line counts
//   - Document: An original text and its corrected copy
//   - Plan: A named, ordered list of operations
//   - Run: A recorded execution of a plan against a document
//   - Settings: User configuration for the wrapper
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
