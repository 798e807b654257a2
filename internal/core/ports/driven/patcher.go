package driven

import "github.com/custodia-labs/docpatch/internal/core/domain"

// Patcher applies operations to a text buffer in memory.
type Patcher interface {
	// Apply runs ops in order against text and returns the final text and
	// one result per operation. On error no text is returned.
	Apply(text string, ops []domain.Operation) (string, []domain.Result, error)
}
