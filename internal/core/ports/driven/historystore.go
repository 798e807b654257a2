package driven

import (
	"context"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// HistoryStore persists records of patch runs.
type HistoryStore interface {
	// Save stores a run, assigning an ID if it has none.
	Save(ctx context.Context, run *domain.Run) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if no run has that ID.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// List returns up to limit runs, newest first.
	// A limit of zero or less returns every run.
	List(ctx context.Context, limit int) ([]domain.Run, error)
}
