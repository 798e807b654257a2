package driving

import (
	"context"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// HistoryService reads recorded patch runs.
type HistoryService interface {
	// List returns up to limit runs, newest first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
