package driving

import (
	"context"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// PatchService applies the configured plan to documents.
type PatchService interface {
	// Apply patches one document. Nothing is written unless every
	// operation succeeds, and nothing at all is written on a dry run.
	Apply(ctx context.Context, req ApplyRequest) (*ApplyResult, error)

	// Plan returns the plan this service applies.
	Plan() *domain.Plan
}

// ApplyRequest describes one patch run.
type ApplyRequest struct {
	// Path is the document to patch.
	Path string

	// BackupSuffix derives the backup path. Empty uses the default.
	BackupSuffix string

	// DryRun computes the result without writing anything.
	DryRun bool

	// SkipHistory disables recording this run.
	SkipHistory bool

	// Plan overrides the service's plan for this run when non-nil.
	Plan *domain.Plan
}

// ApplyResult is the outcome of a successful run.
type ApplyResult struct {
	// Document holds the original and corrected text.
	Document domain.Document

	// Report is the per-operation outcome.
	Report *domain.Report

	// BackupPath is where the original was copied, or would be on a dry run.
	BackupPath string

	// Written is true if the backup and document were written.
	Written bool

	// Run is the history record, or nil if none was stored.
	Run *domain.Run
}
