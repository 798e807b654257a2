package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/ports/driven"
	"github.com/custodia-labs/docpatch/internal/core/ports/driving"
	"github.com/custodia-labs/docpatch/internal/logger"
)

// Ensure PatchService implements the interface.
var _ driving.PatchService = (*PatchService)(nil)

// PatchService applies one plan to documents on disk.
//
// A run locks the document, reads it, computes the corrected text in
// memory, then writes the backup followed by the document. Any failure
// before the writes leaves the file system untouched.
type PatchService struct {
	documents driven.DocumentStore
	history   driven.HistoryStore
	patcher   driven.Patcher
	plan      *domain.Plan
	now       func() time.Time
}

// NewPatchService creates a patch service.
// history may be nil, in which case runs are not recorded.
func NewPatchService(
	documents driven.DocumentStore,
	history driven.HistoryStore,
	patcher driven.Patcher,
	plan *domain.Plan,
) *PatchService {
	return &PatchService{
		documents: documents,
		history:   history,
		patcher:   patcher,
		plan:      plan,
		now:       time.Now,
	}
}

// Plan returns the plan this service applies.
func (s *PatchService) Plan() *domain.Plan {
	return s.plan
}

// Apply patches the document named by req.
func (s *PatchService) Apply(ctx context.Context, req driving.ApplyRequest) (*driving.ApplyResult, error) {
	logger.Section("Patch Run")

	if req.Path == "" {
		return nil, fmt.Errorf("%w: document path is empty", domain.ErrInvalidInput)
	}
	plan := s.plan
	if req.Plan != nil {
		plan = req.Plan
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan %s: %w", plan.Name, err)
	}

	suffix := req.BackupSuffix
	if suffix == "" {
		suffix = domain.DefaultBackupSuffix
	}
	backupPath := domain.BackupPath(req.Path, suffix)
	logger.Debug("Document: %s", req.Path)
	logger.Debug("Backup: %s", backupPath)
	logger.Debug("Plan: %s (%d operations), dry run: %t", plan.Name, plan.Len(), req.DryRun)

	startedAt := s.now()

	done := logger.Stage("lock")
	unlock, err := s.documents.Lock(ctx, req.Path)
	done()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", req.Path, err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logger.Warn("Failed to release lock on %s: %v", req.Path, err)
		}
	}()

	done = logger.Stage("read")
	original, err := s.documents.Read(ctx, req.Path)
	done()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.Path, err)
	}

	done = logger.Stage("apply")
	corrected, results, err := s.patcher.Apply(original, plan.Operations)
	done()
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", plan.Name, err)
	}

	report := domain.NewReport(results, original, corrected)
	for _, res := range report.NoEffect() {
		logger.Warn("Operation %d (%s) had no effect", res.Index+1, res.Label)
	}

	result := &driving.ApplyResult{
		Document: domain.Document{
			Path:      req.Path,
			Original:  original,
			Corrected: corrected,
		},
		Report:     report,
		BackupPath: backupPath,
	}

	if !req.DryRun {
		if err := s.write(ctx, req.Path, backupPath, original, corrected); err != nil {
			return nil, err
		}
		result.Written = true
	}

	if s.history != nil && !req.SkipHistory {
		result.Run = s.record(ctx, result, plan.Name, req.DryRun, startedAt)
	}

	return result, nil
}

// write stores the backup first so the original survives a failed
// document write.
func (s *PatchService) write(ctx context.Context, path, backupPath, original, corrected string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := logger.Stage("backup")
	err := s.documents.Write(ctx, backupPath, original)
	done()
	if err != nil {
		return fmt.Errorf("write backup %s: %w", backupPath, err)
	}

	done = logger.Stage("write")
	err = s.documents.Write(ctx, path, corrected)
	done()
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// record saves the run to history. Failures are logged, not returned:
// the document has already been written.
func (s *PatchService) record(
	ctx context.Context,
	result *driving.ApplyResult,
	planName string,
	dryRun bool,
	startedAt time.Time,
) *domain.Run {
	backupPath := result.BackupPath
	if !result.Written {
		backupPath = ""
	}

	run := domain.NewRun(result.Document.Path, backupPath, planName, dryRun, result.Report)
	run.StartedAt = startedAt

	done := logger.Stage("history")
	err := s.history.Save(ctx, &run)
	done()
	if err != nil {
		logger.Warn("Failed to record run: %v", err)
		return nil
	}
	logger.Debug("Recorded run %s", run.ID)
	return &run
}
