package domain

import "time"

// Run is a recorded execution of a plan against a document.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// Path is the target document.
	Path string

	// BackupPath is where the original was copied. Empty for dry runs.
	BackupPath string

	// Plan names the operation list that was applied.
	Plan string

	// DryRun is true if nothing was written.
	DryRun bool

	// Operations is the number of operations executed.
	Operations int

	// Applied is the number of operations that changed the buffer.
	Applied int

	// NoEffect lists the labels of operations that changed nothing.
	NoEffect []string

	// InputLines is the line count before the run.
	InputLines int

	// OutputLines is the line count after the run.
	OutputLines int

	// StartedAt is when the run began.
	StartedAt time.Time
}

// Delta returns the signed line-count change.
func (r *Run) Delta() int {
	return r.OutputLines - r.InputLines
}

// NewRun summarises a report as a history record.
// The ID and StartedAt are left to the caller.
func NewRun(path, backupPath, plan string, dryRun bool, report *Report) Run {
	run := Run{
		Path:        path,
		BackupPath:  backupPath,
		Plan:        plan,
		DryRun:      dryRun,
		Operations:  report.Executed(),
		Applied:     len(report.Applied()),
		InputLines:  report.InputLines,
		OutputLines: report.OutputLines,
	}
	for _, res := range report.NoEffect() {
		run.NoEffect = append(run.NoEffect, res.Label)
	}
	return run
}
