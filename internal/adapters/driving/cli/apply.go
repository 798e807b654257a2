package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/ports/driving"
	"github.com/custodia-labs/docpatch/internal/patch"
	"github.com/custodia-labs/docpatch/internal/report"
)

// applyOptions holds the apply command flags.
type applyOptions struct {
	dryRun       bool
	diff         bool
	backupSuffix string
	noHistory    bool
	planFile     string
}

var applyOpts applyOptions

var applyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Apply the correction plan to a document",
	Long: `Applies every operation of the plan, in order, to the document.

The original is saved next to the document with the backup suffix
(docs/ANALYSIS.md becomes docs/ANALYSIS.backup.md) before the corrected
text is written. If any operation fails nothing is written.

Without a path, the document.path setting is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyOpts.dryRun, "dry-run", false, "Compute and report without writing anything")
	applyCmd.Flags().BoolVar(&applyOpts.diff, "diff", false, "Show a unified diff of the changes")
	applyCmd.Flags().StringVar(&applyOpts.backupSuffix, "backup-suffix", "", "Suffix for the backup file (default from settings)")
	applyCmd.Flags().BoolVar(&applyOpts.noHistory, "no-history", false, "Do not record this run")
	applyCmd.Flags().StringVar(&applyOpts.planFile, "plan", "", "Load operations from a TOML plan file instead of the built-in plan")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	if patchService == nil {
		return errors.New("patch service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	req := driving.ApplyRequest{
		Path:         settings.DocumentPath,
		BackupSuffix: settings.BackupSuffix,
		DryRun:       applyOpts.dryRun,
		SkipHistory:  applyOpts.noHistory || !settings.HistoryEnabled,
	}
	if len(args) > 0 {
		req.Path = args[0]
	}
	if applyOpts.backupSuffix != "" {
		req.BackupSuffix = applyOpts.backupSuffix
	}
	if applyOpts.planFile != "" {
		plan, err := loadPlanFile(applyOpts.planFile)
		if err != nil {
			return err
		}
		req.Plan = plan
	}

	out := cmd.OutOrStdout()
	result, err := patchService.Apply(cmd.Context(), req)
	if err != nil {
		if printApplyError(cmd.ErrOrStderr(), req.Path, err) {
			return &reportedError{err: err}
		}
		return err
	}

	opts := report.Options{Styled: styled(cmd), Operations: verbose}

	fmt.Fprintf(out, "📖 Reading %s...\n", req.Path)
	fmt.Fprintln(out, "✏️  Applying corrections...")
	if result.Written {
		fmt.Fprintf(out, "💾 Backup saved: %s\n", result.BackupPath)
		fmt.Fprintf(out, "✅ Corrections applied: %s\n", req.Path)
	} else {
		fmt.Fprintf(out, "🔍 Dry run: nothing written (backup would be %s)\n", result.BackupPath)
	}
	fmt.Fprintln(out)

	if err := report.Render(out, result.Report, opts); err != nil {
		return err
	}

	if applyOpts.diff || applyOpts.dryRun {
		fmt.Fprintln(out)
		if err := report.RenderDiff(out, req.Path, result.Document.Original, result.Document.Corrected, opts); err != nil {
			return err
		}
	}

	if result.Written && req.Plan == nil {
		printNextSteps(out, req.Path)
	}
	return nil
}

// loadPlanFile decodes an external TOML plan.
func loadPlanFile(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	plan, err := patch.ParsePlan(data, patch.DefaultRegistry())
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}
	return plan, nil
}

// printApplyError writes a diagnostic for the failures a user can act on.
// It returns false when err has no specific diagnostic.
func printApplyError(w io.Writer, path string, err error) bool {
	var patchErr *domain.PatchError
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		fmt.Fprintf(w, "❌ ERROR: %s not found!\n", path)
		if wd, wdErr := os.Getwd(); wdErr == nil {
			fmt.Fprintf(w, "   Current directory: %s\n", wd)
		}
		fmt.Fprintln(w, "   Run from project root or pass the document path: docpatch apply <path>")
	case errors.Is(err, domain.ErrLocked):
		fmt.Fprintf(w, "❌ ERROR: %s is being patched by another run\n", path)
	case errors.As(err, &patchErr):
		fmt.Fprintf(w, "❌ ERROR: operation %d (%s) failed: %v\n", patchErr.Index+1, patchErr.Label, patchErr.Err)
		fmt.Fprintf(w, "   %s was not modified\n", path)
	default:
		return false
	}
	return true
}

// nextSteps are the follow-up tasks for the built-in plan.
var nextSteps = []string{
	"Review changes: git diff %s",
	"Fix ASI duplicates: docker compose exec mysql mysql -uroot -ppassword dnd_compendium < docs/fix-asi-duplicates.sql",
	"Verify ASI data: docker compose exec php php docs/verify-asi-data.php",
	"Start Phase 1 implementation!",
}

func printNextSteps(w io.Writer, path string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🎯 Next Steps:")
	for i, step := range nextSteps {
		if i == 0 {
			step = fmt.Sprintf(step, path)
		}
		fmt.Fprintf(w, "   %d. %s\n", i+1, step)
	}
}
