package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// shortIDLength is how much of a run ID the list shows.
const shortIDLength = 8

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded patch runs",
	Long:  `Lists recorded patch runs, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintln(out, "Runs:")
	fmt.Fprintln(out)
	for i := range runs {
		run := &runs[i]
		// Format: [N] ID  started  document
		fmt.Fprintf(out, "  [%d] %s  %s  %s\n",
			i+1, shortID(run.ID), run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.Path)
		fmt.Fprintf(out, "      %d/%d applied, %+d lines, %s\n",
			run.Applied, run.Operations, run.Delta(), runMode(run))
		if len(run.NoEffect) > 0 {
			fmt.Fprintf(out, "      %d without effect\n", len(run.NoEffect))
		}
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	run, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run not found: %s", args[0])
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:        %s\n", run.ID)
	fmt.Fprintf(out, "Started:    %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Document:   %s\n", run.Path)
	fmt.Fprintf(out, "Plan:       %s\n", run.Plan)
	fmt.Fprintf(out, "Mode:       %s\n", runMode(run))
	if run.BackupPath != "" {
		fmt.Fprintf(out, "Backup:     %s\n", run.BackupPath)
	}
	fmt.Fprintf(out, "Operations: %d executed, %d applied\n", run.Operations, run.Applied)
	fmt.Fprintf(out, "Lines:      %d -> %d (%+d)\n", run.InputLines, run.OutputLines, run.Delta())
	if len(run.NoEffect) > 0 {
		fmt.Fprintln(out, "Without effect:")
		for _, label := range run.NoEffect {
			fmt.Fprintf(out, "  - %s\n", label)
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func runMode(run *domain.Run) string {
	if run.DryRun {
		return "dry-run"
	}
	return "write"
}
