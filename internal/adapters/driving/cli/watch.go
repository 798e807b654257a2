package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docpatch/internal/core/ports/driving"
	"github.com/custodia-labs/docpatch/internal/logger"
	"github.com/custodia-labs/docpatch/internal/report"
	"github.com/custodia-labs/docpatch/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Report stale corrections whenever the document changes",
	Long: `Watches the document and prints a dry-run report each time it is saved.

The document is never written and runs are not recorded. Use it while
editing to see which corrections still apply. Press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before re-checking")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if patchService == nil {
		return errors.New("patch service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	path := settings.DocumentPath
	if len(args) > 0 {
		path = args[0]
	}

	ctx := cmd.Context()
	check := newWatchCheck(cmd.OutOrStdout(), report.Options{Styled: styled(cmd)})

	if err := check.run(ctx, path); err != nil {
		return err
	}

	w, err := watcher.New(path, watchDebounce, func(ctx context.Context, p string) {
		if err := check.run(ctx, p); err != nil {
			logger.Warn("Check failed: %v", err)
			fmt.Fprintf(check.out, "❌ %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		_ = w.Stop()
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "👀 Watching %s (Ctrl+C to stop)\n", path)
	<-ctx.Done()
	return w.Stop()
}

// watchCheck prints one dry-run report per change.
type watchCheck struct {
	mu   sync.Mutex
	out  io.Writer
	opts report.Options
	now  func() time.Time
}

func newWatchCheck(out io.Writer, opts report.Options) *watchCheck {
	return &watchCheck{out: out, opts: opts, now: time.Now}
}

func (c *watchCheck) run(ctx context.Context, path string) error {
	result, err := patchService.Apply(ctx, driving.ApplyRequest{
		Path:        path,
		DryRun:      true,
		SkipHistory: true,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "\n[%s] %s\n", c.now().Format("15:04:05"), path)
	if !result.Report.Changed() {
		fmt.Fprintln(c.out, "✅ Up to date: no operation changes the document")
	}
	return report.Render(c.out, result.Report, c.opts)
}
