// Package cli provides the docpatch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/ports/driving"
	"github.com/custodia-labs/docpatch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root.
var (
	patchService    driving.PatchService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
)

// verbose enables debug logging for every command.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docpatch",
	Short: "Apply ordered text corrections to a document",
	Long: `docpatch replays an ordered list of text patch operations against a
document, keeps a backup of the original, writes the corrected copy and
reports what each operation did.

Operations that change nothing are listed so stale corrections can be
reviewed. Running the built-in plan twice leaves the document unchanged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Services holds the driving ports used by the commands.
type Services struct {
	Patch    driving.PatchService
	History  driving.HistoryService
	Settings driving.SettingsService
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	patchService = s.Patch
	historyService = s.History
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	printError(rootCmd.ErrOrStderr(), err)
	return err
}

// reportedError wraps an error whose diagnostic a command already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// printError prints err unless a command already reported it.
func printError(w io.Writer, err error) {
	var reported *reportedError
	if err == nil || errors.As(err, &reported) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// currentSettings returns the stored settings, or defaults when no
// settings service is configured.
func currentSettings() (*domain.Settings, error) {
	if settingsService == nil {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	return settingsService.Get()
}

// styled reports whether the command writes to a terminal.
func styled(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
