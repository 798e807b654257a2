package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change docpatch settings.

Settings are stored in ~/.docpatch/config.toml. Command-line flags
override them for a single run.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting.

Keys:
  document.path    - Document patched when no path is given
  backup.suffix    - Inserted before the extension of the backup file
  history.enabled  - Record runs (true or false)
  history.dir      - Directory holding the history database`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Document]")
	fmt.Fprintf(out, "  Path: %s\n", settings.DocumentPath)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Backup]")
	fmt.Fprintf(out, "  Suffix: %s\n", settings.BackupSuffix)
	fmt.Fprintf(out, "  Example: %s\n", domain.BackupPath(settings.DocumentPath, settings.BackupSuffix))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[History]")
	if settings.HistoryEnabled {
		fmt.Fprintln(out, "  Enabled: yes")
	} else {
		fmt.Fprintln(out, "  Enabled: no")
	}
	dir := settings.DataDir
	if dir == "" {
		dir = "(default)"
	}
	fmt.Fprintf(out, "  Directory: %s\n", dir)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "document.path":
		settings.DocumentPath = value
	case "backup.suffix":
		settings.BackupSuffix = value
	case "history.enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q (use true or false)", key, value)
		}
		settings.HistoryEnabled = enabled
	case "history.dir":
		settings.DataDir = value
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s to: %s\n", key, value)
	return nil
}
