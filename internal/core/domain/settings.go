package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default settings, matching the layout the corrections were written for.
const (
	// DefaultDocumentPath is the document patched when no path is given.
	DefaultDocumentPath = "docs/CHARACTER-BUILDER-ANALYSIS.md"

	// DefaultBackupSuffix is inserted between the file stem and extension.
	DefaultBackupSuffix = ".backup"
)

// Settings holds user configuration for the patch wrapper.
type Settings struct {
	// DocumentPath is the default target document.
	DocumentPath string

	// BackupSuffix derives the backup path from the document path.
	BackupSuffix string

	// HistoryEnabled records each run in the history store.
	HistoryEnabled bool

	// DataDir is where the history database lives.
	// Empty means the default (~/.docpatch/data).
	DataDir string
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		DocumentPath:   DefaultDocumentPath,
		BackupSuffix:   DefaultBackupSuffix,
		HistoryEnabled: true,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.DocumentPath == "" {
		return fmt.Errorf("%w: document path is empty", ErrInvalidInput)
	}
	if s.BackupSuffix == "" {
		return fmt.Errorf("%w: backup suffix is empty", ErrInvalidInput)
	}
	if strings.ContainsAny(s.BackupSuffix, `/\`) {
		return fmt.Errorf("%w: backup suffix %q contains a path separator", ErrInvalidInput, s.BackupSuffix)
	}
	return nil
}

// BackupPath derives the backup location for path.
// The suffix goes between the stem and the extension:
// docs/ANALYSIS.md with ".backup" becomes docs/ANALYSIS.backup.md.
func BackupPath(path, suffix string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+suffix+ext)
}
