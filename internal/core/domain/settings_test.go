package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultDocumentPath, s.DocumentPath)
	assert.Equal(t, ".backup", s.BackupSuffix)
	assert.True(t, s.HistoryEnabled)
	assert.Empty(t, s.DataDir)
	assert.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"empty path", func(s *Settings) { s.DocumentPath = "" }},
		{"empty suffix", func(s *Settings) { s.BackupSuffix = "" }},
		{"separator in suffix", func(s *Settings) { s.BackupSuffix = "/bak" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestBackupPath(t *testing.T) {
	tests := []struct {
		path   string
		suffix string
		want   string
	}{
		{"docs/CHARACTER-BUILDER-ANALYSIS.md", ".backup", filepath.Join("docs", "CHARACTER-BUILDER-ANALYSIS.backup.md")},
		{"README.md", ".orig", "README.orig.md"},
		{"notes", ".backup", "notes.backup"},
		{"a/b/archive.tar.gz", "-old", filepath.Join("a", "b", "archive.tar-old.gz")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, BackupPath(tt.path, tt.suffix))
		})
	}
}
