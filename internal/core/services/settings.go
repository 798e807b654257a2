package services

import (
	"fmt"

	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/ports/driven"
	"github.com/custodia-labs/docpatch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDocumentPath   = "document.path"
	keyBackupSuffix   = "backup.suffix"
	keyHistoryEnabled = "history.enabled"
	keyHistoryDir     = "history.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		DocumentPath:   s.getString(keyDocumentPath, defaults.DocumentPath),
		BackupSuffix:   s.getString(keyBackupSuffix, defaults.BackupSuffix),
		HistoryEnabled: s.getBool(keyHistoryEnabled, defaults.HistoryEnabled),
		DataDir:        s.configStore.GetString(keyHistoryDir), // No default - empty means ~/.docpatch/data
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyDocumentPath, settings.DocumentPath); err != nil {
		return fmt.Errorf("save document path: %w", err)
	}
	if err := s.configStore.Set(keyBackupSuffix, settings.BackupSuffix); err != nil {
		return fmt.Errorf("save backup suffix: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.HistoryEnabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryDir, settings.DataDir); err != nil {
		return fmt.Errorf("save history dir: %w", err)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
