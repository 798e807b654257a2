package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docpatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docpatch/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"document.path":   "notes/PLAN.md",
		"backup.suffix":   ".orig",
		"history.enabled": false,
		"history.dir":     "/var/lib/docpatch",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "notes/PLAN.md", settings.DocumentPath)
	assert.Equal(t, ".orig", settings.BackupSuffix)
	assert.False(t, settings.HistoryEnabled)
	assert.Equal(t, "/var/lib/docpatch", settings.DataDir)
}

func TestSettingsService_Get_InvalidSuffix(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{"backup.suffix": "../escape"})
	service := NewSettingsService(store)

	_, err := service.Get()
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.Settings{
		DocumentPath:   "docs/OTHER.md",
		BackupSuffix:   ".bak",
		HistoryEnabled: false,
		DataDir:        "/tmp/history",
	}
	require.NoError(t, service.Save(settings))

	assert.Equal(t, "docs/OTHER.md", store.GetString("document.path"))
	assert.Equal(t, ".bak", store.GetString("backup.suffix"))
	assert.False(t, store.GetBool("history.enabled"))
	assert.Equal(t, "/tmp/history", store.GetString("history.dir"))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.Save(&domain.Settings{DocumentPath: "a.md"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, exists := store.Get("document.path")
	assert.False(t, exists)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultSettings(), service.GetDefaults())
}
