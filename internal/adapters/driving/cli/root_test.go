package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docpatch/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/docpatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/services"
	"github.com/custodia-labs/docpatch/internal/logger"
	"github.com/custodia-labs/docpatch/internal/patch"
	"github.com/custodia-labs/docpatch/internal/watcher"
)

// testEnv wires real services over a temp directory.
type testEnv struct {
	dir     string
	history *memory.HistoryStore
	config  *memory.ConfigStore
}

func testPlan() *domain.Plan {
	return &domain.Plan{
		Name: "test-plan",
		Operations: []domain.Operation{
			domain.LiteralReplace("status", "Status: Draft", "Status: Final"),
			domain.InsertAfterAnchor("reviewed", "# Title", "\nReviewed."),
			domain.LiteralReplace("stale", "no such text", "x"),
		},
	}
}

func setupCLI(t *testing.T, plan *domain.Plan) *testEnv {
	t.Helper()
	env := &testEnv{
		dir:     t.TempDir(),
		history: memory.NewHistoryStore(),
		config:  memory.NewConfigStore(),
	}

	old := Services{Patch: patchService, History: historyService, Settings: settingsService}
	SetServices(Services{
		Patch:    services.NewPatchService(file.NewDocumentStore(), env.history, patch.New(), plan),
		History:  services.NewHistoryService(env.history),
		Settings: services.NewSettingsService(env.config),
	})
	t.Cleanup(func() { SetServices(old) })
	return env
}

func (e *testEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// execute runs the root command and resets flag state afterwards.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		applyOpts = applyOptions{}
		planFile = ""
		historyLimit = 20
		watchDebounce = watcher.DefaultDebounce
		verbose = false
		logger.SetVerbose(false)
	}()

	err = rootCmd.Execute()
	printError(&errOut, err)
	return out.String(), errOut.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "docpatch", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"apply", "plan", "history", "settings", "watch", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestSetServices(t *testing.T) {
	old := Services{Patch: patchService, History: historyService, Settings: settingsService}
	defer SetServices(old)

	SetServices(Services{})
	assert.Nil(t, patchService)
	assert.Nil(t, historyService)
	assert.Nil(t, settingsService)
}

func TestCurrentSettings_DefaultsWithoutService(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	settings, err := currentSettings()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestStyled_FalseForBuffer(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	defer rootCmd.SetOut(nil)

	assert.False(t, styled(rootCmd))
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), "Error: boom\n"},
		{"reported", &reportedError{err: errors.New("boom")}, ""},
		{"wrapped reported", fmt.Errorf("run: %w", &reportedError{err: errors.New("boom")}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReportedError_Unwrap(t *testing.T) {
	err := &reportedError{err: fmt.Errorf("read: %w", domain.ErrMissingInput)}

	assert.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Equal(t, "read: input document not found", err.Error())
}

func TestRootCmd_SilencesCobraErrors(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}
