package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

func saveRun(t *testing.T, env *testEnv, id string, startedAt time.Time, dryRun bool) {
	t.Helper()
	run := &domain.Run{
		ID:          id,
		Path:        "docs/ANALYSIS.md",
		Plan:        "test-plan",
		DryRun:      dryRun,
		Operations:  3,
		Applied:     2,
		NoEffect:    []string{"stale"},
		InputLines:  2,
		OutputLines: 3,
		StartedAt:   startedAt,
	}
	if !dryRun {
		run.BackupPath = "docs/ANALYSIS.backup.md"
	}
	require.NoError(t, env.history.Save(context.Background(), run))
}

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
	assert.Equal(t, "show [run-id]", historyShowCmd.Use)
}

func TestHistoryCmd_Empty(t *testing.T) {
	setupCLI(t, testPlan())

	out, _, err := execute(t, "history")
	require.NoError(t, err)

	assert.Equal(t, "No runs recorded.\n", out)
}

func TestHistoryCmd_ListsNewestFirst(t *testing.T) {
	env := setupCLI(t, testPlan())
	base := time.Date(2025, 11, 25, 10, 0, 0, 0, time.UTC)
	saveRun(t, env, "11111111-aaaa", base, false)
	saveRun(t, env, "22222222-bbbb", base.Add(time.Hour), true)

	out, _, err := execute(t, "history")
	require.NoError(t, err)

	assert.Contains(t, out, "[1] 22222222")
	assert.Contains(t, out, "[2] 11111111")
	assert.Contains(t, out, "2/3 applied, +1 lines, dry-run")
	assert.Contains(t, out, "2/3 applied, +1 lines, write")
	assert.Contains(t, out, "1 without effect")
	assert.NotContains(t, out, "-aaaa")
}

func TestHistoryCmd_Limit(t *testing.T) {
	env := setupCLI(t, testPlan())
	base := time.Now()
	saveRun(t, env, "run-a", base, false)
	saveRun(t, env, "run-b", base.Add(time.Second), false)

	out, _, err := execute(t, "history", "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "run-b")
	assert.NotContains(t, out, "run-a")
}

func TestHistoryCmd_AfterApply(t *testing.T) {
	env := setupCLI(t, testPlan())
	path := env.write(t, "ANALYSIS.md", testDoc)

	_, _, err := execute(t, "apply", path)
	require.NoError(t, err)

	out, _, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "2/3 applied, +1 lines, write")
}

func TestHistoryShowCmd(t *testing.T) {
	env := setupCLI(t, testPlan())
	saveRun(t, env, "run-1", time.Now(), false)

	out, _, err := execute(t, "history", "show", "run-1")
	require.NoError(t, err)

	assert.Contains(t, out, "Run:        run-1")
	assert.Contains(t, out, "Plan:       test-plan")
	assert.Contains(t, out, "Mode:       write")
	assert.Contains(t, out, "Backup:     docs/ANALYSIS.backup.md")
	assert.Contains(t, out, "Operations: 3 executed, 2 applied")
	assert.Contains(t, out, "Lines:      2 -> 3 (+1)")
	assert.Contains(t, out, "  - stale")
}

func TestHistoryShowCmd_DryRunHasNoBackup(t *testing.T) {
	env := setupCLI(t, testPlan())
	saveRun(t, env, "run-1", time.Now(), true)

	out, _, err := execute(t, "history", "show", "run-1")
	require.NoError(t, err)

	assert.Contains(t, out, "Mode:       dry-run")
	assert.NotContains(t, out, "Backup:")
}

func TestHistoryShowCmd_NotFound(t *testing.T) {
	setupCLI(t, testPlan())

	_, _, err := execute(t, "history", "show", "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found: missing")
}

func TestHistoryShowCmd_RequiresID(t *testing.T) {
	setupCLI(t, testPlan())

	_, _, err := execute(t, "history", "show")

	assert.Error(t, err)
}

func TestHistoryCmd_ErrorsWithoutService(t *testing.T) {
	old := historyService
	historyService = nil
	defer func() { historyService = old }()

	_, _, err := execute(t, "history")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("12345678"))
	assert.Equal(t, "12345678", shortID("12345678-90ab"))
}
