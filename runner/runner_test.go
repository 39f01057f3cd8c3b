package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/errors"
	"github.com/hookline/hookline/store"
	"github.com/hookline/hookline/testutil"
)

// newRepoWithStagedFiles builds a git fixture with staged source files.
func newRepoWithStagedFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	testutil.StageFile(t, dir, "main.go", "package main\n")
	testutil.StageFile(t, dir, "util.py", "x = 1\n")
	return dir
}

func localConfig(hooks ...config.Hook) *config.Config {
	return &config.Config{
		Repos: []config.Repo{{Repo: config.LocalRepo, Hooks: hooks}},
	}
}

func TestRunRejectsUnknownStage(t *testing.T) {
	r := New(localConfig(config.Hook{ID: "x", Entry: "true"}), Options{Stage: "merge"})
	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStageUnknown, errors.GetCode(err))
}

func TestRunPassingHook(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	cfg := localConfig(config.Hook{ID: "ok", Entry: "true"})
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusPassed, summary.Results[0].Status)
	assert.Equal(t, "main", summary.Branch)
	assert.False(t, summary.Failed())
}

func TestRunFailingHookBlocks(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	cfg := localConfig(config.Hook{ID: "broken", Entry: "false"})
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusFailed, summary.Results[0].Status)
	assert.Equal(t, 1, summary.Results[0].ExitCode)
	assert.True(t, summary.Failed(), "a non-zero exit must block the git action")
}

func TestRunSkipsHookWithoutMatchingFiles(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	cfg := localConfig(config.Hook{ID: "rust-only", Entry: "false", Types: []string{"rust"}})
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusSkipped, summary.Results[0].Status)
	assert.False(t, summary.Failed())
}

func TestRunAlwaysRunIgnoresEmptyFileSet(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	no := false
	cfg := localConfig(config.Hook{
		ID:            "suite",
		Entry:         "true",
		Types:         []string{"rust"},
		AlwaysRun:     true,
		PassFilenames: &no,
	})
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusPassed, summary.Results[0].Status)
}

func TestRunPassesFilenames(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	cfg := localConfig(config.Hook{ID: "echo-files", Entry: "echo", Types: []string{"go"}})
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir, Verbose: true})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Contains(t, summary.Results[0].Output, "main.go")
	assert.NotContains(t, summary.Results[0].Output, "util.py")
}

func TestRunPassFilenamesDisabled(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	no := false
	cfg := localConfig(config.Hook{
		ID:            "echo-fixed",
		Entry:         "echo marker",
		PassFilenames: &no,
	})
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir, Verbose: true})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "marker", summary.Results[0].Output)
}

func TestRunFailFastStopsEarly(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	cfg := localConfig(
		config.Hook{ID: "first", Entry: "false"},
		config.Hook{ID: "second", Entry: "true"},
	)
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir, FailFast: true})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.Results, 1)
	assert.True(t, summary.Failed())
}

func TestRunWithoutFailFastRunsAll(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	cfg := localConfig(
		config.Hook{ID: "first", Entry: "false"},
		config.Hook{ID: "second", Entry: "true"},
	)
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, StatusFailed, summary.Results[0].Status)
	assert.Equal(t, StatusPassed, summary.Results[1].Status)
}

func TestRunStageSelection(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	cfg := localConfig(
		config.Hook{ID: "commit-only", Entry: "true", Stages: []string{config.StageCommit}},
		config.Hook{ID: "push-only", Entry: "true", Stages: []string{config.StagePush}},
	)
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "commit-only", summary.Results[0].ID)
}

func TestRunGlobalExcludeShieldsFiles(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	testutil.StageFile(t, dir, "gen/model.go", "package gen\n")

	cfg := localConfig(config.Hook{ID: "go-check", Entry: "false", Types: []string{"go"}})
	cfg.Exclude = `^gen/`
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, summary.Results[0].Status)
}

func TestRunHookEnvAndStage(t *testing.T) {
	testutil.RequireGit(t)
	dir := newRepoWithStagedFiles(t)

	no := false
	cfg := localConfig(config.Hook{
		ID:            "env-probe",
		Entry:         "sh -c env",
		PassFilenames: &no,
		Env:           map[string]string{"HOOKLINE_PROBE": "42"},
	})
	r := New(cfg, Options{Stage: config.StageCommit, RepoRoot: dir, Verbose: true})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, summary.Results[0].Output, "HOOKLINE_STAGE=commit")
	assert.Contains(t, summary.Results[0].Output, "HOOKLINE_PROBE=42")
}

func TestRunRemoteSource(t *testing.T) {
	testutil.RequireGit(t)

	// Build a hook source repository carrying a manifest
	src := t.TempDir()
	testutil.InitGitRepo(t, src)
	manifestBody := "- id: say-hi\n  entry: echo hi from source\n  pass_filenames: false\n"
	testutil.CreateCommit(t, src, ".hookline-hooks.yaml", manifestBody)

	out, err := exec.Command("git", "-C", src, "rev-parse", "HEAD").Output()
	require.NoError(t, err)
	rev := strings.TrimSpace(string(out))

	dir := newRepoWithStagedFiles(t)
	cfg := &config.Config{
		Repos: []config.Repo{{
			Repo:  src,
			Rev:   rev,
			Hooks: []config.Hook{{ID: "say-hi"}},
		}},
	}

	r := New(cfg, Options{
		Stage:    config.StageCommit,
		RepoRoot: dir,
		Store:    store.New(t.TempDir()),
		Verbose:  true,
	})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, StatusPassed, summary.Results[0].Status)
	assert.Equal(t, "hi from source", summary.Results[0].Output)
}

func TestRunManifestStagesBindRemoteHook(t *testing.T) {
	testutil.RequireGit(t)

	// Source manifest binds the hook to push; the consumer entry is silent
	// on stages, so the manifest's binding must decide.
	src := t.TempDir()
	testutil.InitGitRepo(t, src)
	manifestBody := "- id: push-check\n  entry: echo checked\n  pass_filenames: false\n  stages: [push]\n"
	testutil.CreateCommit(t, src, ".hookline-hooks.yaml", manifestBody)

	out, err := exec.Command("git", "-C", src, "rev-parse", "HEAD").Output()
	require.NoError(t, err)
	rev := strings.TrimSpace(string(out))

	dir := newRepoWithStagedFiles(t)
	cfg := &config.Config{
		Repos: []config.Repo{{
			Repo:  src,
			Rev:   rev,
			Hooks: []config.Hook{{ID: "push-check"}},
		}},
	}
	st := store.New(t.TempDir())

	commit, err := New(cfg, Options{
		Stage:    config.StageCommit,
		RepoRoot: dir,
		Store:    st,
	}).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, commit.Results, "push-bound hook must not run at commit")

	push, err := New(cfg, Options{
		Stage:    config.StagePush,
		RepoRoot: dir,
		Store:    st,
	}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, push.Results, 1)
	assert.Equal(t, "push-check", push.Results[0].ID)
	assert.Equal(t, StatusPassed, push.Results[0].Status)

	// An explicit consumer binding overrides the manifest's.
	cfg.Repos[0].Hooks[0].Stages = []string{config.StageCommit}
	overridden, err := New(cfg, Options{
		Stage:    config.StageCommit,
		RepoRoot: dir,
		Store:    st,
	}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, overridden.Results, 1)
	assert.Equal(t, "push-check", overridden.Results[0].ID)
}

func TestRunRemoteSourceUnknownHook(t *testing.T) {
	testutil.RequireGit(t)

	src := t.TempDir()
	testutil.InitGitRepo(t, src)
	testutil.CreateCommit(t, src, ".hookline-hooks.yaml", "- id: real\n  entry: \"true\"\n")

	out, err := exec.Command("git", "-C", src, "rev-parse", "HEAD").Output()
	require.NoError(t, err)
	rev := strings.TrimSpace(string(out))

	dir := newRepoWithStagedFiles(t)
	cfg := &config.Config{
		Repos: []config.Repo{{
			Repo:  src,
			Rev:   rev,
			Hooks: []config.Hook{{ID: "imaginary"}},
		}},
	}

	r := New(cfg, Options{
		Stage:    config.StageCommit,
		RepoRoot: dir,
		Store:    store.New(t.TempDir()),
	})

	_, err = r.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeHookNotFound, errors.GetCode(err))
}

func TestSummaryRender(t *testing.T) {
	summary := &Summary{
		Stage: "commit",
		Results: []Result{
			{ID: "fmt", Name: "Format code", Status: StatusPassed},
			{ID: "lint", Name: "Lint", Status: StatusFailed, ExitCode: 2, Output: "file.go:1: problem"},
			{ID: "docs", Name: "Docs", Status: StatusSkipped},
		},
	}

	var buf bytes.Buffer
	summary.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "Format code")
	assert.Contains(t, out, "Failed (exit 2)")
	assert.Contains(t, out, "file.go:1: problem")
	assert.Contains(t, out, "1 passed, 1 failed, 1 skipped")
}
