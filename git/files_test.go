package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookline/hookline/testutil"
)

func TestStagedFiles(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	ctx := context.Background()

	files, err := StagedFiles(ctx, dir)
	require.NoError(t, err)
	assert.Empty(t, files, "fresh repo has nothing staged")

	testutil.StageFile(t, dir, "main.go", "package main\n")
	testutil.StageFile(t, dir, "docs/intro.md", "# Intro\n")

	files, err = StagedFiles(ctx, dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go", "docs/intro.md"}, files)
}

func TestAllTrackedFiles(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	testutil.CreateCommit(t, dir, "main.go", "package main\n")

	files, err := AllTrackedFiles(context.Background(), dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"README.md", "main.go"}, files)
}

func TestPushFilesFallsBackWithoutUpstream(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	testutil.CreateCommit(t, dir, "service.go", "package service\n")

	// No upstream configured: the push set degrades to all tracked files.
	files, err := PushFiles(context.Background(), dir)
	require.NoError(t, err)
	assert.Contains(t, files, "service.go")
	assert.Contains(t, files, "README.md")
}

func TestGetGitRoot(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	testutil.CreateCommit(t, dir, "nested/deep/file.go", "package deep\n")

	root, err := GetGitRoot(dir)
	require.NoError(t, err)
	assert.True(t, IsGitRepo(dir))

	// Resolve through any symlinked temp dirs before comparing
	nested, err := GetGitRoot(dir + "/nested/deep")
	require.NoError(t, err)
	assert.Equal(t, root, nested)
}

func TestIsGitRepoFalseOutside(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	assert.False(t, IsGitRepo(dir))
}
