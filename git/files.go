package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/hookline/hookline/command"
)

// StagedFiles returns the paths staged for the next commit, relative to the
// repository root. Deleted files are excluded since hooks cannot run on them.
func StagedFiles(ctx context.Context, dir string) ([]string, error) {
	return gitLines(ctx, dir, "diff", "--cached", "--name-only", "--diff-filter=ACMR")
}

// PushFiles returns the paths that differ from the upstream branch, i.e. the
// files a push would publish. When no upstream is configured it falls back
// to every tracked file.
func PushFiles(ctx context.Context, dir string) ([]string, error) {
	files, err := gitLines(ctx, dir, "diff", "--name-only", "--diff-filter=ACMR", "@{upstream}...HEAD")
	if err != nil {
		// No upstream configured for this branch
		return AllTrackedFiles(ctx, dir)
	}
	return files, nil
}

// AllTrackedFiles returns every path tracked by git, relative to the
// repository root.
func AllTrackedFiles(ctx context.Context, dir string) ([]string, error) {
	return gitLines(ctx, dir, "ls-files")
}

// gitLines runs a git command and splits its output into trimmed lines.
func gitLines(ctx context.Context, dir string, args ...string) ([]string, error) {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(ctx, "git", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	var files []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
