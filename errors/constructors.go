package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *HooklineError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *HooklineError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// HookNotFound creates a hook not found error
func HookNotFound(source, id string) *HooklineError {
	return New(ErrCodeHookNotFound, fmt.Sprintf("hook '%s' not found in source '%s'", id, source)).
		WithDetail("source", source).
		WithDetail("hook", id)
}

// HookDuplicate creates a duplicate hook id error
func HookDuplicate(source, id string) *HooklineError {
	return New(ErrCodeHookDuplicate, fmt.Sprintf("hook id '%s' appears more than once in source '%s'", id, source)).
		WithDetail("source", source).
		WithDetail("hook", id)
}

// StageUnknown creates an unknown stage error
func StageUnknown(stage string) *HooklineError {
	return New(ErrCodeStageUnknown, fmt.Sprintf("unknown stage '%s' (valid stages: commit, push)", stage)).
		WithDetail("stage", stage)
}

// HookFailed creates a hook execution failure error
func HookFailed(id string, exitCode int) *HooklineError {
	return New(ErrCodeHookFailed, fmt.Sprintf("hook '%s' failed with exit code %d", id, exitCode)).
		WithDetail("hook", id).
		WithDetail("exitCode", exitCode)
}

// SourceFetchFailed creates a hook source fetch failure error
func SourceFetchFailed(repo, rev string, err error) *HooklineError {
	return Wrap(err, ErrCodeSourceFetchFailed,
		fmt.Sprintf("failed to fetch hook source %s at %s", repo, rev)).
		WithDetail("repo", repo).
		WithDetail("rev", rev)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *HooklineError {
	hlErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		hlErr = hlErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return hlErr
}

// NotARepository creates a not-a-git-repository error
func NotARepository(dir string) *HooklineError {
	return New(ErrCodeNotARepository, fmt.Sprintf("not a git repository: %s", dir)).
		WithDetail("dir", dir)
}
