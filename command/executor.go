package command

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances. Tests inject their own implementation
// to run hooks and git against stub binaries instead of the real tools.
type Executor interface {
	// Command creates an exec.Cmd for the given program and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext creates a context-aware exec.Cmd, so hook and git
	// invocations honor their timeouts.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor runs programs through the standard os/exec package.
type RealExecutor struct{}

// Command creates a standard exec.Cmd.
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
