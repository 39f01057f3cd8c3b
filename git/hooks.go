package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Stage-to-hook-script mapping. The commit stage binds to git's pre-commit
// hook, the push stage to pre-push.
var stageHooks = map[string]string{
	"pre-commit": "commit",
	"pre-push":   "push",
}

const hookScriptTemplate = `#!/bin/sh
# hookline git hook - {{.HookName}}
# Auto-generated, do not edit directly

HOOKLINE_BIN="{{.Binary}}"

# Check if hookline is installed
if ! command -v "$HOOKLINE_BIN" >/dev/null 2>&1; then
    echo "hookline not found. Skipping {{.HookName}} hook."
    exit 0
fi

cd "$(git rev-parse --show-toplevel)" || exit 1
exec "$HOOKLINE_BIN" run --stage {{.Stage}}
`

// hookMarker identifies scripts written by hookline.
const hookMarker = "hookline git hook"

// backupSuffix is appended to a pre-existing foreign hook before overwriting.
const backupSuffix = ".pre-hookline"

// HookManager installs and removes the git hook scripts that dispatch to
// the hookline binary.
type HookManager struct {
	binary string
}

// NewHookManager creates a new hook manager. An empty binary name defaults
// to "hookline" resolved from PATH.
func NewHookManager(binary string) *HookManager {
	if binary == "" {
		binary = "hookline"
	}
	return &HookManager{binary: binary}
}

// InstallHooks writes the pre-commit and pre-push dispatch scripts.
func (m *HookManager) InstallHooks(ctx context.Context, repoPath string) error {
	hooksDir, err := HooksDir(repoPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	for hookName, stage := range stageHooks {
		if err := m.installHook(hooksDir, hookName, stage); err != nil {
			return fmt.Errorf("install %s hook: %w", hookName, err)
		}
	}

	return nil
}

// UninstallHooks removes hookline-managed scripts and restores any backups.
func (m *HookManager) UninstallHooks(ctx context.Context, repoPath string) error {
	hooksDir, err := HooksDir(repoPath)
	if err != nil {
		return err
	}

	for hookName := range stageHooks {
		hookPath := filepath.Join(hooksDir, hookName)

		// Only touch scripts we wrote
		if !m.isHooklineHook(hookPath) {
			continue
		}
		if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s hook: %w", hookName, err)
		}

		// Restore a backed-up foreign hook if one exists
		backupPath := hookPath + backupSuffix
		if _, err := os.Stat(backupPath); err == nil {
			if err := os.Rename(backupPath, hookPath); err != nil {
				return fmt.Errorf("restore %s hook backup: %w", hookName, err)
			}
		}
	}

	return nil
}

// installHook installs a single git hook script
func (m *HookManager) installHook(hooksDir, hookName, stage string) error {
	hookPath := filepath.Join(hooksDir, hookName)

	// Back up an existing foreign hook before overwriting
	if _, err := os.Stat(hookPath); err == nil {
		if !m.isHooklineHook(hookPath) {
			backupPath := hookPath + backupSuffix
			if err := os.Rename(hookPath, backupPath); err != nil {
				return fmt.Errorf("backup existing hook: %w", err)
			}
		}
	}

	tmpl, err := template.New(hookName).Parse(hookScriptTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		HookName string
		Stage    string
		Binary   string
	}{
		HookName: hookName,
		Stage:    stage,
		Binary:   m.binary,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// Git hooks need to be executable
	if err := os.WriteFile(hookPath, buf.Bytes(), 0755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}

	return nil
}

// isHooklineHook checks if a hook file is managed by hookline
func (m *HookManager) isHooklineHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte(hookMarker))
}
