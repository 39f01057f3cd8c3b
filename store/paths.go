package store

import (
	"os"
	"path/filepath"
)

// CacheHome returns the base cache directory for hookline.
//
// Resolution order:
// 1. HOOKLINE_HOME (portable root) -> $HOOKLINE_HOME/cache
// 2. XDG_CACHE_HOME -> $XDG_CACHE_HOME/hookline
// 3. Platform default -> ~/.cache/hookline
func CacheHome() string {
	if home := os.Getenv("HOOKLINE_HOME"); home != "" {
		return filepath.Join(home, "cache")
	}
	if xdgCacheHome := os.Getenv("XDG_CACHE_HOME"); xdgCacheHome != "" {
		return filepath.Join(xdgCacheHome, "hookline")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".cache", "hookline")
	}
	return ""
}
