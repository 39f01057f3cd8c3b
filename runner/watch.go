package runner

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow batches filesystem event bursts (editors often write a
// file several times in quick succession) into a single re-run.
const debounceWindow = 300 * time.Millisecond

// Watch re-invokes fn whenever files under repoRoot change. The .git
// directory and the source cache are not watched. Blocks until ctx is done.
func Watch(ctx context.Context, repoRoot string, fn func(changed []string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addRecursive(watcher, repoRoot); err != nil {
		return err
	}

	var pending []string
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if shouldSkip(repoRoot, event.Name) {
				continue
			}

			// New directories need their own watches
			if event.Op.Has(fsnotify.Create) {
				_ = addRecursive(watcher, event.Name)
			}

			if rel, err := filepath.Rel(repoRoot, event.Name); err == nil {
				pending = append(pending, rel)
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			changed := dedupe(pending)
			pending = nil
			fn(changed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are not fatal for a watch loop
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkip(root, path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func shouldSkip(repoRoot, path string) bool {
	rel, err := filepath.Rel(repoRoot, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == ".git" {
			return true
		}
	}
	return false
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
