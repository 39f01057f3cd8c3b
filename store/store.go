// Package store materializes remote hook sources: each (repository URL,
// revision pin) pair is cloned once into the cache and reused across runs,
// so pinned revisions behave reproducibly.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hookline/hookline/command"
	"github.com/hookline/hookline/errors"
	"github.com/hookline/hookline/logging"
)

// Store manages the on-disk cache of hook sources.
type Store struct {
	root    string
	builder *command.SafeBuilder
	log     *logrus.Entry
}

// New creates a store rooted at the given directory. An empty root uses the
// default cache location.
func New(root string) *Store {
	if root == "" {
		root = CacheHome()
	}
	return &Store{
		root:    root,
		builder: command.NewSafeBuilder(),
		log:     logging.NewLogger("store"),
	}
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// SourceDir returns the cache directory a source would materialize into.
func (s *Store) SourceDir(repoURL, rev string) string {
	return filepath.Join(s.root, "repos", sourceKey(repoURL, rev))
}

// EnsureSource returns a checkout of the source at its pinned revision,
// cloning it into the cache on first use.
func (s *Store) EnsureSource(ctx context.Context, repoURL, rev string) (string, error) {
	if err := s.builder.Validate("gitRef", rev); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid revision pin").
			WithDetail("rev", rev)
	}

	dir := s.SourceDir(repoURL, rev)
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		s.log.WithField("dir", dir).Debug("source already materialized")
		return dir, nil
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "create cache directory")
	}

	s.log.WithFields(logrus.Fields{"repo": repoURL, "rev": rev}).Info("fetching hook source")

	if err := s.runGit(ctx, "", "clone", "--quiet", repoURL, dir); err != nil {
		_ = os.RemoveAll(dir)
		return "", errors.SourceFetchFailed(repoURL, rev, err)
	}

	if err := s.runGit(ctx, dir, "checkout", "--quiet", rev); err != nil {
		_ = os.RemoveAll(dir)
		return "", errors.SourceFetchFailed(repoURL, rev, err)
	}

	return dir, nil
}

// Clean removes every materialized source.
func (s *Store) Clean() error {
	return os.RemoveAll(filepath.Join(s.root, "repos"))
}

func (s *Store) runGit(ctx context.Context, dir string, args ...string) error {
	cmd, err := s.builder.Build(ctx, "git", args...)
	if err != nil {
		return err
	}
	execCmd := cmd.Exec()
	if dir != "" {
		execCmd.Dir = dir
	}
	if output, err := execCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// sourceKey derives a stable directory name from a source identity. The
// readable prefix keeps cache listings debuggable; the digest guarantees
// uniqueness across URLs that share a base name.
func sourceKey(repoURL, rev string) string {
	sum := sha256.Sum256([]byte(repoURL + "@" + rev))
	base := strings.TrimSuffix(filepath.Base(repoURL), ".git")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "-" {
		base = "source"
	}
	return base + "-" + hex.EncodeToString(sum[:])[:16]
}
