// Package ignore loads .hooklineignore files and filters candidate file
// sets. Patterns use the same syntax as .dockerignore, including negation
// with a leading '!'. Patterns without a path separator match at any
// directory depth, the way .gitignore treats them.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"
)

// FileName is the well-known ignore file name, looked up at the repo root.
const FileName = ".hooklineignore"

// Matcher filters paths against ignore patterns.
type Matcher struct {
	pm *patternmatcher.PatternMatcher
}

// Load reads the ignore file from the given repository root. A missing file
// yields a matcher that ignores nothing.
func Load(repoRoot string) (*Matcher, error) {
	f, err := os.Open(filepath.Join(repoRoot, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Matcher{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewMatcher(patterns)
}

// NewMatcher builds a matcher from explicit patterns.
func NewMatcher(patterns []string) (*Matcher, error) {
	if len(patterns) == 0 {
		return &Matcher{}, nil
	}
	pm, err := patternmatcher.New(expandPatterns(patterns))
	if err != nil {
		return nil, err
	}
	return &Matcher{pm: pm}, nil
}

// expandPatterns supplements each slash-free pattern with a '**/'-prefixed
// variant so it matches at any depth, not just the repository root. The
// variant follows its original immediately, keeping last-match-wins
// evaluation intact for negations.
func expandPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p)

		body, negated := p, false
		if strings.HasPrefix(p, "!") {
			body, negated = p[1:], true
		}
		if body == "" || strings.Contains(body, "/") {
			continue
		}
		expanded := "**/" + body
		if negated {
			expanded = "!" + expanded
		}
		out = append(out, expanded)
	}
	return out
}

// Ignored reports whether the path is excluded by the ignore patterns.
// Paths are expected relative to the repository root.
func (m *Matcher) Ignored(path string) bool {
	if m.pm == nil {
		return false
	}
	matched, err := m.pm.MatchesOrParentMatches(filepath.ToSlash(path))
	if err != nil {
		return false
	}
	return matched
}

// Filter returns the paths not excluded by the ignore patterns.
func (m *Matcher) Filter(paths []string) []string {
	if m.pm == nil {
		return paths
	}
	var kept []string
	for _, p := range paths {
		if !m.Ignored(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
