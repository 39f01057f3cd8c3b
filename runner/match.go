package runner

import (
	"fmt"
	"regexp"

	"github.com/hookline/hookline/classify"
	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/ignore"
)

// matcher narrows the stage's candidate file set down to the files a given
// hook applies to. Filters apply in order: the repository-wide exclude
// pattern, .hooklineignore patterns, the hook's files/exclude patterns, and
// finally the hook's type tags.
type matcher struct {
	globalExclude *regexp.Regexp
	ignored       *ignore.Matcher
}

func newMatcher(cfg *config.Config, repoRoot string) (*matcher, error) {
	m := &matcher{}

	if cfg.Exclude != "" {
		re, err := regexp.Compile(cfg.Exclude)
		if err != nil {
			return nil, fmt.Errorf("compile top-level exclude: %w", err)
		}
		m.globalExclude = re
	}

	ign, err := ignore.Load(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ignore.FileName, err)
	}
	m.ignored = ign

	return m, nil
}

// candidates applies the repository-wide filters once per run.
func (m *matcher) candidates(files []string) []string {
	var kept []string
	for _, f := range files {
		if m.globalExclude != nil && m.globalExclude.MatchString(f) {
			continue
		}
		if m.ignored.Ignored(f) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// filesFor applies the per-hook filters to the pre-filtered candidates.
func (m *matcher) filesFor(hook *config.Hook, candidates []string) ([]string, error) {
	var files, exclude *regexp.Regexp
	var err error

	if hook.Files != "" {
		if files, err = regexp.Compile(hook.Files); err != nil {
			return nil, fmt.Errorf("hook '%s': compile files pattern: %w", hook.ID, err)
		}
	}
	if hook.Exclude != "" {
		if exclude, err = regexp.Compile(hook.Exclude); err != nil {
			return nil, fmt.Errorf("hook '%s': compile exclude pattern: %w", hook.ID, err)
		}
	}

	var matched []string
	for _, f := range candidates {
		if files != nil && !files.MatchString(f) {
			continue
		}
		if exclude != nil && exclude.MatchString(f) {
			continue
		}
		if !classify.Matches(f, hook.Types) {
			continue
		}
		matched = append(matched, f)
	}
	return matched, nil
}
