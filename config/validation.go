package config

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/hookline/hookline/errors"
	"github.com/hookline/hookline/version"
)

var hookIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// checkMinVersion enforces the config's minimum hookline version. Builds
// without a release version (e.g. "dev") are not constrained.
func checkMinVersion(min, current string) error {
	if min == "" {
		return nil
	}

	minVersion, err := semver.NewVersion(min)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "'min_version' is not a valid semantic version").
			WithDetail("min_version", min)
	}

	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		return nil
	}

	if currentVersion.LessThan(minVersion) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("config requires hookline %s or newer, running %s", min, current)).
			WithDetail("min_version", min).
			WithDetail("version", current)
	}

	return nil
}

// Validate checks the semantic rules a parsed configuration must satisfy:
// every hook id is unique within its source block, every stage name belongs
// to the fixed set {commit, push}, remote sources carry a revision pin,
// local hooks carry an entry, and every pattern compiles.
func (c *Config) Validate() error {
	if err := checkMinVersion(c.MinVersion, version.Version); err != nil {
		return err
	}

	if len(c.Repos) == 0 {
		return errors.New(errors.ErrCodeConfigValidation, "config declares no hook sources ('repos' is empty)")
	}

	if c.Exclude != "" {
		if _, err := regexp.Compile(c.Exclude); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, "top-level 'exclude' is not a valid regular expression")
		}
	}

	for _, stage := range c.DefaultStages {
		if !ValidStages[stage] {
			return errors.StageUnknown(stage).WithDetail("field", "default_stages")
		}
	}

	for i := range c.Repos {
		repo := &c.Repos[i]
		if err := validateRepo(repo); err != nil {
			return err
		}
	}

	return nil
}

func validateRepo(repo *Repo) error {
	if repo.Repo == "" {
		return errors.New(errors.ErrCodeConfigValidation, "hook source has an empty 'repo' field")
	}

	if repo.IsLocal() {
		if repo.Rev != "" {
			return errors.New(errors.ErrCodeConfigValidation, "local hook source must not carry a 'rev'").
				WithDetail("rev", repo.Rev)
		}
	} else if repo.Rev == "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("remote hook source '%s' requires a revision pin ('rev')", repo.Repo)).
			WithDetail("repo", repo.Repo)
	}

	if len(repo.Hooks) == 0 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook source '%s' declares no hooks", repo.Repo)).
			WithDetail("repo", repo.Repo)
	}

	seen := make(map[string]bool, len(repo.Hooks))
	for j := range repo.Hooks {
		hook := &repo.Hooks[j]
		if err := validateHook(repo, hook); err != nil {
			return err
		}
		if seen[hook.ID] {
			return errors.HookDuplicate(repo.Repo, hook.ID)
		}
		seen[hook.ID] = true
	}

	return nil
}

func validateHook(repo *Repo, hook *Hook) error {
	if hook.ID == "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook in source '%s' has an empty 'id'", repo.Repo)).
			WithDetail("repo", repo.Repo)
	}

	if !hookIDRegex.MatchString(hook.ID) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook id '%s' contains invalid characters", hook.ID)).
			WithDetail("hook", hook.ID)
	}

	if repo.IsLocal() && hook.Entry == "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("local hook '%s' requires an 'entry'", hook.ID)).
			WithDetail("hook", hook.ID)
	}

	for _, stage := range hook.Stages {
		if !ValidStages[stage] {
			return errors.StageUnknown(stage).WithDetail("hook", hook.ID)
		}
	}

	for field, pattern := range map[string]string{"files": hook.Files, "exclude": hook.Exclude} {
		if pattern == "" {
			continue
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("hook '%s' has an invalid '%s' pattern", hook.ID, field)).
				WithDetail("hook", hook.ID).
				WithDetail("pattern", pattern)
		}
	}

	if hook.TimeoutSeconds < 0 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook '%s' has a negative timeout", hook.ID)).
			WithDetail("hook", hook.ID)
	}

	return nil
}
