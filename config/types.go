package config

import (
	"github.com/hookline/hookline/logging"
)

//go:generate go run ../tools/schema-generator/

const (
	// StageCommit runs hooks before a commit is recorded.
	StageCommit = "commit"
	// StagePush runs hooks before refs are pushed.
	StagePush = "push"

	// LocalRepo marks a source whose hooks run as direct shell entries
	// instead of being fetched from a remote repository.
	LocalRepo = "local"
)

// ValidStages is the fixed stage vocabulary.
var ValidStages = map[string]bool{
	StageCommit: true,
	StagePush:   true,
}

// Config is the root of a .hookline.yaml (or .hookline.toml) file.
type Config struct {
	// MinVersion is the minimum hookline version required to run this config.
	MinVersion string `json:"min_version,omitempty" yaml:"min_version,omitempty" toml:"min_version,omitempty" jsonschema:"description=Minimum hookline version required by this configuration"`

	// Exclude is a repository-wide path exclusion pattern (Go regexp).
	// Paths matching it are not subject to any hook.
	Exclude string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty" jsonschema:"description=Repository-wide path exclusion pattern (regular expression)"`

	// DefaultStages applies to hooks that do not declare stages themselves.
	// Defaults to [commit].
	DefaultStages []string `json:"default_stages,omitempty" yaml:"default_stages,omitempty" toml:"default_stages,omitempty" jsonschema:"description=Stages applied to hooks that declare none (default: [commit])"`

	// Logging configures the structured logger.
	Logging logging.Config `json:"logging,omitempty" yaml:"logging,omitempty" toml:"logging,omitempty" jsonschema:"description=Structured logging configuration"`

	// Repos lists the hook sources.
	Repos []Repo `json:"repos" yaml:"repos" toml:"repos" jsonschema:"required,minItems=1,description=Hook sources providing one or more named hooks"`
}

// Repo is a single hook source: either a remote repository pinned to a
// revision, or the literal 'local' for hooks defined inline.
type Repo struct {
	// Repo is the source repository URL, or 'local'.
	Repo string `json:"repo" yaml:"repo" toml:"repo" jsonschema:"required,description=Source repository URL or the literal 'local'"`

	// Rev is the revision pin. Required for remote sources, forbidden for local.
	Rev string `json:"rev,omitempty" yaml:"rev,omitempty" toml:"rev,omitempty" jsonschema:"description=Pinned revision of the source repository"`

	// Hooks selects (and for local sources, defines) the hooks to run.
	Hooks []Hook `json:"hooks" yaml:"hooks" toml:"hooks" jsonschema:"required,minItems=1,description=Hooks provided by this source"`
}

// IsLocal reports whether the source defines its hooks inline.
func (r *Repo) IsLocal() bool {
	return r.Repo == LocalRepo
}

// Hook is one tool invocation record: identity, invocation arguments,
// applicable files, and the lifecycle stages at which it runs.
type Hook struct {
	// ID identifies the hook within its source block.
	ID string `json:"id" yaml:"id" toml:"id" jsonschema:"required,pattern=^[a-zA-Z0-9][a-zA-Z0-9._-]*$,description=Hook identifier unique within its source block"`

	// Name is the human-readable display name. Defaults to ID.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" jsonschema:"description=Display name (defaults to id)"`

	// Entry is the command to execute. Required for local hooks; for remote
	// hooks it defaults from the source manifest.
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty" toml:"entry,omitempty" jsonschema:"description=Command to execute (required for local hooks)"`

	// Language tags the runtime the hook expects (e.g. system, go, python).
	Language string `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty" jsonschema:"description=Runtime the hook expects (e.g. system)"`

	// Args are extra command-line arguments appended to the entry.
	Args []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty" jsonschema:"description=Extra command-line arguments"`

	// Files limits the hook to paths matching this regexp.
	Files string `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty" jsonschema:"description=Only run on paths matching this regular expression"`

	// Exclude removes paths matching this regexp from the hook's file set.
	Exclude string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty" jsonschema:"description=Skip paths matching this regular expression"`

	// Types limits the hook to files carrying every listed type tag.
	Types []string `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty" jsonschema:"description=File type tags the hook applies to (e.g. go or yaml)"`

	// Stages lists the lifecycle stages at which the hook runs.
	Stages []string `json:"stages,omitempty" yaml:"stages,omitempty" toml:"stages,omitempty" jsonschema:"description=Lifecycle stages: commit and/or push"`

	// PassFilenames controls whether matched filenames are forwarded to the
	// hook's invocation. Defaults to true.
	PassFilenames *bool `json:"pass_filenames,omitempty" yaml:"pass_filenames,omitempty" toml:"pass_filenames,omitempty" jsonschema:"description=Forward matched filenames to the invocation (default: true)"`

	// AlwaysRun runs the hook even when no files match.
	AlwaysRun bool `json:"always_run,omitempty" yaml:"always_run,omitempty" toml:"always_run,omitempty" jsonschema:"description=Run even when no files match"`

	// Env adds environment variables to the hook's invocation.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty" toml:"env,omitempty" jsonschema:"description=Extra environment variables for the invocation"`

	// TimeoutSeconds bounds the hook's execution time. Zero means the
	// default command timeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" toml:"timeout_seconds,omitempty" jsonschema:"description=Execution timeout in seconds (0 uses the default)"`
}

// DisplayName returns the name shown in run output.
func (h *Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// ShouldPassFilenames reports whether matched filenames are forwarded.
func (h *Hook) ShouldPassFilenames() bool {
	if h.PassFilenames == nil {
		return true
	}
	return *h.PassFilenames
}

// EffectiveStages resolves the hook's stages against the config defaults.
// For remote hooks this must be called on the manifest-resolved hook, since
// the source manifest may declare stages the consumer entry is silent about.
func (h *Hook) EffectiveStages(defaults []string) []string {
	if len(h.Stages) > 0 {
		return h.Stages
	}
	if len(defaults) > 0 {
		return defaults
	}
	return []string{StageCommit}
}
