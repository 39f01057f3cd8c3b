// Package runner executes the hooks bound to a git lifecycle stage. Error
// handling is delegated to the tools themselves: a non-zero exit from any
// hook marks the run failed, which in turn blocks the git action.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hookline/hookline/command"
	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/errors"
	gitpkg "github.com/hookline/hookline/git"
	"github.com/hookline/hookline/logging"
	"github.com/hookline/hookline/manifest"
	"github.com/hookline/hookline/store"
)

// Options controls a stage run.
type Options struct {
	// Stage is the lifecycle stage to run: commit or push.
	Stage string

	// AllFiles runs against every tracked file instead of the stage's
	// natural file set.
	AllFiles bool

	// Files overrides the candidate file set entirely.
	Files []string

	// FailFast stops at the first failing hook.
	FailFast bool

	// RepoRoot is the repository root. Discovered from the working
	// directory when empty.
	RepoRoot string

	// Store provides materialized remote hook sources. A nil store uses
	// the default cache location.
	Store *store.Store

	// Verbose includes output from passing hooks in the summary.
	Verbose bool
}

// Runner executes the hooks of one configuration.
type Runner struct {
	cfg     *config.Config
	opts    Options
	builder *command.SafeBuilder
	log     *logrus.Entry
}

// New creates a runner for the given configuration.
func New(cfg *config.Config, opts Options) *Runner {
	if opts.Store == nil {
		opts.Store = store.New("")
	}
	return &Runner{
		cfg:     cfg,
		opts:    opts,
		builder: command.NewSafeBuilder(),
		log:     logging.NewLoggerWithConfig("runner", cfg.Logging),
	}
}

// Run executes every hook bound to the stage and returns the summary.
// The returned error covers infrastructure failures only; hook failures are
// reported through the summary.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if !config.ValidStages[r.opts.Stage] {
		return nil, errors.StageUnknown(r.opts.Stage)
	}

	repoRoot, err := r.repoRoot()
	if err != nil {
		return nil, err
	}

	candidates, err := r.candidateFiles(ctx, repoRoot)
	if err != nil {
		return nil, err
	}

	m, err := newMatcher(r.cfg, repoRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "build file matcher")
	}
	candidates = m.candidates(candidates)

	r.log.WithFields(logrus.Fields{
		"stage": r.opts.Stage,
		"files": len(candidates),
	}).Debug("starting stage run")

	summary := &Summary{Stage: r.opts.Stage}
	if branch, err := gitpkg.CurrentBranch(repoRoot); err == nil {
		summary.Branch = branch
	}

	for i := range r.cfg.Repos {
		repo := &r.cfg.Repos[i]

		// Remote sources are materialized before stage selection: the
		// manifest may bind a hook to a stage the consumer entry is
		// silent about.
		sourceDir := ""
		var mf *manifest.Manifest
		if !repo.IsLocal() {
			dir, err := r.opts.Store.EnsureSource(ctx, repo.Repo, repo.Rev)
			if err != nil {
				return nil, err
			}
			loaded, err := manifest.Load(dir, repo.Repo)
			if err != nil {
				return nil, err
			}
			sourceDir, mf = dir, loaded
		}

		for j := range repo.Hooks {
			hook := &repo.Hooks[j]
			if mf != nil {
				resolved, err := mf.Resolve(hook)
				if err != nil {
					return nil, err
				}
				hook = resolved
			}

			if !stageBound(hook.EffectiveStages(r.cfg.DefaultStages), r.opts.Stage) {
				continue
			}

			result, err := r.runHook(ctx, repoRoot, m, hook, sourceDir, candidates)
			if err != nil {
				return nil, err
			}
			summary.Results = append(summary.Results, result)

			if result.Status == StatusFailed && r.opts.FailFast {
				return summary, nil
			}
		}
	}

	return summary, nil
}

func stageBound(stages []string, stage string) bool {
	for _, s := range stages {
		if s == stage {
			return true
		}
	}
	return false
}

func (r *Runner) repoRoot() (string, error) {
	if r.opts.RepoRoot != "" {
		return r.opts.RepoRoot, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := gitpkg.GetGitRoot(cwd)
	if err != nil {
		return "", errors.NotARepository(cwd)
	}
	return root, nil
}

func (r *Runner) candidateFiles(ctx context.Context, repoRoot string) ([]string, error) {
	if len(r.opts.Files) > 0 {
		files := append([]string(nil), r.opts.Files...)
		sort.Strings(files)
		return files, nil
	}
	if r.opts.AllFiles {
		return gitpkg.AllTrackedFiles(ctx, repoRoot)
	}

	switch r.opts.Stage {
	case config.StagePush:
		return gitpkg.PushFiles(ctx, repoRoot)
	default:
		return gitpkg.StagedFiles(ctx, repoRoot)
	}
}

// runHook matches and executes a single, already-resolved hook.
func (r *Runner) runHook(ctx context.Context, repoRoot string, m *matcher, hook *config.Hook, sourceDir string, candidates []string) (Result, error) {
	result := Result{ID: hook.ID, Name: hook.DisplayName()}

	files, err := m.filesFor(hook, candidates)
	if err != nil {
		return Result{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "match files")
	}
	result.Files = len(files)

	if len(files) == 0 && !hook.AlwaysRun {
		result.Status = StatusSkipped
		return result, nil
	}

	argv, err := r.buildArgv(hook, sourceDir, files)
	if err != nil {
		return Result{}, err
	}

	r.log.WithFields(logrus.Fields{
		"hook":  hook.ID,
		"files": len(files),
	}).Debug("running hook")

	start := time.Now()
	output, exitCode, runErr := r.execute(ctx, repoRoot, hook, argv)
	result.Duration = time.Since(start)
	result.Output = output
	result.ExitCode = exitCode

	if runErr != nil {
		return Result{}, runErr
	}

	if exitCode == 0 {
		result.Status = StatusPassed
		if !r.opts.Verbose && !hook.AlwaysRun {
			result.Output = ""
		}
	} else {
		result.Status = StatusFailed
	}

	return result, nil
}

// buildArgv assembles the hook invocation: entry + args + filenames.
// An entry whose first token names a file inside a remote source checkout
// resolves to that file, so sources can ship their own scripts.
func (r *Runner) buildArgv(hook *config.Hook, sourceDir string, files []string) ([]string, error) {
	entry := strings.Fields(hook.Entry)
	if len(entry) == 0 {
		return nil, errors.New(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("hook '%s' has an empty entry", hook.ID)).
			WithDetail("hook", hook.ID)
	}

	if sourceDir != "" {
		candidate := filepath.Join(sourceDir, entry[0])
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			entry[0] = candidate
		}
	}

	argv := append(entry, hook.Args...)
	if hook.ShouldPassFilenames() {
		argv = append(argv, files...)
	}
	return argv, nil
}

// execute runs the assembled command and maps its exit status. A command
// that cannot start at all is an infrastructure error, not a hook failure.
func (r *Runner) execute(ctx context.Context, repoRoot string, hook *config.Hook, argv []string) (output string, exitCode int, err error) {
	cmd, err := r.builder.Build(ctx, argv[0], argv[1:]...)
	if err != nil {
		return "", 0, errors.Wrap(err, errors.ErrCodeInvalidInput, "build hook command")
	}
	if hook.TimeoutSeconds > 0 {
		cmd = cmd.WithTimeout(time.Duration(hook.TimeoutSeconds) * time.Second)
	}

	execCmd := cmd.Exec()
	execCmd.Dir = repoRoot
	execCmd.Env = append(os.Environ(), "HOOKLINE_STAGE="+r.opts.Stage)
	for key, value := range hook.Env {
		execCmd.Env = append(execCmd.Env, key+"="+value)
	}

	out, runErr := execCmd.CombinedOutput()
	output = strings.TrimSpace(string(out))

	if runErr == nil {
		return output, 0, nil
	}

	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return output, exitErr.ExitCode(), nil
	}

	return output, 0, errors.CommandFailed(argv[0], runErr).WithDetail("hook", hook.ID)
}
