package validate

import (
	"path/filepath"

	"github.com/stacklint/stacklint/internal/config"
)

// Options enables optional checks beyond the core structural pass.
// All of them emit warnings only.
type Options struct {
	// CheckModulePaths probes module directories for existence
	CheckModulePaths bool

	// CheckHookExec warns when a hook script exists but is not executable
	CheckHookExec bool
}

// Validator runs a single linear validation pass over a deployments
// document. It is stateless across runs: each Validate call parses the
// document fresh and discards the tree afterwards.
type Validator struct {
	prober  PathProber
	baseDir string
	opts    Options
}

// New creates a validator. Relative hook and module paths are resolved
// against baseDir, typically the directory of the config file.
func New(prober PathProber, baseDir string, opts Options) *Validator {
	return &Validator{
		prober:  prober,
		baseDir: baseDir,
		opts:    opts,
	}
}

// Validate parses the document and returns a report of severity-tagged
// checks in the order they were performed. A syntax error produces a
// report with a single Fail entry and no further checks run. Structural
// problems are recorded as Fail checks; everything advisory (empty
// deployments, unresolvable hook scripts) degrades to a Warning.
func (v *Validator) Validate(data []byte) *Report {
	report := &Report{}

	cfg, err := config.Parse(data)
	if err != nil {
		// parse failure short-circuits all structural checks
		report.Failf("parse error: %v", err)
		return report
	}

	if len(cfg.Deployments) == 0 {
		report.Failf("no deployments defined")
		return report
	}

	report.Passf("deployments: %d deployment(s) defined", len(cfg.Deployments))

	// warned tracks hook paths already reported, deduplicated across
	// modules and lifecycle stages
	warned := make(map[string]bool)
	modulePaths := make(map[string]bool)

	for i := range cfg.Deployments {
		dep := &cfg.Deployments[i]
		label := dep.Label(i)

		if len(dep.Modules) == 0 {
			report.Warnf("%s: no modules defined", label)
			continue
		}

		report.Passf("%s: %d module(s)", label, len(dep.Modules))

		for j := range dep.Modules {
			v.checkModule(report, label, &dep.Modules[j], modulePaths, warned)
		}
	}

	return report
}

func (v *Validator) checkModule(report *Report, label string, mod *config.Module, modulePaths, warned map[string]bool) {
	if mod.Path == "" {
		report.Warnf("%s: module with no path defined", label)
	} else {
		if modulePaths[mod.Path] {
			report.Warnf("duplicate module path: %s", mod.Path)
		}
		modulePaths[mod.Path] = true

		if v.opts.CheckModulePaths {
			info, err := v.prober.Probe(v.resolve(mod.Path))
			switch {
			case err != nil:
				report.Warnf("module path not accessible: %s: %v", mod.Path, err)
			case !info.Exists:
				report.Warnf("missing module directory: %s", mod.Path)
			case !info.IsDir:
				report.Warnf("module path is not a directory: %s", mod.Path)
			}
		}
	}

	for _, stage := range config.Stages {
		for _, hook := range mod.HooksFor(stage) {
			v.checkHook(report, label, stage, hook, warned)
		}
	}
}

func (v *Validator) checkHook(report *Report, label string, stage config.Stage, hook config.HookRef, warned map[string]bool) {
	if hook.Path == "" {
		report.Warnf("%s: %s hook with no path defined", label, stage)
		return
	}

	if warned[hook.Path] {
		return
	}

	info, err := v.prober.Probe(v.resolve(hook.Path))
	switch {
	case err != nil:
		// the validator is advisory, not authoritative: probe failures
		// degrade to warnings, same policy as a missing path
		warned[hook.Path] = true
		report.Warnf("hook file not accessible: %s: %v", hook.Path, err)
	case !info.Exists:
		warned[hook.Path] = true
		report.Warnf("missing hook file: %s", hook.Path)
	case v.opts.CheckHookExec && !info.Executable:
		warned[hook.Path] = true
		report.Warnf("hook file not executable: %s", hook.Path)
	}
}

func (v *Validator) resolve(path string) string {
	if filepath.IsAbs(path) || v.baseDir == "" {
		return path
	}
	return filepath.Join(v.baseDir, path)
}
