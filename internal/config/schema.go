package config

import "fmt"

// DeploymentConfig represents the root of a deployments.yaml document
type DeploymentConfig struct {
	Version     string       `yaml:"version,omitempty"`
	Deployments []Deployment `yaml:"deployments"`
}

// Deployment is a collection of modules provisioned together
type Deployment struct {
	Name    string   `yaml:"name,omitempty"`
	Modules []Module `yaml:"modules"`
}

// Module is a unit of infrastructure definition at a filesystem path,
// with optional lifecycle hooks
type Module struct {
	Path        string    `yaml:"path"`
	PreDeploy   []HookRef `yaml:"pre_deploy,omitempty"`
	PostDeploy  []HookRef `yaml:"post_deploy,omitempty"`
	PreDestroy  []HookRef `yaml:"pre_destroy,omitempty"`
	PostDestroy []HookRef `yaml:"post_destroy,omitempty"`
}

// HookRef references an external script invoked at a lifecycle stage.
// Args values are untyped: the deployment engine accepts scalars of any
// kind, and the linter must never reject a config over an arg type.
type HookRef struct {
	Path string         `yaml:"path"`
	Args map[string]any `yaml:"args,omitempty"`
}

// Stage identifies a lifecycle stage a hook can be attached to
type Stage string

const (
	StagePreDeploy   Stage = "pre_deploy"
	StagePostDeploy  Stage = "post_deploy"
	StagePreDestroy  Stage = "pre_destroy"
	StagePostDestroy Stage = "post_destroy"
)

// Stages lists all lifecycle stages in invocation order
var Stages = []Stage{StagePreDeploy, StagePostDeploy, StagePreDestroy, StagePostDestroy}

// HooksFor returns the hooks attached to the given lifecycle stage
func (m *Module) HooksFor(stage Stage) []HookRef {
	switch stage {
	case StagePreDeploy:
		return m.PreDeploy
	case StagePostDeploy:
		return m.PostDeploy
	case StagePreDestroy:
		return m.PreDestroy
	case StagePostDestroy:
		return m.PostDestroy
	default:
		return nil
	}
}

// HookCount returns the total number of hooks across all stages
func (m *Module) HookCount() int {
	return len(m.PreDeploy) + len(m.PostDeploy) + len(m.PreDestroy) + len(m.PostDestroy)
}

// Label returns a human-readable identifier for a deployment: its name
// when set, otherwise its position in the document
func (d *Deployment) Label(index int) string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("deployment %d", index)
}
