package queries

import (
	"fmt"
	"path/filepath"

	"github.com/stacklint/stacklint/internal/application/ports"
	"github.com/stacklint/stacklint/internal/config"
	"github.com/stacklint/stacklint/internal/validate"
)

// HooksQuery represents a request to list all hook references
type HooksQuery struct{}

// HookRow describes a single hook reference for display
type HookRow struct {
	Deployment string
	Module     string
	Stage      config.Stage
	Script     string
	Args       int
	Found      bool
}

// HooksQueryHandler handles hooks queries
type HooksQueryHandler struct {
	source ports.ConfigSource
	prober validate.PathProber
}

// NewHooksQueryHandler creates a new hooks query handler
func NewHooksQueryHandler(source ports.ConfigSource, prober validate.PathProber) *HooksQueryHandler {
	return &HooksQueryHandler{
		source: source,
		prober: prober,
	}
}

// Handle executes the hooks query, returning one row per hook reference
// in document order
func (h *HooksQueryHandler) Handle(query HooksQuery) ([]HookRow, error) {
	data, err := h.source.Load()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot list hooks: %w", err)
	}

	baseDir := ""
	if path := h.source.Path(); path != "" {
		baseDir = filepath.Dir(path)
	}

	var rows []HookRow
	for i := range cfg.Deployments {
		dep := &cfg.Deployments[i]
		for j := range dep.Modules {
			mod := &dep.Modules[j]
			for _, stage := range config.Stages {
				for _, hook := range mod.HooksFor(stage) {
					rows = append(rows, HookRow{
						Deployment: dep.Label(i),
						Module:     mod.Path,
						Stage:      stage,
						Script:     hook.Path,
						Args:       len(hook.Args),
						Found:      h.exists(baseDir, hook.Path),
					})
				}
			}
		}
	}

	return rows, nil
}

func (h *HooksQueryHandler) exists(baseDir, path string) bool {
	if path == "" {
		return false
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	info, err := h.prober.Probe(path)
	return err == nil && info.Exists
}
