package wiring

import (
	"fmt"
	"os"

	"github.com/stacklint/stacklint/internal/application/ports"
	"github.com/stacklint/stacklint/internal/application/queries"
	infraconfig "github.com/stacklint/stacklint/internal/infrastructure/config"
	"github.com/stacklint/stacklint/internal/infrastructure/fs"
	"github.com/stacklint/stacklint/internal/validate"
)

// Container holds all dependencies for one resolved deployments file
type Container struct {
	// Adapters
	Source ports.ConfigSource
	Prober validate.PathProber

	// Query Handlers
	ValidateQueryHandler *queries.ValidateQueryHandler
	HooksQueryHandler    *queries.HooksQueryHandler
}

// NewContainer creates a dependency injection container for the given
// deployments file
func NewContainer(configPath string) (*Container, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	source := infraconfig.NewFileConfigSource(configPath)
	prober := fs.NewOSProber()

	return &Container{
		Source:               source,
		Prober:               prober,
		ValidateQueryHandler: queries.NewValidateQueryHandler(source, prober),
		HooksQueryHandler:    queries.NewHooksQueryHandler(source, prober),
	}, nil
}
