package shared

import (
	"github.com/stacklint/stacklint/internal/config"
)

var (
	// ConfigResolver is the config resolver initialized by root command
	ConfigResolver *config.ConfigResolver
)
