package queries

import (
	"path/filepath"

	"github.com/stacklint/stacklint/internal/application/ports"
	"github.com/stacklint/stacklint/internal/validate"
)

// ValidateQuery represents a request to validate a deployments document
type ValidateQuery struct {
	Options validate.Options
}

// ValidateQueryHandler handles validate queries
type ValidateQueryHandler struct {
	source ports.ConfigSource
	prober validate.PathProber
}

// NewValidateQueryHandler creates a new validate query handler
func NewValidateQueryHandler(source ports.ConfigSource, prober validate.PathProber) *ValidateQueryHandler {
	return &ValidateQueryHandler{
		source: source,
		prober: prober,
	}
}

// Handle executes the validate query. An error is returned only when the
// document cannot be read at all; everything else, including syntax
// errors, lands in the report.
func (h *ValidateQueryHandler) Handle(query ValidateQuery) (*validate.Report, error) {
	data, err := h.source.Load()
	if err != nil {
		return nil, err
	}

	baseDir := ""
	if path := h.source.Path(); path != "" {
		baseDir = filepath.Dir(path)
	}

	validator := validate.New(h.prober, baseDir, query.Options)
	return validator.Validate(data), nil
}
