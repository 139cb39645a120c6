package ports

// ConfigSource provides the raw text of a deployments document.
// The validator needs the raw bytes rather than a parsed tree so that
// syntax errors surface as report entries with their original cause.
type ConfigSource interface {
	// Load returns the raw document text
	Load() ([]byte, error)

	// Path returns the filesystem path the document came from, or ""
	// when the source is not file-backed
	Path() string
}
