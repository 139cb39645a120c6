package validate

// PathInfo describes what a probe found at a filesystem path
type PathInfo struct {
	Exists     bool
	IsDir      bool
	Executable bool
}

// PathProber checks filesystem paths referenced by a config.
// A missing path is reported as (PathInfo{}, nil); the error return is
// reserved for probes that could not complete, e.g. permission denied.
type PathProber interface {
	Probe(path string) (PathInfo, error)
}
