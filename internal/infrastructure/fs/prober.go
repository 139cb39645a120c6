package fs

import (
	"os"

	"github.com/stacklint/stacklint/internal/validate"
)

// OSProber probes paths on the local filesystem
// This is an infrastructure adapter behind validate.PathProber
type OSProber struct{}

// NewOSProber creates a new filesystem prober
func NewOSProber() *OSProber {
	return &OSProber{}
}

// Probe stats the given path. A missing path is not an error; only
// probes that could not complete (e.g. permission denied on a parent
// directory) return one.
func (p *OSProber) Probe(path string) (validate.PathInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return validate.PathInfo{}, nil
		}
		return validate.PathInfo{}, err
	}

	return validate.PathInfo{
		Exists:     true,
		IsDir:      info.IsDir(),
		Executable: info.Mode().Perm()&0111 != 0,
	}, nil
}
