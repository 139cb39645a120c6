package validate

import "fmt"

// Severity classifies the outcome of a single check
type Severity int

const (
	SeverityPass Severity = iota
	SeverityWarning
	SeverityFail
)

// String returns the lowercase name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityWarning:
		return "warning"
	case SeverityFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its lowercase name
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Check is a single validation result
type Check struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report collects checks in the order they were performed
type Report struct {
	Checks []Check `json:"checks"`
}

// Passed reports whether the validation succeeded: no Fail entries.
// Warnings do not affect the outcome.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if c.Severity == SeverityFail {
			return false
		}
	}
	return true
}

// Counts returns the number of checks per severity
func (r *Report) Counts() (passed, warnings, failed int) {
	for _, c := range r.Checks {
		switch c.Severity {
		case SeverityPass:
			passed++
		case SeverityWarning:
			warnings++
		case SeverityFail:
			failed++
		}
	}
	return passed, warnings, failed
}

// Passf appends a Pass check
func (r *Report) Passf(format string, args ...any) {
	r.add(SeverityPass, format, args...)
}

// Warnf appends a Warning check
func (r *Report) Warnf(format string, args ...any) {
	r.add(SeverityWarning, format, args...)
}

// Failf appends a Fail check
func (r *Report) Failf(format string, args ...any) {
	r.add(SeverityFail, format, args...)
}

func (r *Report) add(severity Severity, format string, args ...any) {
	r.Checks = append(r.Checks, Check{
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}
