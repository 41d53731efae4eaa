// internal/status/snapshot.go
package status

// Snapshot summarizes one batch of readings.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health        uint16
	Total         int // rows emitted
	Failed        int // error-marked rows
	LastErrorCode uint16
}

// HealthName is a short label for h.
func HealthName(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	case HealthPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// ExitCode maps the snapshot health onto a process exit code.
func (s Snapshot) ExitCode() int {
	switch s.Health {
	case HealthOK:
		return ExitOK
	case HealthPartial:
		return ExitPartial
	default:
		return ExitError
	}
}
