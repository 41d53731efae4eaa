// internal/status/constants.go
package status

// ---- HEALTH CODES ----

// HealthUnknown represents an empty batch.
const HealthUnknown uint16 = 0

// HealthOK means every descriptor produced a value.
const HealthOK uint16 = 1

// HealthError means every descriptor failed.
const HealthError uint16 = 2

// HealthPartial means some, but not all, descriptors failed.
const HealthPartial uint16 = 3

// ---- EXIT CODES ----

// Process exit codes for one-shot reads, keyed by health.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitPartial = 2
)
