// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/modbus-reader/internal/decode"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	if strings.TrimSpace(cfg.Source.Endpoint) == "" {
		return fmt.Errorf("source.endpoint is required")
	}
	if cfg.Source.TimeoutMs < 0 {
		return fmt.Errorf("source.timeout_ms must be >= 0, got %d", cfg.Source.TimeoutMs)
	}
	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll.interval_ms must be >= 0, got %d", cfg.Poll.IntervalMs)
	}

	// ------------------------------------------------------------
	// AMBIENT
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q not supported (text, json)", cfg.Log.Format)
	}
	switch strings.ToLower(cfg.Report.Format) {
	case "", "table", "pretty", "csv", "json":
	default:
		return fmt.Errorf("report.format %q not supported (table, pretty, csv, json)", cfg.Report.Format)
	}

	// ------------------------------------------------------------
	// REGISTER MAP
	// ------------------------------------------------------------

	if len(cfg.Registers) == 0 {
		return fmt.Errorf("at least one register is required")
	}

	names := make(map[string]int)

	for i, r := range cfg.Registers {
		label := registerLabel(i, r)

		dt, err := decode.ParseDataType(r.DataType)
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if _, err := decode.ParseByteOrder(r.ByteOrder); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if r.Count < 0 {
			return fmt.Errorf("%s: count must be >= 1, got %d", label, r.Count)
		}
		if r.Signed != nil && dt != decode.Int16 {
			return fmt.Errorf("%s: signed applies to INT16 only, not %s", label, dt)
		}

		count := r.Count
		if count == 0 {
			count = 1
		}
		words := count * dt.WordWidth()
		if words > MaxReadRegisters {
			return fmt.Errorf(
				"%s: %d x %s spans %d registers, max %d per read",
				label, count, dt, words, MaxReadRegisters,
			)
		}
		if int(r.Address)+words > 0x10000 {
			return fmt.Errorf(
				"%s: range %d-%d exceeds register space",
				label, r.Address, int(r.Address)+words-1,
			)
		}

		if r.Name != "" {
			if prev, exists := names[r.Name]; exists {
				return fmt.Errorf("register name %q used by entries %d and %d", r.Name, prev, i)
			}
			names[r.Name] = i
		}
	}

	return nil
}

func registerLabel(i int, r RegisterConfig) string {
	if r.Name != "" {
		return fmt.Sprintf("register %q", r.Name)
	}
	return fmt.Sprintf("register #%d (address %d)", i, r.Address)
}
