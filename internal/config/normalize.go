// internal/config/normalize.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/modbus-reader/internal/decode"
	"github.com/tamzrod/modbus-reader/internal/reading"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Source.UnitID == nil {
		id := DefaultUnitID
		cfg.Source.UnitID = &id
	}
	if cfg.Source.TimeoutMs == 0 {
		cfg.Source.TimeoutMs = DefaultTimeoutMs
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Log.Format = lowerOr(cfg.Log.Format, DefaultLogFormat)
	cfg.Report.Format = lowerOr(cfg.Report.Format, DefaultReport)

	for i := range cfg.Registers {
		r := &cfg.Registers[i]

		if r.Name == "" {
			r.Name = fmt.Sprintf("Register_%d", r.Address)
		}
		if r.Count == 0 {
			r.Count = 1
		}
		r.DataType = strings.ToUpper(strings.TrimSpace(r.DataType))
		r.ByteOrder = lowerOr(strings.TrimSpace(r.ByteOrder), decode.Big.String())
	}
}

// Descriptors converts a validated, normalized register map.
func Descriptors(cfg *Config) ([]reading.Descriptor, error) {
	out := make([]reading.Descriptor, 0, len(cfg.Registers))
	for i, r := range cfg.Registers {
		dt, err := decode.ParseDataType(r.DataType)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", registerLabel(i, r), err)
		}
		order, err := decode.ParseByteOrder(r.ByteOrder)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", registerLabel(i, r), err)
		}

		out = append(out, reading.Descriptor{
			Name:        r.Name,
			Address:     r.Address,
			Type:        dt,
			Count:       r.Count,
			Order:       order,
			Unsigned:    r.Signed != nil && !*r.Signed,
			Unit:        r.Unit,
			Description: r.Description,
		})
	}
	return out, nil
}

func lowerOr(s, def string) string {
	if s == "" {
		return def
	}
	return strings.ToLower(s)
}
