// internal/config/validate_test.go
package config

import "testing"

// helper to build a config quickly
func withRegisters(regs ...RegisterConfig) *Config {
	return &Config{
		Source:    SourceConfig{Endpoint: "127.0.0.1:502"},
		Registers: regs,
	}
}

func reg(name string, addr uint16, dataType string, count int) RegisterConfig {
	return RegisterConfig{
		Name:     name,
		Address:  addr,
		DataType: dataType,
		Count:    count,
	}
}

func boolPtr(b bool) *bool { return &b }

// ---- tests ----

func TestValidate_MinimalOK(t *testing.T) {
	cfg := withRegisters(reg("v", 0, "FLOAT32", 0))

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TypeNameCaseInsensitive(t *testing.T) {
	cfg := withRegisters(
		reg("a", 0, "int16", 1),
		reg("b", 1, "Float64", 1),
		reg("c", 5, "bitmap", 3),
	)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EndpointRequired(t *testing.T) {
	cfg := withRegisters(reg("v", 0, "INT16", 1))
	cfg.Source.Endpoint = " "

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}
}

func TestValidate_NoRegisters(t *testing.T) {
	if err := Validate(withRegisters()); err == nil {
		t.Fatalf("expected error for empty register map, got nil")
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	cfg := withRegisters(reg("v", 0, "INT8", 1))

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unsupported type error, got nil")
	}
}

func TestValidate_BadByteOrder(t *testing.T) {
	r := reg("v", 0, "INT32", 1)
	r.ByteOrder = "mid"

	if err := Validate(withRegisters(r)); err == nil {
		t.Fatalf("expected byte order error, got nil")
	}
}

func TestValidate_NegativeCount(t *testing.T) {
	if err := Validate(withRegisters(reg("v", 0, "INT16", -1))); err == nil {
		t.Fatalf("expected count error, got nil")
	}
}

func TestValidate_SignedOnlyForInt16(t *testing.T) {
	ok := reg("a", 0, "INT16", 1)
	ok.Signed = boolPtr(false)
	bad := reg("b", 2, "INT32", 1)
	bad.Signed = boolPtr(true)

	if err := Validate(withRegisters(ok)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(withRegisters(bad)); err == nil {
		t.Fatalf("expected signed error on INT32, got nil")
	}
}

func TestValidate_ReadLimit(t *testing.T) {
	// 31 x FLOAT64 = 124 registers, 32 x FLOAT64 = 128
	if err := Validate(withRegisters(reg("a", 0, "FLOAT64", 31))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(withRegisters(reg("a", 0, "FLOAT64", 32))); err == nil {
		t.Fatalf("expected read limit error, got nil")
	}
}

func TestValidate_AddressSpace(t *testing.T) {
	if err := Validate(withRegisters(reg("a", 65535, "INT16", 1))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(withRegisters(reg("a", 65535, "INT32", 1))); err == nil {
		t.Fatalf("expected address space error, got nil")
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	cfg := withRegisters(
		reg("v", 0, "INT16", 1),
		reg("v", 1, "INT16", 1),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected duplicate name error, got nil")
	}
}

func TestValidate_Formats(t *testing.T) {
	cfg := withRegisters(reg("v", 0, "INT16", 1))
	cfg.Report.Format = "xml"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected report format error, got nil")
	}

	cfg.Report.Format = "CSV"
	cfg.Log.Format = "logfmt"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected log format error, got nil")
	}
}
