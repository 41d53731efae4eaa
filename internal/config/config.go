// internal/config/config.go
package config

type Config struct {
	Source    SourceConfig     `yaml:"source"`
	Poll      PollConfig       `yaml:"poll"`
	Log       LogConfig        `yaml:"log"`
	Report    ReportConfig     `yaml:"report"`
	Metrics   MetricsConfig    `yaml:"metrics"`
	Registers []RegisterConfig `yaml:"registers"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    *uint8 `yaml:"unit_id"` // nil => DefaultUnitID
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- REGISTER MAP ----

type RegisterConfig struct {
	Name        string `yaml:"name"`
	Address     uint16 `yaml:"address"`
	DataType    string `yaml:"data_type"`
	Count       int    `yaml:"count"`      // 0 => 1
	ByteOrder   string `yaml:"byte_order"` // "" => big
	Signed      *bool  `yaml:"signed"`     // INT16 only; nil => true
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"` // 0 => read once
}

// ---- AMBIENT ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

type ReportConfig struct {
	Format string `yaml:"format"` // table | pretty | csv | json
}

type MetricsConfig struct {
	Listen string `yaml:"listen"` // empty disables the endpoint
}

// Defaults applied by Normalize.
const (
	DefaultUnitID    uint8 = 255
	DefaultTimeoutMs       = 1000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultReport          = "table"

	// MaxReadRegisters is the FC3 per-request limit.
	MaxReadRegisters = 125
)
