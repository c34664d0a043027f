package config

// CLIConfig is the configuration for the akirakey CLI.
type CLIConfig struct {
	Log      LogConfig      `koanf:"log" json:"log" yaml:"log"`
	Output   OutputConfig   `koanf:"output" json:"output" yaml:"output"`
	Generate GenerateConfig `koanf:"generate" json:"generate" yaml:"generate"`
	Metrics  MetricsConfig  `koanf:"metrics" json:"metrics" yaml:"metrics"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`    // debug, info, warn, error
	Format string `koanf:"format" json:"format" yaml:"format"` // json, text
}

// OutputConfig configures how results are printed on stdout.
type OutputConfig struct {
	Format string `koanf:"format" json:"format" yaml:"format"` // table, json, yaml
}

// GenerateConfig configures the generate command.
type GenerateConfig struct {
	Count int `koanf:"count" json:"count" yaml:"count"`
	// Rate limits generation to this many keys per second. Zero is unlimited.
	Rate         float64 `koanf:"rate" json:"rate" yaml:"rate"`
	LockedMemory bool    `koanf:"locked_memory" json:"locked_memory" yaml:"locked_memory"`
}

// MetricsConfig configures metric export.
type MetricsConfig struct {
	// Textfile is written after each command when non-empty.
	Textfile string `koanf:"textfile" json:"textfile" yaml:"textfile"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "table",
		},
		Generate: GenerateConfig{
			Count: 1,
		},
	}
}
