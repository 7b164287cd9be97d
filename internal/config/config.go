package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Scan   ScanConfig
	Output OutputConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// ScanConfig holds limits applied to scan requests and input lines.
type ScanConfig struct {
	MaxInputBytes int64 `mapstructure:"max_input_bytes"`
	MaxInputs     int   `mapstructure:"max_inputs"`
	MaxLineBytes  int   `mapstructure:"max_line_bytes"`
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Output formats.
const (
	FormatJSON = "json"
	FormatTSV  = "tsv"
)

// Load reads configuration from environment variables with the SSCAN_
// prefix, layered over the optional config file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Scan defaults
	v.SetDefault("scan.max_input_bytes", 1<<20)
	v.SetDefault("scan.max_inputs", 1000)
	v.SetDefault("scan.max_line_bytes", 1<<16)

	// Output defaults
	v.SetDefault("output.format", FormatJSON)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for nested keys
	for _, key := range v.AllKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatTSV:
	default:
		return fmt.Errorf("invalid output.format %q: must be %s or %s", c.Output.Format, FormatJSON, FormatTSV)
	}

	if c.Scan.MaxInputBytes <= 0 {
		return fmt.Errorf("invalid scan.max_input_bytes %d: must be positive", c.Scan.MaxInputBytes)
	}
	if c.Scan.MaxInputs <= 0 {
		return fmt.Errorf("invalid scan.max_inputs %d: must be positive", c.Scan.MaxInputs)
	}
	if c.Scan.MaxLineBytes <= 0 {
		return fmt.Errorf("invalid scan.max_line_bytes %d: must be positive", c.Scan.MaxLineBytes)
	}

	return nil
}
