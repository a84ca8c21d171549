// Package config provides configuration management for the merger-tree
// builder.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	SimParams  SimParamsConfig  `mapstructure:"sim_params"`
	ExecParams ExecParamsConfig `mapstructure:"exec_params"`
	GasCooling GasCoolingConfig `mapstructure:"gas_cooling_params"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Log        LogConfig        `mapstructure:"log"`
}

// SimParamsConfig holds the simulation-wide snapshot range.
type SimParamsConfig struct {
	MinSnapshot int32 `mapstructure:"min_snapshot"`
	MaxSnapshot int32 `mapstructure:"max_snapshot"`
}

// ExecParamsConfig holds the execution-time switches that govern linking,
// central-subhalo promotion, and mass-growth enforcement.
type ExecParamsConfig struct {
	OutputSnapshots          []int32 `mapstructure:"output_snapshots"`
	EnsureMassGrowth         bool    `mapstructure:"ensure_mass_growth"`
	SkipMissingDescendants   bool    `mapstructure:"skip_missing_descendants"`
	WarnOnMissingDescendants bool    `mapstructure:"warn_on_missing_descendants"`
	ThreadCount              int     `mapstructure:"thread_count"`
}

// GasCoolingConfig is reserved for accretion clamping.
type GasCoolingConfig struct {
	MaxFractionalAccretedMass float64 `mapstructure:"max_fractional_accreted_mass"`
}

// DatabaseConfig holds the audit-log database connection configuration.
type DatabaseConfig struct {
	Type     string `mapstructure:"type"` // sqlite, postgres, or mysql
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	MaxConns int    `mapstructure:"max_conns"`
}

// TelemetryConfig holds OpenTelemetry tracing configuration.
type TelemetryConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	ServiceName  string  `mapstructure:"service_name"`
	Endpoint     string  `mapstructure:"endpoint"`
	Protocol     string  `mapstructure:"protocol"` // grpc or http
	SamplerRatio float64 `mapstructure:"sampler_ratio"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"` // json or text
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/mergertree-builder")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("Config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("sim_params.min_snapshot", 0)
	v.SetDefault("sim_params.max_snapshot", 63)

	v.SetDefault("exec_params.ensure_mass_growth", true)
	v.SetDefault("exec_params.skip_missing_descendants", false)
	v.SetDefault("exec_params.warn_on_missing_descendants", true)
	v.SetDefault("exec_params.thread_count", 4)

	v.SetDefault("gas_cooling_params.max_fractional_accreted_mass", 0.0)

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.database", "mergertree_audit.db")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "mergertree-builder")
	v.SetDefault("telemetry.protocol", "grpc")
	v.SetDefault("telemetry.sampler_ratio", 1.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_path", "./logs")
	v.SetDefault("log.format", "text")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.SimParams.MinSnapshot > c.SimParams.MaxSnapshot {
		return fmt.Errorf("sim_params.min_snapshot must be <= max_snapshot")
	}

	switch c.Database.Type {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database type: %s", c.Database.Type)
	}

	if c.ExecParams.ThreadCount < 1 {
		return fmt.Errorf("exec_params.thread_count must be at least 1")
	}

	return nil
}
