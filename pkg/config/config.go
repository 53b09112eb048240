package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/marmos91/binhex/internal/bytesize"
	"github.com/marmos91/binhex/internal/logger"
	"github.com/marmos91/binhex/internal/metrics"
	"github.com/marmos91/binhex/pkg/binhex"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the BinHex codec configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (BINHEX_*)
//  2. Configuration file (YAML or TOML)
//  3. Default values
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Metrics controls Prometheus metric collection
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// Codec holds the options passed to binhex.NewCodec
	Codec CodecConfig `mapstructure:"codec" yaml:"codec"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// MetricsConfig controls Prometheus metric collection.
// When Enabled is false the codec records nothing.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// CodecConfig configures encoding and decoding.
type CodecConfig struct {
	// DefaultName is written when a file is encoded without a name.
	// Default: Untitled.hqx
	DefaultName string `mapstructure:"default_name" validate:"required,hqxname" yaml:"default_name"`

	// Verify makes Decode check every CRC.
	// Default: true
	Verify bool `mapstructure:"verify" yaml:"verify"`

	// MaxInputSize bounds the encoded text accepted by Decode and the fork
	// bytes accepted by Encode. Supports human-readable sizes: "16Mi", "100MB".
	// Default: 0 (unlimited)
	MaxInputSize bytesize.ByteSize `mapstructure:"max_input_size" yaml:"max_input_size"`
}

// Load loads configuration from file, environment, and defaults.
//
// An empty configPath searches the default location. A missing file is not
// an error; environment variables still apply on top of the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to path in YAML format.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// NewCodec applies the logging settings and builds a codec from the
// configuration. When metrics are enabled they are registered with registry,
// or with prometheus.DefaultRegisterer if registry is nil.
func (c *Config) NewCodec(registry prometheus.Registerer) (*binhex.Codec, error) {
	if err := logger.Init(logger.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Output: c.Logging.Output,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	opts := binhex.Options{
		DefaultName:  c.Codec.DefaultName,
		Verify:       c.Codec.Verify,
		MaxInputSize: c.Codec.MaxInputSize.Int64(),
	}
	if c.Metrics.Enabled {
		if registry == nil {
			registry = prometheus.DefaultRegisterer
		}
		opts.Metrics = metrics.NewCodecMetrics(registry)
	}

	logger.Debug("binhex codec configured",
		"default_name", opts.DefaultName,
		logger.Verified(opts.Verify),
		"max_input_size", c.Codec.MaxInputSize.String(),
		"metrics", c.Metrics.Enabled)

	return binhex.NewCodec(opts), nil
}

// setupViper configures viper with defaults, environment variables and
// config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Defaults make every key known to viper, so environment overrides
	// apply even without a config file.
	d := GetDefaultConfig()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("codec.default_name", d.Codec.DefaultName)
	v.SetDefault("codec.verify", d.Codec.Verify)
	v.SetDefault("codec.max_input_size", uint64(d.Codec.MaxInputSize))

	// Example: BINHEX_CODEC_MAX_INPUT_SIZE=16Mi
	v.SetEnvPrefix("BINHEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error) where fileFound indicates if a config file was found.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// configDecodeHooks returns the decode hook for custom config types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		byteSizeDecodeHook(),
	)
}

// byteSizeDecodeHook converts strings and numbers to bytesize.ByteSize, so
// config files and environment variables can use sizes like "16Mi".
func byteSizeDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(bytesize.ByteSize(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return bytesize.Parse(v)
		case int:
			if v < 0 {
				return nil, fmt.Errorf("negative byte size: %d", v)
			}
			return bytesize.ByteSize(v), nil
		case int64:
			if v < 0 {
				return nil, fmt.Errorf("negative byte size: %d", v)
			}
			return bytesize.ByteSize(v), nil
		case uint64:
			return bytesize.ByteSize(v), nil
		case float64:
			// YAML often deserializes numbers as float64
			if v < 0 {
				return nil, fmt.Errorf("negative byte size: %v", v)
			}
			return bytesize.ByteSize(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns $XDG_CONFIG_HOME/binhex, ~/.config/binhex, or "."
// when the home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "binhex")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "binhex")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
