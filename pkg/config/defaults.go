package config

import (
	"strings"

	"github.com/marmos91/binhex/pkg/binhex"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Zero values are replaced with defaults; explicit values are preserved.
// Booleans are left alone because false is a valid explicit choice; their
// defaults come from GetDefaultConfig and the viper defaults in Load.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyCodecDefaults(&cfg.Codec)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyCodecDefaults(cfg *CodecConfig) {
	if cfg.DefaultName == "" {
		cfg.DefaultName = binhex.DefaultName
	}
}

// GetDefaultConfig returns a Config struct with all default values applied.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Codec: CodecConfig{
			Verify: true,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}
