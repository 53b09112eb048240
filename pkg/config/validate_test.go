package config

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	if err := Validate(GetDefaultConfig()); err != nil {
		t.Errorf("Expected valid config to pass validation, got error: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "INVALID"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid log level")
	}
	if !strings.Contains(err.Error(), "oneof") {
		t.Errorf("Expected 'oneof' validation error, got: %v", err)
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected validation error for invalid log format")
	}
}

func TestValidate_MissingOutput(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Output = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for missing log output")
	}
	if !strings.Contains(err.Error(), "Output") {
		t.Errorf("Expected error naming Output, got: %v", err)
	}
}

func TestValidate_DefaultName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "file.hqx", false},
		{"max length", strings.Repeat("a", 255), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 256), true},
		{"contains NUL", "bad\x00name", true},
		// 128 two-byte runes exceed the byte limit.
		{"multibyte too long", strings.Repeat("é", 128), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			cfg.Codec.DefaultName = tt.value

			err := Validate(cfg)
			if tt.wantErr && err == nil {
				t.Fatalf("Expected validation error for %q", tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidate_ReportsAllFields(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"
	cfg.Codec.DefaultName = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Format") || !strings.Contains(msg, "DefaultName") {
		t.Errorf("Expected both failing fields in error, got: %v", msg)
	}
}

func TestApplyDefaults_Normalizes(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "warn", Format: "JSON"}}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level WARN, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format json, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected output stderr, got %q", cfg.Logging.Output)
	}
	if cfg.Codec.DefaultName != "Untitled.hqx" {
		t.Errorf("Expected default name Untitled.hqx, got %q", cfg.Codec.DefaultName)
	}
	if cfg.Codec.Verify {
		t.Error("ApplyDefaults must not change Verify")
	}
}
