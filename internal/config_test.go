package internal

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := NewDefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestWatchConfig_DebounceRequired(t *testing.T) {
	for _, d := range []time.Duration{0, time.Microsecond, -time.Second} {
		cfg := WatchConfig{Debounce: d}
		if err := cfg.Validate(); err == nil {
			t.Errorf("debounce %v should fail validation", d)
		}
	}
}

func TestServerConfig_PortRange(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("port out of range should fail")
	}
}

func TestServerConfig_RootRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Root = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty root should fail")
	}
}

func TestLogFileConfig_NegativeRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.LogFile.MaxBackups = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative max_backups should fail")
	}
}

func TestHTTPConfig_Address(t *testing.T) {
	cfg := HTTPConfig{Port: 9090}
	if got := cfg.Address(); got != ":9090" {
		t.Errorf("Address = %q", got)
	}
}
