package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.BaptismPolicy != BaptismPolicyFollowingSunday {
		t.Errorf("BaptismPolicy = %q, want %q", cfg.BaptismPolicy, BaptismPolicyFollowingSunday)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/calendar.db")
	os.Setenv("ADMIN_API_KEY", "secret-key-123")
	os.Setenv("BAPTISM_POLICY", "epiphany")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/calendar.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/calendar.db")
	}
	if cfg.AdminAPIKey != "secret-key-123" {
		t.Errorf("AdminAPIKey = %q, want %q", cfg.AdminAPIKey, "secret-key-123")
	}
	if cfg.BaptismPolicy != BaptismPolicyEpiphany {
		t.Errorf("BaptismPolicy = %q, want %q", cfg.BaptismPolicy, BaptismPolicyEpiphany)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid development config",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/calendar.db",
				AdminAPIKey:   "", // OK in development
				BaptismPolicy: BaptismPolicyFollowingSunday,
				LogLevel:      "info",
				LogFormat:     "text",
			},
			wantErr: false,
		},
		{
			name: "valid production config",
			config: Config{
				Port:          8080,
				Env:           EnvProduction,
				DatabasePath:  "/data/calendar.db",
				AdminAPIKey:   "required-in-prod",
				BaptismPolicy: BaptismPolicyEpiphany,
				LogLevel:      "info",
				LogFormat:     "json",
			},
			wantErr: false,
		},
		{
			name: "production requires admin key",
			config: Config{
				Port:          8080,
				Env:           EnvProduction,
				DatabasePath:  "/data/calendar.db",
				AdminAPIKey:   "", // Missing!
				BaptismPolicy: BaptismPolicyFollowingSunday,
				LogLevel:      "info",
				LogFormat:     "json",
			},
			wantErr: true,
		},
		{
			name: "invalid port",
			config: Config{
				Port:          0,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/calendar.db",
				BaptismPolicy: BaptismPolicyFollowingSunday,
				LogLevel:      "info",
				LogFormat:     "text",
			},
			wantErr: true,
		},
		{
			name: "invalid environment",
			config: Config{
				Port:          8080,
				Env:           "testing",
				DatabasePath:  "./data/calendar.db",
				BaptismPolicy: BaptismPolicyFollowingSunday,
				LogLevel:      "info",
				LogFormat:     "text",
			},
			wantErr: true,
		},
		{
			name: "invalid baptism policy",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/calendar.db",
				BaptismPolicy: "second-monday",
				LogLevel:      "info",
				LogFormat:     "text",
			},
			wantErr: true,
		},
		{
			name: "missing database path",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "",
				BaptismPolicy: BaptismPolicyFollowingSunday,
				LogLevel:      "info",
				LogFormat:     "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/calendar.db",
				BaptismPolicy: BaptismPolicyFollowingSunday,
				LogLevel:      "verbose",
				LogFormat:     "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/calendar.db",
				BaptismPolicy: BaptismPolicyFollowingSunday,
				LogLevel:      "info",
				LogFormat:     "yaml",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// clearEnv removes all configuration environment variables.
func clearEnv() {
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_PATH", "ADMIN_API_KEY",
		"BAPTISM_POLICY", "LOG_LEVEL", "LOG_FORMAT",
	} {
		os.Unsetenv(key)
	}
}
