package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test default values
	if cfg.Mode != "stdio" {
		t.Errorf("Expected default mode to be 'stdio', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "mcp-contract-analyzer" {
		t.Errorf("Expected default server name to be 'mcp-contract-analyzer', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 10*1024*1024 {
		t.Errorf("Expected default max file size to be 10MB, got %d", cfg.MaxFileSize)
	}

	if cfg.AuditLogDir != DefaultAuditLogDir {
		t.Errorf("Expected default audit log dir to be '%s', got '%s'", DefaultAuditLogDir, cfg.AuditLogDir)
	}

	if !cfg.EnableAudit {
		t.Error("Expected audit logging to be enabled by default")
	}

	// Test that contract directory is set to current working directory by default
	currentDir, _ := os.Getwd()
	if cfg.ContractDirectory != currentDir {
		t.Errorf("Expected default contract directory to be '%s', got '%s'", currentDir, cfg.ContractDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config - stdio mode",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "valid config - server mode",
			config: &Config{
				Mode:              "server",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				AuditLogDir:       "logs/audit",
				EnableAudit:       true,
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: false,
		},
		{
			name: "invalid mode",
			config: &Config{
				Mode:              "invalid",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too low (server mode)",
			config: &Config{
				Mode:              "server",
				Host:              "127.0.0.1",
				Port:              0,
				ContractDirectory: tempDir,
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too high (server mode)",
			config: &Config{
				Mode:              "server",
				Host:              "127.0.0.1",
				Port:              70000,
				ContractDirectory: tempDir,
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port ignored in stdio mode",
			config: &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              0,
				ContractDirectory: tempDir,
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: false,
		},
		{
			name: "empty contract directory",
			config: &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: "",
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: true,
		},
		{
			name: "empty audit dir with auditing enabled",
			config: &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				AuditLogDir:       "",
				EnableAudit:       true,
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: true,
		},
		{
			name: "empty audit dir with auditing disabled",
			config: &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				AuditLogDir:       "",
				EnableAudit:       false,
				LogLevel:          "info",
				MaxFileSize:       1024,
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			config: &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				LogLevel:          "invalid",
				MaxFileSize:       1024,
			},
			wantErr: true,
		},
		{
			name: "invalid max file size",
			config: &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				LogLevel:          "info",
				MaxFileSize:       0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := &Config{
		Host: "192.168.1.1",
		Port: 9090,
	}

	expected := "192.168.1.1:9090"
	if got := cfg.Address(); got != expected {
		t.Errorf("Config.Address() = %v, want %v", got, expected)
	}
}

func TestConfigIsDebug(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     bool
	}{
		{
			name:     "debug level",
			logLevel: "debug",
			want:     true,
		},
		{
			name:     "info level",
			logLevel: "info",
			want:     false,
		},
		{
			name:     "warn level",
			logLevel: "warn",
			want:     false,
		},
		{
			name:     "error level",
			logLevel: "error",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			if got := cfg.IsDebug(); got != tt.want {
				t.Errorf("Config.IsDebug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Mode:              "server",
		Host:              "localhost",
		Port:              8080,
		ContractDirectory: "/home/user/contracts",
		LogLevel:          "debug",
		MaxFileSize:       1024,
	}

	result := cfg.String()

	// Check that the string contains expected components
	expectedSubstrings := []string{
		"Mode: server",
		"Host: localhost",
		"Port: 8080",
		"ContractDirectory: /home/user/contracts",
		"LogLevel: debug",
		"MaxFileSize: 1024",
	}

	for _, substr := range expectedSubstrings {
		if !strings.Contains(result, substr) {
			t.Errorf("Config.String() result doesn't contain expected substring: %s\nGot: %s", substr, result)
		}
	}
}

func TestConfigValidateCreatesContractDirectory(t *testing.T) {
	tempParent := t.TempDir()

	// Use a non-existent subdirectory
	missingDir := filepath.Join(tempParent, "incoming", "contracts")

	cfg := &Config{
		Mode:              "stdio",
		Host:              "127.0.0.1",
		Port:              8080,
		ContractDirectory: missingDir,
		LogLevel:          "info",
		MaxFileSize:       1024,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() failed for creatable directory: %v", err)
	}

	if _, err := os.Stat(missingDir); err != nil {
		t.Errorf("Expected contract directory to be created: %v", err)
	}
}

func TestConfigValidateLogLevels(t *testing.T) {
	validLevels := []string{"debug", "info", "warn", "error"}
	invalidLevels := []string{"DEBUG", "INFO", "trace", "fatal", ""}

	tempDir := t.TempDir()

	// Test valid log levels
	for _, level := range validLevels {
		t.Run("valid_"+level, func(t *testing.T) {
			cfg := &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				LogLevel:          level,
				MaxFileSize:       1024,
			}

			if err := cfg.Validate(); err != nil {
				t.Errorf("Config.Validate() should accept log level '%s', got error: %v", level, err)
			}
		})
	}

	// Test invalid log levels
	for _, level := range invalidLevels {
		t.Run("invalid_"+level, func(t *testing.T) {
			cfg := &Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				LogLevel:          level,
				MaxFileSize:       1024,
			}

			if err := cfg.Validate(); err == nil {
				t.Errorf("Config.Validate() should reject log level '%s'", level)
			}
		})
	}
}

func TestConfigIsServerMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{
			name: "server mode",
			mode: "server",
			want: true,
		},
		{
			name: "stdio mode",
			mode: "stdio",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mode: tt.mode}
			if got := cfg.IsServerMode(); got != tt.want {
				t.Errorf("Config.IsServerMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigIsStdioMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{
			name: "stdio mode",
			mode: "stdio",
			want: true,
		},
		{
			name: "server mode",
			mode: "server",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mode: tt.mode}
			if got := cfg.IsStdioMode(); got != tt.want {
				t.Errorf("Config.IsStdioMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
