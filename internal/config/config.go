package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB
	DefaultAuditLogDir = "logs/audit"

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the contract analyzer MCP server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Contract configuration
	ContractDirectory string

	// Audit configuration
	AuditLogDir string
	EnableAudit bool

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum contract file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		Mode:              ModeStdio, // Default to stdio mode for MCP compatibility
		Host:              DefaultHost,
		Port:              DefaultPort,
		ContractDirectory: currentDir,
		AuditLogDir:       DefaultAuditLogDir,
		EnableAudit:       true,
		Version:           "1.0.0",
		ServerName:        "mcp-contract-analyzer",
		LogLevel:          DefaultLogLevel,
		MaxFileSize:       DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	// Optional .env file for local development; env vars win when both are set
	_ = godotenv.Load()

	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.ContractDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.ContractDirectory); err == nil {
			cfg.ContractDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("CONTRACT_ANALYZER")
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.ContractDirectory)
	viper.SetDefault("auditdir", cfg.AuditLogDir)
	viper.SetDefault("audit", cfg.EnableAudit)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.ContractDirectory, "Directory containing contract documents")
	pflag.String("auditdir", cfg.AuditLogDir, "Directory for audit log sessions")
	pflag.Bool("audit", cfg.EnableAudit, "Enable audit logging of analysis sessions")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum contract file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("auditdir", pflag.Lookup("auditdir"))
	_ = viper.BindPFlag("audit", pflag.Lookup("audit"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMCP Contract Analyzer - A Model Context Protocol server for legal contract analysis\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                         "+
			"# stdio mode, current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/contracts                "+
			"# stdio mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --dir=/path/to/contracts  # server mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --audit=false                           # disable audit logging\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_MODE        Server mode\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_HOST        Server host\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_PORT        Server port\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_DIR         Contract directory\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_AUDITDIR    Audit log directory\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_AUDIT       Enable audit logging\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  CONTRACT_ANALYZER_MAXFILESIZE Maximum file size\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.ContractDirectory = viper.GetString("dir")
	cfg.AuditLogDir = viper.GetString("auditdir")
	cfg.EnableAudit = viper.GetBool("audit")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Validate port range (only for server mode)
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	// Validate contract directory
	if c.ContractDirectory == "" {
		return errors.New("contract directory cannot be empty")
	}

	// Check if contract directory exists, create if it doesn't
	if _, err := os.Stat(c.ContractDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.ContractDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create contract directory %s: %w", c.ContractDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access contract directory %s: %w", c.ContractDirectory, err)
	}

	// Validate audit log directory when auditing is enabled
	if c.EnableAudit && c.AuditLogDir == "" {
		return errors.New("audit log directory cannot be empty when auditing is enabled")
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, ContractDirectory: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Host, c.Port, c.ContractDirectory, c.LogLevel, c.MaxFileSize)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
