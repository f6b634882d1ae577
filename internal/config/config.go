package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Site   SiteConfig   `yaml:"site"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// In a container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	// Allow override via environment
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// Credential is a static username/password pair
type Credential struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// AuthConfig holds the static credential tables for both login tiers.
// There is exactly one admin pair and any number of staff pairs.
type AuthConfig struct {
	Admin Credential   `yaml:"admin"`
	Staff []Credential `yaml:"staff"`

	// ProtectReads gates the admin read endpoints (message and newsletter
	// listings) behind a bearer token. The reference deployment leaves this
	// off and gates client-side only.
	ProtectReads bool `yaml:"protect_reads"`
}

// SiteConfig holds front-end serving and CORS settings
type SiteConfig struct {
	StaticDir      string   `yaml:"static_dir"`
	PingMessage    string   `yaml:"ping_message"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Site.StaticDir == "" {
		cfg.Site.StaticDir = "./web/dist"
	}
	if cfg.Site.PingMessage == "" {
		cfg.Site.PingMessage = "ping"
	}
	if len(cfg.Site.AllowedOrigins) == 0 {
		cfg.Site.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so credentials can live in .env locally and in real env vars in deploys.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if username := os.Getenv("ADMIN_USERNAME"); username != "" {
		cfg.Auth.Admin.Username = username
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		cfg.Auth.Admin.Password = password
	}
	if msg := os.Getenv("PING_MESSAGE"); msg != "" {
		cfg.Site.PingMessage = msg
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.Site.StaticDir = dir
	}

	return cfg, nil
}

// Validate checks that the credential tables are usable. Incomplete entries
// would make one of the login tiers unreachable, so they fail loudly at boot.
func (c *Config) Validate() error {
	if c.Auth.Admin.Username == "" || c.Auth.Admin.Password == "" {
		return fmt.Errorf("auth.admin credentials are not configured")
	}
	for i, s := range c.Auth.Staff {
		if s.Username == "" || s.Password == "" {
			return fmt.Errorf("auth.staff[%d] is missing a username or password", i)
		}
	}
	return nil
}
