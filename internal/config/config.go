// Package config handles loading and validating the service
// configuration from environment variables, an optional .env file,
// and defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	GhanaNLP GhanaNLPConfig
	CORS     CORSConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int

	// SessionSecret is accepted from the environment for deployments
	// that front this API with a session-bearing web layer. When unset
	// a random secret is generated at startup.
	SessionSecret string
}

type GhanaNLPConfig struct {
	APIKey        string
	TranslateURL  string
	SynthesizeURL string

	TranslateTimeout  time.Duration
	SynthesizeTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from the environment, with an optional
// .env file in the working directory taken as a fallback source.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 8080)
	v.SetDefault("session_secret", "")
	v.SetDefault("ghananlp_api_key", "")
	v.SetDefault("ghananlp_translate_url", "")
	v.SetDefault("ghananlp_synthesize_url", "")
	v.SetDefault("translate_timeout", "15s")
	v.SetDefault("synthesize_timeout", "30s")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The .env file is optional; env vars and defaults are sufficient.
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
		slog.Info("no .env file found, using environment variables and defaults")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:          v.GetString("server_host"),
			Port:          v.GetInt("server_port"),
			SessionSecret: v.GetString("session_secret"),
		},
		GhanaNLP: GhanaNLPConfig{
			APIKey:            v.GetString("ghananlp_api_key"),
			TranslateURL:      v.GetString("ghananlp_translate_url"),
			SynthesizeURL:     v.GetString("ghananlp_synthesize_url"),
			TranslateTimeout:  v.GetDuration("translate_timeout"),
			SynthesizeTimeout: v.GetDuration("synthesize_timeout"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(v.GetString("cors_allowed_origins")),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}

	if cfg.Server.SessionSecret == "" {
		cfg.Server.SessionSecret = uuid.NewString()
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Validate reports configuration problems that should fail startup.
// A missing API key is deliberately not one of them: the service
// starts unconfigured and reports needs_setup on /api/health.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.GhanaNLP.TranslateTimeout <= 0 {
		return fmt.Errorf("translate_timeout must be positive")
	}
	if c.GhanaNLP.SynthesizeTimeout <= 0 {
		return fmt.Errorf("synthesize_timeout must be positive")
	}
	return nil
}

// SetupLogging configures the global slog logger.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
