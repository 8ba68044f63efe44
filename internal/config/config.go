package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	Registry RegistryConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// RegistryConfig holds document numbering settings for this installation.
type RegistryConfig struct {
	// Prefix is the document series code stamped on every number this
	// installation issues, e.g. "ชร" for Chiang Rai.
	Prefix string `mapstructure:"prefix"`
	// LockTimeout bounds how long an allocation waits on the counter row
	// before failing as contention.
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SARABUN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SARABUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "sarabun")
	v.SetDefault("db.password", "sarabun_secret")
	v.SetDefault("db.name", "sarabun_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "sarabun")

	// Registry defaults
	v.SetDefault("registry.prefix", "ชร")
	v.SetDefault("registry.lock_timeout", "3s")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "SARABUN_SERVER_PORT",
		"server.read_timeout":   "SARABUN_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "SARABUN_SERVER_WRITE_TIMEOUT",
		"server.environment":    "SARABUN_SERVER_ENVIRONMENT",
		"db.host":               "SARABUN_DB_HOST",
		"db.port":               "SARABUN_DB_PORT",
		"db.user":               "SARABUN_DB_USER",
		"db.password":           "SARABUN_DB_PASSWORD",
		"db.name":               "SARABUN_DB_NAME",
		"db.sslmode":            "SARABUN_DB_SSLMODE",
		"db.max_open":           "SARABUN_DB_MAX_OPEN",
		"db.max_idle":           "SARABUN_DB_MAX_IDLE",
		"jwt.secret":            "SARABUN_JWT_SECRET",
		"jwt.access_expiry":     "SARABUN_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":    "SARABUN_JWT_REFRESH_EXPIRY",
		"jwt.issuer":            "SARABUN_JWT_ISSUER",
		"registry.prefix":       "SARABUN_REGISTRY_PREFIX",
		"registry.lock_timeout": "SARABUN_REGISTRY_LOCK_TIMEOUT",
		"log.level":             "SARABUN_LOG_LEVEL",
		"log.format":            "SARABUN_LOG_FORMAT",
		"cors.allowed_origins":  "SARABUN_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SARABUN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SARABUN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Registry = RegistryConfig{
		Prefix:      v.GetString("registry.prefix"),
		LockTimeout: v.GetDuration("registry.lock_timeout"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
