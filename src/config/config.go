package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultAccessCode = "0000"
)

// Config is read once at startup and handed to constructors by value.
type Config struct {
	DBDriver       string
	DatabaseURL    string
	SQLitePath     string
	AccessCode     string
	AccessCodeHash string
	AllowedOrigin  string
	ServerHost     string
	Debug          bool
	LogLevel       string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("sqlite_path", "kedeea.db")
	v.SetDefault("access_code", DefaultAccessCode)
	v.SetDefault("allowed_origin", "*")
	v.SetDefault("server_host", ":8080")
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		DBDriver:       strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
		DatabaseURL:    v.GetString("database_url"),
		SQLitePath:     v.GetString("sqlite_path"),
		AccessCode:     v.GetString("access_code"),
		AccessCodeHash: v.GetString("access_code_hash"),
		AllowedOrigin:  v.GetString("allowed_origin"),
		ServerHost:     v.GetString("server_host"),
		Debug:          v.GetBool("debug"),
		LogLevel:       v.GetString("log_level"),
	}

	if cfg.DBDriver == "" {
		if cfg.DatabaseURL != "" {
			cfg.DBDriver = DriverPostgres
		} else {
			cfg.DBDriver = DriverSQLite
		}
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return Config{}, errors.New("SQLITE_PATH must not be empty")
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	if cfg.AllowedOrigin != "*" &&
		!strings.HasPrefix(cfg.AllowedOrigin, "http://") && !strings.HasPrefix(cfg.AllowedOrigin, "https://") {
		return Config{}, fmt.Errorf("ALLOWED_ORIGIN must be * or an http(s) origin, got %q", cfg.AllowedOrigin)
	}

	return cfg, nil
}

// UsesDefaultAccessCode reports whether the deployment still runs on the shipped code.
func (c Config) UsesDefaultAccessCode() bool {
	return c.AccessCodeHash == "" && c.AccessCode == DefaultAccessCode
}
