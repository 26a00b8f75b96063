package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		Driver           string
		DSN              string
		MaxOpenConns     int
		MaxIdleConns     int
		ConnMaxLifetime  time.Duration
		StatementTimeout time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads config from environment (LINKCAT_ prefix) and optional linkcat.yaml.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("LINKCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("linkcat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read linkcat.yaml: %w", err)
		}
	}

	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.statement_timeout", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	cfg := &Config{}
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.DB.MaxOpenConns = v.GetInt("db.max_open_conns")
	cfg.DB.MaxIdleConns = v.GetInt("db.max_idle_conns")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	lifetime, err := time.ParseDuration(v.GetString("db.conn_max_lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid LINKCAT_DB_CONN_MAX_LIFETIME: %w", err)
	}
	cfg.DB.ConnMaxLifetime = lifetime

	timeout, err := time.ParseDuration(v.GetString("db.statement_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid LINKCAT_DB_STATEMENT_TIMEOUT: %w", err)
	}
	cfg.DB.StatementTimeout = timeout

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("LINKCAT_DB_DRIVER is required (sqlite3, postgres, pgx)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("LINKCAT_DB_DSN is required")
	}

	return cfg, nil
}
