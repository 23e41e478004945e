package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Data sources.
const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"Arboretum"`
		Port     int    `envconfig:"PORT" default:"8080"`
		Timezone string `envconfig:"TIMEZONE" default:"Local"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"arboretum"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Data struct {
		Source     string `envconfig:"DATA_SOURCE" default:"seed"`
		SeedPath   string `envconfig:"SEED_PATH"`
		LedgerPath string `envconfig:"LEDGER_PATH"`
	}

	Dashboard struct {
		UpcomingTaskLimit int `envconfig:"UPCOMING_TASK_LIMIT" default:"5"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Location resolves TIMEZONE. "Local" and "" mean the host's zone.
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || c.App.Timezone == "Local" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.App.Timezone, err)
	}

	return loc, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Data.Source {
	case SourceSeed, SourcePostgres:
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q (want %s or %s)", cfg.Data.Source, SourceSeed, SourcePostgres)
	}

	return &cfg, nil
}
