package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// ErrMissingURI is returned when MONGODB_URI is not set.
var ErrMissingURI = errors.New("MONGODB_URI is required")

const defaultDBName = "test"

type Mongo struct {
	URI              string        `env:"MONGODB_URI"`
	DBName           string        `env:"DB_NAME"`
	ItemCollection   string        `env:"ITEM_COLLECTION" envDefault:"items"`
	ReviewCollection string        `env:"REVIEW_COLLECTION" envDefault:"reviews"`
	ConnectTimeout   time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

type Config struct {
	Mongo
	Log
}

// Load reads the process environment into a Config. Callers load .env first.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads environ instead of the process environment; nil means the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.URI == "" {
		return Config{}, ErrMissingURI
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.DBName == "" {
		cs, err := connstring.Parse(c.URI)
		if err != nil {
			return fmt.Errorf("parse MONGODB_URI: %w", err)
		}
		c.DBName = cs.Database
	}
	if c.DBName == "" {
		c.DBName = defaultDBName
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	return nil
}
