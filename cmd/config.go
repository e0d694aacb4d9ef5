package cmd

import (
	"errors"
	"fmt"
)

// Storage backends selectable through STORAGE_MODE.
const (
	StorageModePostgres = "postgres"
	StorageModeMemory   = "memory"
)

// ErrUnknownStorageMode is returned for a STORAGE_MODE outside the known set.
var ErrUnknownStorageMode = errors.New("unknown storage mode")

// Config carries all process configuration, populated from the environment.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	StorageMode string `env:"STORAGE_MODE" envDefault:"postgres"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"ordertrack"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Validate checks settings that cannot be expressed as struct tags.
func (c Config) Validate() error {
	switch c.StorageMode {
	case StorageModePostgres, StorageModeMemory:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageMode, c.StorageMode)
	}
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
