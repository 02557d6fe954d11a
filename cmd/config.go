package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"aquasphere/internal/adapters/out/persistence"
	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	HTTPPort     string
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	DatabaseURL  string
	DatabasePath string
	HubLatitude  float64
	HubLongitude float64
	LogLevel     string
}

// LoadConfig reads the optional env files, then the environment. Variables
// already set in the environment win over the files.
//
// DB_DRIVER may be left empty: PostgreSQL is used when DATABASE_URL or DB_HOST
// is set, SQLite otherwise.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_DRIVER", "")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "aquasphere")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_PATH", "aquasphere.db")
	v.SetDefault("HUB_LATITUDE", services.DefaultHub().Latitude())
	v.SetDefault("HUB_LONGITUDE", services.DefaultHub().Longitude())
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:     v.GetString("HTTP_PORT"),
		DBDriver:     strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBHost:       v.GetString("DB_HOST"),
		DBPort:       v.GetString("DB_PORT"),
		DBUser:       v.GetString("DB_USER"),
		DBPassword:   v.GetString("DB_PASSWORD"),
		DBName:       v.GetString("DB_NAME"),
		DBSslMode:    v.GetString("DB_SSLMODE"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		DatabasePath: v.GetString("DATABASE_PATH"),
		HubLatitude:  v.GetFloat64("HUB_LATITUDE"),
		HubLongitude: v.GetFloat64("HUB_LONGITUDE"),
		LogLevel:     v.GetString("LOG_LEVEL"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = persistence.DriverSQLite
		if cfg.DatabaseURL != "" || cfg.DBHost != "" {
			cfg.DBDriver = persistence.DriverPostgres
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("%w: HTTP_PORT %q is not a port", ErrInvalidConfig, c.HTTPPort))
	}

	switch c.DBDriver {
	case persistence.DriverPostgres:
		if c.DatabaseURL == "" && c.DBHost == "" {
			errs = append(errs, fmt.Errorf("%w: DATABASE_URL or DB_HOST is required for postgres", ErrInvalidConfig))
		}
	case persistence.DriverSQLite:
		if c.DatabasePath == "" {
			errs = append(errs, fmt.Errorf("%w: DATABASE_PATH is required for sqlite", ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: DB_DRIVER %q is not postgres or sqlite", ErrInvalidConfig, c.DBDriver))
	}

	if _, err := kernel.NewLocation(c.HubLatitude, c.HubLongitude); err != nil {
		errs = append(errs, fmt.Errorf("%w: hub location: %w", ErrInvalidConfig, err))
	}

	return errors.Join(errs...)
}

// DSN is the connection string for the selected driver.
func (c Config) DSN() string {
	if c.DBDriver == persistence.DriverSQLite {
		return c.DatabasePath
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
