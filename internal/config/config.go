package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Port   string `yaml:"port"`
	DBPath string `yaml:"db_path" validate:"required"`

	// Source file locations for the two delimited inputs
	TripsPath string `yaml:"trips_path" validate:"required"`
	ZonesPath string `yaml:"zones_path" validate:"required"`

	// Default minimum-support threshold (trips per day-hour) applied
	// to dashboard and aggregate queries when the caller passes none.
	// The 50-vs-100 choice is analysis tuning, so it stays a
	// parameter rather than a constant.
	MinTripsPerDayHour float64 `yaml:"min_trips_per_day_hour" validate:"gte=0"`

	// Optional cron-style refresh interval for server mode, e.g.
	// "1h30m". Empty disables scheduled refreshes.
	RefreshInterval string `yaml:"refresh_interval"`
}

// Load builds the configuration from, in increasing precedence:
// built-in defaults, an optional YAML file (CONFIG_PATH or
// ./config.yml), and environment variables. A .env file is read first
// if present.
func Load() (*Config, error) {
	// Missing .env is fine; it only exists in local setups
	_ = godotenv.Load()

	cfg := &Config{
		Port:               ":8080",
		DBPath:             "./data/taxi.db",
		TripsPath:          "./data/yellow_tripdata.csv",
		ZonesPath:          "./data/taxi_zone_lookup.csv",
		MinTripsPerDayHour: 50,
	}

	if err := loadYAML(cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadYAML(cfg *Config) error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && os.Getenv("CONFIG_PATH") == "" {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
		if cfg.Port[0] != ':' {
			cfg.Port = ":" + cfg.Port
		}
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TRIPS_PATH"); v != "" {
		cfg.TripsPath = v
	}
	if v := os.Getenv("ZONES_PATH"); v != "" {
		cfg.ZonesPath = v
	}
	if v := os.Getenv("MIN_TRIPS_PER_DAY_HOUR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinTripsPerDayHour = f
		}
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		cfg.RefreshInterval = v
	}
}
