package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultVehicleCatalog is the fleet used when VEHICLE_CATALOG is not set.
const DefaultVehicleCatalog = "[{name: gazel, capacity: 1000}, {name: kamaz, capacity: 3000}]"

type Config struct {
	VehicleCatalog string `env:"VEHICLE_CATALOG" envDefault:"[{name: gazel, capacity: 1000}, {name: kamaz, capacity: 3000}]" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Timezone       string `env:"TIMEZONE" envDefault:"UTC" validate:"required,timezone"`
}

// LoadConfig reads an optional .env file from the working directory and then
// parses the environment into a validated Config.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return ParseConfig()
}

// ParseConfig builds a Config from the current environment only.
func ParseConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
