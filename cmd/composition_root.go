package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"preparedelivery/internal/adapters/out/catalog"
	"preparedelivery/internal/adapters/out/clock"
	"preparedelivery/internal/core/application/usecases/commands"
	"preparedelivery/internal/core/application/usecases/queries"
	"preparedelivery/internal/core/ports"
)

type CompositionRoot struct {
	logger   *slog.Logger
	clock    ports.Clock
	catalogs ports.VehicleCatalogProvider
}

// NewCompositionRoot wires adapters from config. Log output goes to logOutput.
func NewCompositionRoot(config Config, logOutput io.Writer) (CompositionRoot, error) {
	logger, err := newLogger(config, logOutput)
	if err != nil {
		return CompositionRoot{}, err
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
	}

	provider, err := catalog.NewStaticProviderFromYAML(config.VehicleCatalog)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("vehicle catalog: %w", err)
	}

	return CompositionRoot{
		logger:   logger,
		clock:    clock.NewSystemClock(location),
		catalogs: provider,
	}, nil
}

// WithClock returns a copy of the root that uses c instead of the system clock.
func (c CompositionRoot) WithClock(clk ports.Clock) CompositionRoot {
	c.clock = clk
	return c
}

func (c CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c CompositionRoot) Clock() ports.Clock {
	return c.clock
}

func (c CompositionRoot) CreatePrepareDeliveryCommandHandler() commands.PrepareDeliveryCommandHandler {
	return commands.NewPrepareDeliveryCommandHandler(c.clock, c.catalogs, c.logger)
}

func (c CompositionRoot) CreateGetVehicleClassesQueryHandler() queries.GetVehicleClassesQueryHandler {
	return queries.NewGetVehicleClassesQueryHandler(c.catalogs)
}

func newLogger(config Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if config.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
