// Package catalog loads the vehicle catalog from configuration text.
//
// The catalog is written as a YAML sequence, smallest vehicle first, either in
// block style or in flow style so that it fits in one environment variable:
//
//	[{name: gazel, capacity: 1000}, {name: kamaz, capacity: 3000}]
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/core/domain/model/vehicle"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Entry is one vehicle class as written in configuration.
type Entry struct {
	// Name is the vehicle tier name.
	Name string `yaml:"name" validate:"required"`
	// Capacity is the maximum payload in kilograms. Loads must weigh strictly less.
	Capacity float64 `yaml:"capacity" validate:"gt=0"`
}

// ParseCatalog decodes a YAML catalog and builds a validated vehicle.Catalog.
// Unknown keys are rejected so that typos do not silently drop a capacity.
// An empty document yields an empty catalog.
func ParseCatalog(text string) (vehicle.Catalog, error) {
	entries, err := decodeEntries(text)
	if err != nil {
		return vehicle.Catalog{}, err
	}

	classes := make([]vehicle.Class, 0, len(entries))
	var problems []error
	for i, e := range entries {
		class, classErr := e.toClass()
		if classErr != nil {
			problems = append(problems, fmt.Errorf("vehicle %d: %w", i, classErr))
			continue
		}
		classes = append(classes, class)
	}
	if err = errors.Join(problems...); err != nil {
		return vehicle.Catalog{}, err
	}

	return vehicle.NewCatalog(classes...)
}

// MustParseCatalog is ParseCatalog for literals known to be valid; it panics otherwise.
func MustParseCatalog(text string) vehicle.Catalog {
	c, err := ParseCatalog(text)
	if err != nil {
		panic(err)
	}
	return c
}

func decodeEntries(text string) ([]Entry, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)

	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode vehicle catalog: %w", err)
	}

	return entries, nil
}

func (e Entry) toClass() (vehicle.Class, error) {
	if err := validate.Struct(e); err != nil {
		return vehicle.Class{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	capacity, err := kernel.NewWeight(e.Capacity)
	if err != nil {
		return vehicle.Class{}, err
	}

	return vehicle.NewClass(e.Name, capacity)
}
