package catalog

import (
	"context"

	"preparedelivery/internal/core/domain/model/vehicle"
)

// StaticProvider serves a catalog fixed at start-up.
type StaticProvider struct {
	catalog vehicle.Catalog
}

// NewStaticProvider wraps an already validated catalog.
func NewStaticProvider(c vehicle.Catalog) StaticProvider {
	return StaticProvider{catalog: c}
}

// NewStaticProviderFromYAML parses text with ParseCatalog and wraps the result.
func NewStaticProviderFromYAML(text string) (StaticProvider, error) {
	c, err := ParseCatalog(text)
	if err != nil {
		return StaticProvider{}, err
	}
	return NewStaticProvider(c), nil
}

// Catalog returns the configured catalog. It fails only if ctx is already done.
func (p StaticProvider) Catalog(ctx context.Context) (vehicle.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return vehicle.Catalog{}, err
	}
	return p.catalog, nil
}
