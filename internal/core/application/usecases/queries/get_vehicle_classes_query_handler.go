package queries

import (
	"context"
	"fmt"

	"preparedelivery/internal/core/ports"
)

// GetVehicleClassesQueryHandler reads vehicle classes from the catalog provider.
type GetVehicleClassesQueryHandler struct {
	catalogs ports.VehicleCatalogProvider
}

func NewGetVehicleClassesQueryHandler(catalogs ports.VehicleCatalogProvider) GetVehicleClassesQueryHandler {
	return GetVehicleClassesQueryHandler{catalogs: catalogs}
}

// Handle returns the classes in catalog order. An empty catalog yields an empty,
// non-nil slice.
func (h GetVehicleClassesQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleClassesQuery,
) ([]GetVehicleClassesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog, err := h.catalogs.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vehicle catalog: %w", err)
	}

	classes := make([]GetVehicleClassesQueryResponse, 0, catalog.Len())
	for _, class := range catalog.Classes() {
		classes = append(classes, GetVehicleClassesQueryResponse{
			Name:       class.Name(),
			CapacityKg: class.Capacity().Kilograms(),
		})
	}

	return classes, nil
}
