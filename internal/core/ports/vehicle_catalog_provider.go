package ports

import (
	"context"

	"preparedelivery/internal/core/domain/model/vehicle"
)

// VehicleCatalogProvider supplies the vehicle classes deliveries can be assigned to.
type VehicleCatalogProvider interface {
	Catalog(ctx context.Context) (vehicle.Catalog, error)
}
