// Package queries contains read operations over the delivery configuration.
package queries

import (
	"errors"

	"preparedelivery/internal/pkg/guard"
)

var (
	ErrGetVehicleClassesQueryIsNotConstructed = errors.New(
		"GetVehicleClassesQuery must be created via NewGetVehicleClassesQuery constructor",
	)
)

// GetVehicleClassesQuery lists the vehicle classes deliveries are assigned to,
// smallest first.
//
// Example:
//
//	query := NewGetVehicleClassesQuery()
//	handler := NewGetVehicleClassesQueryHandler(catalogProvider)
//
//	classes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vehicle classes: %w", err)
//	}
//
//	for _, class := range classes {
//	    fmt.Printf("%s carries up to %.0f kg\n", class.Name, class.CapacityKg)
//	}
type GetVehicleClassesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVehicleClassesQuery creates a parameterless query.
func NewGetVehicleClassesQuery() GetVehicleClassesQuery {
	return GetVehicleClassesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleClassesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleClassesQueryIsNotConstructed)
}

// GetVehicleClassesQueryResponse is the read model of one vehicle class.
// CapacityKg is exclusive: a class carries orders strictly lighter than it.
type GetVehicleClassesQueryResponse struct {
	Name       string
	CapacityKg float64
}
