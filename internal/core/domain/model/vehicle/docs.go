// Package vehicle describes the vehicle classes a delivery can be assigned to.
//
// The package includes:
//   - Class: a named capacity tier
//   - Catalog: the ordered, validated list of tiers, with first-fit selection
//
// The catalog is configuration: callers build it (or use DefaultCatalog) and pass
// it explicitly wherever a vehicle has to be chosen.
package vehicle
