// Package kernel provides the value objects shared by the delivery preparation
// domain model.
//
// The package includes:
//   - Weight: a non-negative, finite mass in kilograms
//   - Address: a city/street/house destination whose completeness is checked on demand
//
// Both types are immutable and safe for concurrent use.
package kernel
