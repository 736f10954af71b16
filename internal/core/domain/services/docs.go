// Package services provides domain services of the delivery preparation model.
//
// The package includes:
//   - DeliveryEligibilityEvaluator: validates a delivery request and picks a vehicle class
//
// Services here are pure: every input, including the current time and the vehicle
// catalog, is passed in by the caller.
package services
