package services

import (
	"time"

	"preparedelivery/internal/core/domain/model/eligibility"
	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/core/domain/model/order"
	"preparedelivery/internal/core/domain/model/vehicle"
)

// DeliveryEligibilityEvaluator is a domain service deciding whether an order can be
// delivered to an address on a date, and by which vehicle class.
//
// Business rules, checked in this order and short-circuited on the first failure:
//   - The requested date must be strictly after now (DateInPast)
//   - City, street and house must all be non-blank (IncompleteAddress)
//   - Some catalog class must have capacity strictly above the weight (NoVehicleAvailable)
//
// The smallest class that fits is assigned. Rejections are returned as data, never
// as errors.
//
// The evaluator holds no state and has no side effects: it does not log, read the
// clock or mutate its arguments, so it is safe for concurrent use and repeated
// calls with the same arguments give equal results.
//
// Example usage:
//
//	evaluator := services.NewDeliveryEligibilityEvaluator()
//	result := evaluator.Evaluate(o.ID(), o.TotalWeight(), address, tomorrow, time.Now(), vehicle.DefaultCatalog())
//	if reason, rejected := result.Reason(); rejected {
//	    // Tell the customer what to fix
//	    return
//	}
type DeliveryEligibilityEvaluator struct{}

// NewDeliveryEligibilityEvaluator creates a new DeliveryEligibilityEvaluator instance.
func NewDeliveryEligibilityEvaluator() DeliveryEligibilityEvaluator {
	return DeliveryEligibilityEvaluator{}
}

// Evaluate runs the eligibility checks for one delivery request.
//
// Parameters:
//   - orderID: echoed into the assignment
//   - totalWeight: summed weight of the order
//   - address: destination, checked for completeness
//   - requestedDate: desired delivery moment
//   - now: current time supplied by the caller
//   - catalog: vehicle classes, smallest first
//
// Returns:
//   - eligibility.Result: Assigned with the chosen class, or Rejected with a reason
func (e DeliveryEligibilityEvaluator) Evaluate(
	orderID string,
	totalWeight kernel.Weight,
	address kernel.Address,
	requestedDate time.Time,
	now time.Time,
	catalog vehicle.Catalog,
) eligibility.Result {
	if !requestedDate.After(now) {
		return eligibility.Rejected(eligibility.DateInPast)
	}

	if !address.IsComplete() {
		return eligibility.Rejected(eligibility.IncompleteAddress)
	}

	class, ok := catalog.Select(totalWeight)
	if !ok {
		return eligibility.Rejected(eligibility.NoVehicleAvailable)
	}

	return eligibility.Assigned(eligibility.NewAssignment(class, totalWeight, orderID, address))
}

// EvaluateOrder is Evaluate for an order summary.
// It returns an error only when o was not built by an order constructor.
func (e DeliveryEligibilityEvaluator) EvaluateOrder(
	o *order.Order,
	address kernel.Address,
	requestedDate time.Time,
	now time.Time,
	catalog vehicle.Catalog,
) (eligibility.Result, error) {
	if err := o.Validate(); err != nil {
		return eligibility.Result{}, err
	}

	return e.Evaluate(o.ID(), o.TotalWeight(), address, requestedDate, now, catalog), nil
}
