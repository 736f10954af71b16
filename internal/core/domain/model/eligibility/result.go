package eligibility

import (
	"fmt"

	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/core/domain/model/vehicle"
)

// Assignment is the successful outcome of delivery preparation.
type Assignment struct {
	vehicle vehicle.Class
	weight  kernel.Weight
	orderID string
	address kernel.Address
}

// NewAssignment bundles the chosen vehicle with the echoed order data.
func NewAssignment(v vehicle.Class, weight kernel.Weight, orderID string, address kernel.Address) Assignment {
	return Assignment{
		vehicle: v,
		weight:  weight,
		orderID: orderID,
		address: address,
	}
}

// Vehicle returns the assigned vehicle class.
func (a Assignment) Vehicle() vehicle.Class { return a.vehicle }

// Weight returns the delivered weight.
func (a Assignment) Weight() kernel.Weight { return a.weight }

// OrderID returns the identifier of the delivered order.
func (a Assignment) OrderID() string { return a.orderID }

// Address returns the destination address.
func (a Assignment) Address() kernel.Address { return a.address }

// Result is exactly one of an Assignment or a rejection Reason.
//
// Build it with Assigned or Rejected. The zero Result is a rejection with the
// Unknown reason and should be treated as a programming error.
//
// Example:
//
//	result := evaluator.Evaluate(...)
//	if a, ok := result.Assignment(); ok {
//	    fmt.Println("send", a.Vehicle().Name())
//	    return
//	}
//	reason, _ := result.Reason()
//	fmt.Println("rejected:", reason)
type Result struct {
	assigned   bool
	assignment Assignment
	reason     Reason
}

// Assigned creates a successful Result.
func Assigned(a Assignment) Result {
	return Result{assigned: true, assignment: a}
}

// Rejected creates a failed Result.
func Rejected(reason Reason) Result {
	return Result{reason: reason}
}

// IsAssigned reports whether a vehicle was assigned.
func (r Result) IsAssigned() bool {
	return r.assigned
}

// Assignment returns the assignment and true for successful results.
func (r Result) Assignment() (Assignment, bool) {
	if !r.assigned {
		return Assignment{}, false
	}
	return r.assignment, true
}

// Reason returns the rejection reason and true for failed results.
func (r Result) Reason() (Reason, bool) {
	if r.assigned {
		return Unknown, false
	}
	return r.reason, true
}

// Err returns nil for assignments and the reason's sentinel error for rejections.
// A rejection with an invalid reason yields the reason's validation error.
func (r Result) Err() error {
	if r.assigned {
		return nil
	}
	if err := r.reason.Validate(); err != nil {
		return err
	}
	return r.reason.Err()
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.assigned {
		return fmt.Sprintf("assigned %s for order %s (%s) to %s",
			r.assignment.vehicle.Name(), r.assignment.orderID, r.assignment.weight, r.assignment.address)
	}
	return fmt.Sprintf("rejected: %s", r.reason)
}
