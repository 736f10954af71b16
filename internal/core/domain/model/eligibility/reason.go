package eligibility

import (
	"errors"
	"fmt"

	"preparedelivery/internal/pkg/errs"
)

var (
	// ErrDateInPast is the error form of DateInPast.
	ErrDateInPast = errors.New("delivery date is not in the future")
	// ErrIncompleteAddress is the error form of IncompleteAddress.
	ErrIncompleteAddress = errors.New("delivery address is incomplete")
	// ErrNoVehicleAvailable is the error form of NoVehicleAvailable.
	ErrNoVehicleAvailable = errors.New("no vehicle can carry the order")
)

// Reason classifies why a delivery was rejected.
//
// Reasons are listed in the order the evaluator checks them, so a rejection always
// reports the earliest detected problem:
//
//	DateInPast -> IncompleteAddress -> NoVehicleAvailable
type Reason int

const (
	// Unknown is the zero value and never produced by the evaluator.
	Unknown Reason = iota

	// DateInPast means the requested delivery date is not strictly after now.
	DateInPast

	// IncompleteAddress means city, street or house is blank.
	IncompleteAddress

	// NoVehicleAvailable means the order weighs at least as much as the largest
	// catalog capacity, or the catalog is empty.
	NoVehicleAvailable
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		Unknown:            "Unknown",
		DateInPast:         "DateInPast",
		IncompleteAddress:  "IncompleteAddress",
		NoVehicleAvailable: "NoVehicleAvailable",
	}
}

func getReasonErrors() map[Reason]error {
	//nolint:exhaustive // Unknown has no error form
	return map[Reason]error{
		DateInPast:         ErrDateInPast,
		IncompleteAddress:  ErrIncompleteAddress,
		NoVehicleAvailable: ErrNoVehicleAvailable,
	}
}

// Validate returns an error for Unknown and out-of-range values.
func (r Reason) Validate() error {
	if _, ok := getReasonErrors()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%d is not a valid rejection reason", r))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values print as "Unknown".
func (r Reason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Err returns the sentinel error for the reason, or nil for invalid reasons.
// It lets callers that prefer error values use errors.Is on a rejection.
func (r Reason) Err() error {
	return getReasonErrors()[r]
}
