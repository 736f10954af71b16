package kernel

import (
	"fmt"
	"math"
	"strconv"

	"preparedelivery/internal/pkg/errs"
)

// Weight is a non-negative, finite mass expressed in kilograms.
// Weight is an immutable value object; the zero value is a valid weight of 0 kg.
//
// Example:
//
//	w, err := kernel.NewWeight(60)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(w) // Output: 60kg
type Weight struct {
	kg float64
}

// NewWeight creates a Weight of kg kilograms.
// NaN and infinite values are invalid, negative values are out of range.
//
// Parameters:
//   - kg: mass in kilograms, must be finite and >= 0
//
// Returns:
//   - Weight: the validated weight
//   - error: ValueIsInvalidError or ValueIsOutOfRangeError on bad input
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not a finite number of kilograms", kg))
	}
	if kg < 0 {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg, 0, "+Inf")
	}
	return Weight{kg: kg}, nil
}

// MustWeight is NewWeight for compile-time constants; it panics on invalid input.
func MustWeight(kg float64) Weight {
	w, err := NewWeight(kg)
	if err != nil {
		panic(err)
	}
	return w
}

// Kilograms returns the weight in kilograms.
func (w Weight) Kilograms() float64 {
	return w.kg
}

// IsZero reports whether the weight is 0 kg.
func (w Weight) IsZero() bool {
	return w.kg == 0
}

// Add returns the sum of both weights.
// The sum of two finite weights can overflow to +Inf, which is reported as an error.
//
// Example:
//
//	a := kernel.MustWeight(20)
//	b := kernel.MustWeight(40)
//	total, _ := a.Add(b) // 60kg
func (w Weight) Add(other Weight) (Weight, error) {
	return NewWeight(w.kg + other.kg)
}

// GreaterThan reports whether w is strictly heavier than other.
func (w Weight) GreaterThan(other Weight) bool {
	return w.kg > other.kg
}

// IsEqual reports whether both weights hold the same number of kilograms.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg == other.kg
}

// String implements fmt.Stringer, e.g. "1000kg" or "12.5kg".
func (w Weight) String() string {
	return strconv.FormatFloat(w.kg, 'f', -1, 64) + "kg"
}
