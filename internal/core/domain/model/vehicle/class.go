package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/pkg/errs"
	"preparedelivery/internal/pkg/guard"
)

// ErrClassIsNotConstructed indicates that a Class was not created via NewClass.
var ErrClassIsNotConstructed = errors.New("Class must be created via NewClass constructor")

// Class is a named vehicle capacity tier, e.g. "gazel" carrying less than 1000 kg.
//
// A Class can carry a load only when its capacity is strictly greater than the
// load's weight: a 1000 kg capacity does not take a 1000 kg order.
type Class struct {
	name     string
	capacity kernel.Weight
	guard    guard.ConstructorGuard
}

// NewClass creates a vehicle class.
//
// Parameters:
//   - name: tier name, must not be blank
//   - capacity: maximum payload, must be strictly positive
//
// Returns:
//   - Class: the created class
//   - error: joined validation errors for every invalid parameter
//
// Example:
//
//	gazel, err := vehicle.NewClass("gazel", kernel.MustWeight(1000))
func NewClass(name string, capacity kernel.Weight) (Class, error) {
	c := Class{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setName(name), c.setCapacity(capacity)); err != nil {
		return Class{}, err
	}

	return c, nil
}

// Validate reports whether the class was created via NewClass.
func (c Class) Validate() error {
	return c.guard.Validate(ErrClassIsNotConstructed)
}

// Name returns the tier name.
func (c Class) Name() string {
	return c.name
}

// Capacity returns the maximum payload of the tier.
func (c Class) Capacity() kernel.Weight {
	return c.capacity
}

// CanCarry reports whether the capacity strictly exceeds weight.
func (c Class) CanCarry(weight kernel.Weight) bool {
	return c.capacity.GreaterThan(weight)
}

// IsEqual compares classes by name and capacity.
func (c Class) IsEqual(other Class) bool {
	return c.name == other.name && c.capacity.IsEqual(other.capacity)
}

// String implements fmt.Stringer, e.g. "gazel(<1000kg)".
func (c Class) String() string {
	return fmt.Sprintf("%s(<%s)", c.name, c.capacity)
}

func (c *Class) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("vehicle name")
	}
	c.name = name
	return nil
}

func (c *Class) setCapacity(capacity kernel.Weight) error {
	if capacity.IsZero() {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"capacity", capacity, "0kg (exclusive)", "+Inf",
			errors.New("capacity must be strictly positive"))
	}
	c.capacity = capacity
	return nil
}
