package vehicle

import (
	"errors"
	"fmt"

	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/pkg/errs"
)

const (
	// Gazel is the light tier of the default catalog.
	Gazel = "gazel"
	// Kamaz is the heavy tier of the default catalog.
	Kamaz = "kamaz"
)

// Catalog is the ordered set of vehicle classes available for delivery.
//
// Classes are kept in ascending capacity order; capacities are strictly increasing
// and names are unique. A Catalog is immutable: constructors copy their input and
// Classes returns a copy. The zero value is an empty catalog, which is valid and
// simply cannot carry anything.
type Catalog struct {
	classes []Class
}

// NewCatalog creates a catalog from classes listed smallest first.
//
// Returns an error when a class was not constructed, a name repeats, or
// capacities are not strictly increasing. All problems are reported at once.
//
// Example:
//
//	gazel, _ := vehicle.NewClass("gazel", kernel.MustWeight(1000))
//	kamaz, _ := vehicle.NewClass("kamaz", kernel.MustWeight(3000))
//	catalog, err := vehicle.NewCatalog(gazel, kamaz)
func NewCatalog(classes ...Class) (Catalog, error) {
	var problems []error
	seen := make(map[string]struct{}, len(classes))

	for i, c := range classes {
		if err := c.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("class %d: %w", i, err))
			continue
		}

		if _, dup := seen[c.Name()]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"vehicle name", fmt.Errorf("%q is listed more than once", c.Name())))
		}
		seen[c.Name()] = struct{}{}

		if i > 0 && classes[i-1].Validate() == nil && !c.Capacity().GreaterThan(classes[i-1].Capacity()) {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"capacity", fmt.Errorf("%s must be greater than %s", c, classes[i-1])))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return Catalog{}, err
	}

	return Catalog{classes: append([]Class(nil), classes...)}, nil
}

// DefaultCatalog returns the standard fleet: gazel below 1000 kg, kamaz below 3000 kg.
func DefaultCatalog() Catalog {
	gazel, _ := NewClass(Gazel, kernel.MustWeight(1000))
	kamaz, _ := NewClass(Kamaz, kernel.MustWeight(3000))
	return Catalog{classes: []Class{gazel, kamaz}}
}

// Select returns the first class, in catalog order, whose capacity strictly
// exceeds weight. Because capacities increase this is also the smallest such class.
// The boolean is false when the weight meets or exceeds every capacity, or the
// catalog is empty.
func (c Catalog) Select(weight kernel.Weight) (Class, bool) {
	for _, class := range c.classes {
		if class.CanCarry(weight) {
			return class, true
		}
	}

	return Class{}, false
}

// Classes returns a copy of the classes in ascending capacity order.
func (c Catalog) Classes() []Class {
	return append([]Class(nil), c.classes...)
}

// Len returns the number of classes.
func (c Catalog) Len() int {
	return len(c.classes)
}

// IsEmpty reports whether the catalog has no classes.
func (c Catalog) IsEmpty() bool {
	return len(c.classes) == 0
}

// Largest returns the class with the highest capacity.
func (c Catalog) Largest() (Class, bool) {
	if c.IsEmpty() {
		return Class{}, false
	}
	return c.classes[len(c.classes)-1], true
}
