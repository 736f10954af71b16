package order

import (
	"errors"
	"fmt"
	"strings"

	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/pkg/errs"
	"preparedelivery/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or NewOrderFromProducts.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the order summary consumed by delivery preparation: an opaque identifier
// and the total weight of everything that has to be shipped.
//
// Order follows these invariants:
//   - The identifier is non-blank
//   - The total weight is a valid kernel.Weight (finite, non-negative)
//   - Can only be created through NewOrder or NewOrderFromProducts
//
// Order is immutable once constructed.
type Order struct {
	id          string
	totalWeight kernel.Weight
	guard       guard.ConstructorGuard
}

// NewID returns a fresh opaque order identifier.
func NewID() string {
	return uuid.NewString()
}

// NewOrder creates an order summary from an already computed total weight.
//
// Parameters:
//   - id: opaque order identifier (must not be blank)
//   - totalWeight: the summed weight of the order's products
//
// Returns:
//   - *Order: the created order if validation passes
//   - error: ValueIsRequiredError if id is blank
//
// Example:
//
//	o, err := order.NewOrder("A-1024", kernel.MustWeight(60))
func NewOrder(id string, totalWeight kernel.Weight) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := o.setID(id); err != nil {
		return nil, err
	}
	o.totalWeight = totalWeight

	return o, nil
}

// NewOrderFromProducts creates an order summary whose total weight is the sum of
// the product weights. An order without products weighs 0 kg.
//
// Example:
//
//	bag, _ := order.NewProduct("bag", kernel.MustWeight(20))
//	box, _ := order.NewProduct("box", kernel.MustWeight(40))
//	o, err := order.NewOrderFromProducts("A-1024", []order.Product{bag, box})
//	// o.TotalWeight() == 60kg
func NewOrderFromProducts(id string, products []Product) (*Order, error) {
	total, err := sumWeights(products)
	if err != nil {
		return nil, errors.Join(validateID(id), err)
	}

	return NewOrder(id, total)
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// TotalWeight returns the weight that has to be delivered.
func (o *Order) TotalWeight() kernel.Weight {
	return o.totalWeight
}

func (o *Order) setID(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	o.id = id
	return nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	return nil
}

func sumWeights(products []Product) (kernel.Weight, error) {
	var total kernel.Weight
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return kernel.Weight{}, fmt.Errorf("product %d: %w", i, err)
		}

		sum, err := total.Add(p.Weight())
		if err != nil {
			return kernel.Weight{}, fmt.Errorf("product %d: %w", i, err)
		}
		total = sum
	}
	return total, nil
}
