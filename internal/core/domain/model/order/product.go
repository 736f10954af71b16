package order

import (
	"errors"
	"strings"

	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/pkg/errs"
	"preparedelivery/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not built by NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a line item of an order. Only its weight matters for delivery.
type Product struct {
	name   string
	weight kernel.Weight
	guard  guard.ConstructorGuard
}

// NewProduct creates a Product. The name is required, the weight may be zero.
func NewProduct(name string, weight kernel.Weight) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, errs.NewValueIsRequiredError("product name")
	}

	return Product{
		name:   name,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the product was created via NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Name returns the product name.
func (p Product) Name() string {
	return p.name
}

// Weight returns the product weight.
func (p Product) Weight() kernel.Weight {
	return p.weight
}
