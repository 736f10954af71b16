package commands

import (
	"errors"
	"time"

	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/core/domain/model/order"
	"preparedelivery/internal/pkg/errs"
	"preparedelivery/internal/pkg/guard"
)

var (
	ErrPrepareDeliveryCommandIsNotConstructed = errors.New(
		"PrepareDeliveryCommand must be created via NewPrepareDeliveryCommand constructor",
	)
	ErrDeliveryDateIsRequired = errs.NewValueIsRequiredError("delivery date")
)

// PrepareDeliveryCommand asks to plan the delivery of an order to an address on a date.
//
// The command only checks that its parts are present. Whether the date is in the
// future or the address is complete is decided by the eligibility rules and is
// reported in the handler's result, not as a construction error.
//
// Example:
//
//	o, _ := order.NewOrderFromProducts(order.NewID(), products)
//	address := kernel.NewAddress("Ростов-на-Дону", "ул. Маршала Конюхова", "д. 5")
//	cmd, err := NewPrepareDeliveryCommand(o, address, time.Now().AddDate(0, 0, 1))
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type PrepareDeliveryCommand struct { //nolint:recvcheck //using for validation
	order         *order.Order
	address       kernel.Address
	requestedDate time.Time

	guard guard.ConstructorGuard
}

// NewPrepareDeliveryCommand creates the command.
// The order must be constructed and the requested date must be set.
func NewPrepareDeliveryCommand(
	o *order.Order,
	address kernel.Address,
	requestedDate time.Time,
) (PrepareDeliveryCommand, error) {
	cmd := PrepareDeliveryCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrder(o),
		cmd.setRequestedDate(requestedDate),
	); err != nil {
		return PrepareDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PrepareDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPrepareDeliveryCommandIsNotConstructed)
}

// Order returns the order to deliver.
func (c PrepareDeliveryCommand) Order() *order.Order {
	return c.order
}

// Address returns the destination.
func (c PrepareDeliveryCommand) Address() kernel.Address {
	return c.address
}

// RequestedDate returns the desired delivery moment.
func (c PrepareDeliveryCommand) RequestedDate() time.Time {
	return c.requestedDate
}

func (c *PrepareDeliveryCommand) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}

func (c *PrepareDeliveryCommand) setRequestedDate(date time.Time) error {
	if date.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.requestedDate = date
	return nil
}
