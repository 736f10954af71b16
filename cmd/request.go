package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"preparedelivery/internal/core/application/usecases/commands"
	"preparedelivery/internal/core/domain/model/kernel"
	"preparedelivery/internal/core/domain/model/order"
	"preparedelivery/internal/pkg/errs"
)

const dateLayout = time.DateOnly

// DeliveryRequest is the raw, unvalidated form of a delivery request as read
// from the command line.
type DeliveryRequest struct {
	OrderID string
	Weights string // comma separated kilograms, e.g. "20,40"
	City    string
	Street  string
	House   string
	Date    string // YYYY-MM-DD or RFC 3339; empty means the day after now
}

// BuildPrepareDeliveryCommand converts a DeliveryRequest into a command.
// A blank OrderID gets a freshly generated one.
func BuildPrepareDeliveryCommand(req DeliveryRequest, now time.Time) (commands.PrepareDeliveryCommand, error) {
	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		orderID = order.NewID()
	}

	products, err := parseProducts(req.Weights)
	if err != nil {
		return commands.PrepareDeliveryCommand{}, err
	}

	o, err := order.NewOrderFromProducts(orderID, products)
	if err != nil {
		return commands.PrepareDeliveryCommand{}, err
	}

	date, err := parseDate(req.Date, now)
	if err != nil {
		return commands.PrepareDeliveryCommand{}, err
	}

	address := kernel.NewAddress(req.City, req.Street, req.House)

	return commands.NewPrepareDeliveryCommand(o, address, date)
}

func parseProducts(weights string) ([]order.Product, error) {
	if strings.TrimSpace(weights) == "" {
		return nil, errs.NewValueIsRequiredError("weights")
	}

	var (
		products []order.Product
		errList  []error
	)
	for i, raw := range strings.Split(weights, ",") {
		kg, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("weights[%d]", i), err))
			continue
		}

		w, err := kernel.NewWeight(kg)
		if err != nil {
			errList = append(errList, fmt.Errorf("weights[%d]: %w", i, err))
			continue
		}

		p, err := order.NewProduct(fmt.Sprintf("product-%d", i+1), w)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		products = append(products, p)
	}

	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	return products, nil
}

func parseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now.AddDate(0, 0, 1), nil
	}

	if t, err := time.ParseInLocation(dateLayout, value, now.Location()); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return t, nil
}
