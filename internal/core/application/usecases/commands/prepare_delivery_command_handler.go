package commands

import (
	"context"
	"fmt"
	"log/slog"

	"preparedelivery/internal/core/domain/model/eligibility"
	"preparedelivery/internal/core/domain/services"
	"preparedelivery/internal/core/ports"
)

// PrepareDeliveryCommandHandler runs delivery eligibility for a PrepareDeliveryCommand.
// It supplies the evaluator with the current time and the vehicle catalog, and
// logs the outcome.
//
// Example:
//
//	handler := NewPrepareDeliveryCommandHandler(clock, catalogProvider, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery preparation failed: %w", err)
//	}
//	if reason, rejected := result.Reason(); rejected {
//	    // Surface the reason to the customer
//	}
type PrepareDeliveryCommandHandler struct {
	clock     ports.Clock
	catalogs  ports.VehicleCatalogProvider
	evaluator services.DeliveryEligibilityEvaluator
	logger    *slog.Logger
}

// NewPrepareDeliveryCommandHandler creates a handler for delivery preparation.
func NewPrepareDeliveryCommandHandler(
	clock ports.Clock,
	catalogs ports.VehicleCatalogProvider,
	logger *slog.Logger,
) PrepareDeliveryCommandHandler {
	return PrepareDeliveryCommandHandler{
		clock:     clock,
		catalogs:  catalogs,
		evaluator: services.NewDeliveryEligibilityEvaluator(),
		logger:    logger.With("component", "prepare_delivery_handler"),
	}
}

// Handle evaluates the command.
// The returned error is reserved for an invalid command or an unavailable vehicle
// catalog; a rejected delivery is a successful call with a rejected Result.
func (h *PrepareDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd PrepareDeliveryCommand,
) (eligibility.Result, error) {
	if err := cmd.Validate(); err != nil {
		return eligibility.Result{}, err
	}

	catalog, err := h.catalogs.Catalog(ctx)
	if err != nil {
		return eligibility.Result{}, fmt.Errorf("load vehicle catalog: %w", err)
	}

	now := h.clock.Now()
	result, err := h.evaluator.EvaluateOrder(cmd.Order(), cmd.Address(), cmd.RequestedDate(), now, catalog)
	if err != nil {
		return eligibility.Result{}, err
	}

	h.logResult(ctx, cmd, result)
	return result, nil
}

func (h *PrepareDeliveryCommandHandler) logResult(
	ctx context.Context,
	cmd PrepareDeliveryCommand,
	result eligibility.Result,
) {
	if a, ok := result.Assignment(); ok {
		h.logger.InfoContext(ctx, "Delivery prepared",
			"order_id", a.OrderID(),
			"vehicle", a.Vehicle().Name(),
			"weight_kg", a.Weight().Kilograms(),
		)
		return
	}

	reason, _ := result.Reason()
	attrs := []any{
		"order_id", cmd.Order().ID(),
		"reason", reason.String(),
		"requested_date", cmd.RequestedDate(),
	}
	if reason == eligibility.IncompleteAddress {
		attrs = append(attrs, "missing_fields", cmd.Address().MissingFields())
	}
	h.logger.WarnContext(ctx, "Delivery rejected", attrs...)
}
