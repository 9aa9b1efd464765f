package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler closes out an order. Reaching a terminal
// status releases the assigned driver back to AVAILABLE in the same
// transaction; this is the only path that frees a driver as part of
// fulfillment.
type UpdateOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// updates.
func NewUpdateOrderStatusCommandHandler(uowFactory FulfillmentUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(cmd.NewStatus()); err != nil {
		return err
	}

	if driverID := aggregate.DriverID(); driverID != nil {
		if err = uow.DriverRepository().Release(ctx, *driverID); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
