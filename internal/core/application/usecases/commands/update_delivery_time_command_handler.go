package commands

import (
	"context"
)

// UpdateDeliveryTimeCommandHandler records the actual delivery timestamp.
// The status is overwritten to DELIVERED unconditionally; driver release
// stays with the status update path.
type UpdateDeliveryTimeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryTimeCommandHandler creates a handler for delivery time
// confirmation.
func NewUpdateDeliveryTimeCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryTimeCommandHandler {
	return UpdateDeliveryTimeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation.
func (h *UpdateDeliveryTimeCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryTimeCommand) error {
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

	aggregate.RecordDeliveryTime(cmd.DeliveryTime())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
