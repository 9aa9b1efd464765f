package commands

import (
	"context"
)

// AssignDriverCommandHandler dispatches a driver: the order moves from
// PENDING to OUT_FOR_DELIVERY and the driver flips to BUSY in the same
// transaction. Taking the driver is a conditional update on the AVAILABLE
// state, so double-booking a driver fails the whole operation instead of
// silently overwriting.
type AssignDriverCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver dispatch.
func NewAssignDriverCommandHandler(uowFactory FulfillmentUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if err = uow.DriverRepository().TakeIfAvailable(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err = aggregate.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
