package commands

import (
	"context"
	"time"

	"frontdash/internal/core/domain/model/address"
	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places an order: allocates the next order
// number, persists the delivery address when supplied, and stores the order
// with its line items in PENDING status, all in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order placement and returns the assigned order
// number, e.g. "FD0001".
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	subtotal, err := kernel.NewMoneyFromFloat(cmd.Subtotal())
	if err != nil {
		return "", err
	}
	tips, err := kernel.NewMoneyFromFloat(cmd.Tips())
	if err != nil {
		return "", err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, in := range cmd.Items() {
		item, err := order.NewItem(in.MenuItemID, in.Quantity)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return "", err
	}

	var addressID *int
	if in := cmd.Address(); in != nil {
		deliveryAddress, err := address.NewAddress(
			in.Street, in.City, in.State, in.ZipCode, in.Building, in.Unit)
		if err != nil {
			return "", err
		}
		if err = uow.AddressRepository().Add(ctx, deliveryAddress); err != nil {
			return "", err
		}
		id := deliveryAddress.ID()
		addressID = &id
	}

	aggregate, err := order.NewOrder(
		number, cmd.RestaurantID(), cmd.CustomerName(), cmd.CustomerPhone(),
		addressID, subtotal, tips, h.now(), items)
	if err != nil {
		return "", err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return number, nil
}
