package commands

import (
	"context"

	"frontdash/internal/core/domain/model/kernel"
)

// UpdateMenuItemCommandHandler applies an owner's edit to one menu item.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item edits.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, applies the changes, and saves it back.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	price, err := kernel.NewMoneyFromFloat(cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuRepository().GetItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err = item.Rename(cmd.Name()); err != nil {
		return err
	}
	item.SetDescription(cmd.Description())
	item.SetPrice(price)
	if cmd.Available() {
		item.MarkAvailable()
	} else {
		item.MarkUnavailable()
	}

	if err = uow.MenuRepository().UpdateItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
