package commands

import (
	"errors"

	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents closing out an OUT_FOR_DELIVERY
// order as DELIVERED or NOT_DELIVERED.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	newStatus   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command.
func NewUpdateOrderStatusCommand(orderNumber string, newStatus order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the order being closed out.
func (c UpdateOrderStatusCommand) OrderNumber() string {
	return c.orderNumber
}

// NewStatus returns the requested terminal status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateOrderStatusCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
