package commands

import (
	"errors"
	"time"

	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrUpdateDeliveryTimeCommandIsNotConstructed = errors.New(
	"UpdateDeliveryTimeCommand must be created via NewUpdateDeliveryTimeCommand constructor",
)

// UpdateDeliveryTimeCommand represents recording when an order actually
// arrived. Setting the time forces the order into DELIVERED as a side
// effect, whatever its current status.
type UpdateDeliveryTimeCommand struct { //nolint:recvcheck //using for validation
	orderNumber  string
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryTimeCommand creates a delivery time command.
func NewUpdateDeliveryTimeCommand(orderNumber string, deliveryTime time.Time) (UpdateDeliveryTimeCommand, error) {
	cmd := UpdateDeliveryTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setDeliveryTime(deliveryTime),
	); err != nil {
		return UpdateDeliveryTimeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryTimeCommandIsNotConstructed)
}

// OrderNumber returns the order being confirmed.
func (c UpdateDeliveryTimeCommand) OrderNumber() string {
	return c.orderNumber
}

// DeliveryTime returns the recorded arrival timestamp.
func (c UpdateDeliveryTimeCommand) DeliveryTime() time.Time {
	return c.deliveryTime
}

func (c *UpdateDeliveryTimeCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateDeliveryTimeCommand) setDeliveryTime(deliveryTime time.Time) error {
	if deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTime")
	}
	c.deliveryTime = deliveryTime
	return nil
}
