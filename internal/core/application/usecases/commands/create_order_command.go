package commands

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput carries one line of an order request.
type OrderItemInput struct {
	MenuItemID int
	Quantity   int
}

// CreateOrderCommand represents a customer placing an order with a
// restaurant. Amounts default to zero when absent; the total is always
// subtotal plus tips.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	restaurantID  int
	customerName  string
	customerPhone string
	address       *AddressInput
	subtotal      float64
	tips          float64
	items         []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order placement command. At least one
// line item is required; the address is optional for pickup orders.
func NewCreateOrderCommand(
	restaurantID int,
	customerName, customerPhone string,
	address *AddressInput,
	subtotal, tips float64,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setCustomerName(customerName),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customerPhone = customerPhone
	cmd.address = address
	cmd.subtotal = subtotal
	cmd.tips = tips
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) RestaurantID() int       { return c.restaurantID }
func (c CreateOrderCommand) CustomerName() string    { return c.customerName }
func (c CreateOrderCommand) CustomerPhone() string   { return c.customerPhone }
func (c CreateOrderCommand) Address() *AddressInput  { return c.address }
func (c CreateOrderCommand) Subtotal() float64       { return c.subtotal }
func (c CreateOrderCommand) Tips() float64           { return c.tips }
func (c CreateOrderCommand) Items() []OrderItemInput { return c.items }

func (c *CreateOrderCommand) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = append([]OrderItemInput(nil), items...)
	return nil
}
