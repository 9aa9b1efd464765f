package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Item is one line of an order: a menu item and the ordered quantity.
// Items are created together with the order and immutable afterwards; the
// (order number, menu item) pair is the composite key in storage.
type Item struct {
	menuItemID int
	quantity   int
}

// NewItem creates a validated order line.
func NewItem(menuItemID, quantity int) (Item, error) {
	if menuItemID <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("menuItemId",
			fmt.Errorf("%d is not a positive id", menuItemID))
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Item{menuItemID: menuItemID, quantity: quantity}, nil
}

func (i Item) MenuItemID() int { return i.menuItemID }
func (i Item) Quantity() int   { return i.quantity }

// Order is the aggregate root for the fulfillment lifecycle. Its identity is
// a generated order number such as "FD0001".
//
// Invariants:
//   - Total is always subtotal plus tips
//   - The driver reference is set exactly when the status is OUT_FOR_DELIVERY
//     or terminal
//   - Line items never change after creation
type Order struct {
	number        string
	restaurantID  int
	customerName  string
	customerPhone string
	addressID     *int
	driverID      *int
	subtotal      kernel.Money
	tips          kernel.Money
	total         kernel.Money
	status        Status
	orderTime     time.Time
	deliveryTime  *time.Time
	items         []Item

	guard guard.ConstructorGuard
}

// NewOrder creates an order in PENDING status. The total is computed from
// subtotal and tips; callers pass ZeroMoney for absent amounts.
func NewOrder(
	number string,
	restaurantID int,
	customerName, customerPhone string,
	addressID *int,
	subtotal, tips kernel.Money,
	orderTime time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setRestaurantID(restaurantID),
		o.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	o.customerPhone = customerPhone
	o.addressID = addressID
	o.subtotal = subtotal
	o.tips = tips
	o.total = subtotal.Add(tips)
	o.orderTime = orderTime
	o.items = append([]Item(nil), items...)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, enforcing the
// status/driver invariant on the stored data.
func RestoreOrder(
	number string,
	restaurantID int,
	customerName, customerPhone string,
	addressID, driverID *int,
	subtotal, tips kernel.Money,
	status Status,
	orderTime time.Time,
	deliveryTime *time.Time,
	items []Item,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}

	o, err := NewOrder(number, restaurantID, customerName, customerPhone, addressID, subtotal, tips, orderTime, items)
	if err != nil {
		return nil, err
	}
	o.status = status
	o.driverID = driverID
	o.deliveryTime = deliveryTime
	return o, nil
}

// Validate ensures the instance came from a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by order number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

// Number returns the generated order number, e.g. "FD0001".
func (o *Order) Number() string { return o.number }

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() int { return o.restaurantID }

// CustomerName returns the name taken at checkout.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerPhone returns the phone taken at checkout, empty when absent.
func (o *Order) CustomerPhone() string { return o.customerPhone }

// AddressID returns the delivery address reference, nil when absent.
func (o *Order) AddressID() *int { return o.addressID }

// DriverID returns the assigned driver, nil until assignment.
func (o *Order) DriverID() *int { return o.driverID }

// Subtotal returns the item total before tips.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// Tips returns the tip amount.
func (o *Order) Tips() kernel.Money { return o.tips }

// Total returns subtotal plus tips.
func (o *Order) Total() kernel.Money { return o.total }

// Status returns the current fulfillment status.
func (o *Order) Status() Status { return o.status }

// OrderTime returns when the order was placed.
func (o *Order) OrderTime() time.Time { return o.orderTime }

// DeliveryTime returns the recorded delivery timestamp, nil until delivery.
func (o *Order) DeliveryTime() *time.Time { return o.deliveryTime }

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// AssignDriver hands the order to a driver: the status moves to
// OUT_FOR_DELIVERY and the driver reference is recorded. Only PENDING
// orders can be assigned.
func (o *Order) AssignDriver(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%d is not a positive id", driverID))
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = next
	o.driverID = &driverID
	return nil
}

// Complete moves an OUT_FOR_DELIVERY order into DELIVERED or NOT_DELIVERED.
// The caller releases the assigned driver in the same transaction.
func (o *Order) Complete(outcome Status) error {
	next, err := o.status.Complete(outcome)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// RecordDeliveryTime stores the actual delivery timestamp and forces the
// status to DELIVERED regardless of the current status. The unconditional
// status overwrite mirrors how delivery confirmation has always behaved;
// see updateDeliveryTime callers before tightening it.
func (o *Order) RecordDeliveryTime(deliveryTime time.Time) {
	o.deliveryTime = &deliveryTime
	o.status = StatusDelivered
}

func (o *Order) setNumber(number string) error {
	if err := ValidateNumber(number); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}
