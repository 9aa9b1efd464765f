package commands

import (
	"errors"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
	"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
)

// AddressInput carries the street address supplied with a registration or
// an order.
type AddressInput struct {
	Street   string
	City     string
	State    string
	ZipCode  string
	Building string
	Unit     string
}

// HourInput carries one weekday's operating window. Blank open and close
// times mean the restaurant is closed that day.
type HourInput struct {
	WeekDay   string
	OpenTime  string
	CloseTime string
}

// MenuItemInput carries one dish of the initial menu.
type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Available   bool
}

// MenuCategoryInput carries one category of the initial menu with its items.
type MenuCategoryInput struct {
	Name  string
	Items []MenuItemInput
}

// RegisterRestaurantCommand represents a restaurant's application to join
// the platform. The restaurant enters the NEW_REG status and waits for an
// administrator's decision; no login credentials exist until approval.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	name        string
	cuisineType string
	pictureURL  string
	phoneNumber string
	contactName string
	email       string
	address     AddressInput
	hours       []HourInput
	menu        []MenuCategoryInput

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates a registration command. Name, contact
// name, email and the address are required; hours and menu may be empty and
// filled in later.
func NewRegisterRestaurantCommand(
	name, cuisineType, pictureURL, phoneNumber, contactName, email string,
	address AddressInput,
	hours []HourInput,
	menu []MenuCategoryInput,
) (RegisterRestaurantCommand, error) {
	cmd := RegisterRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setContactName(contactName),
		cmd.setEmail(email),
		cmd.setAddress(address),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	cmd.cuisineType = cuisineType
	cmd.pictureURL = pictureURL
	cmd.phoneNumber = phoneNumber
	cmd.hours = append([]HourInput(nil), hours...)
	cmd.menu = append([]MenuCategoryInput(nil), menu...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

func (c RegisterRestaurantCommand) Name() string              { return c.name }
func (c RegisterRestaurantCommand) CuisineType() string       { return c.cuisineType }
func (c RegisterRestaurantCommand) PictureURL() string        { return c.pictureURL }
func (c RegisterRestaurantCommand) PhoneNumber() string       { return c.phoneNumber }
func (c RegisterRestaurantCommand) ContactName() string       { return c.contactName }
func (c RegisterRestaurantCommand) Email() string             { return c.email }
func (c RegisterRestaurantCommand) Address() AddressInput     { return c.address }
func (c RegisterRestaurantCommand) Hours() []HourInput        { return c.hours }
func (c RegisterRestaurantCommand) Menu() []MenuCategoryInput { return c.menu }

func (c *RegisterRestaurantCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterRestaurantCommand) setContactName(contactName string) error {
	if strings.TrimSpace(contactName) == "" {
		return errs.NewValueIsRequiredError("contactName")
	}
	c.contactName = contactName
	return nil
}

func (c *RegisterRestaurantCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterRestaurantCommand) setAddress(address AddressInput) error {
	if strings.TrimSpace(address.Street) == "" {
		return errs.NewValueIsRequiredError("address.street")
	}
	c.address = address
	return nil
}
