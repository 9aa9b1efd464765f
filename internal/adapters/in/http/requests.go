package http

import "time"

// AddressRequest is the street address payload of registrations and orders.
type AddressRequest struct {
	Street   string `json:"street" validate:"required"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Building string `json:"building"`
	Unit     string `json:"unit"`
}

// HourRequest is one weekday's operating window. Blank times mean closed;
// registration skips rows with a blank weekday entirely.
type HourRequest struct {
	WeekDay   string `json:"week_day"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// MenuItemRequest is one dish of the initial menu.
type MenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Available   bool    `json:"available"`
}

// MenuCategoryRequest is one category of the initial menu.
type MenuCategoryRequest struct {
	Name  string            `json:"name" validate:"required"`
	Items []MenuItemRequest `json:"items" validate:"dive"`
}

// RegisterRestaurantRequest is the body of POST /restaurants.
type RegisterRestaurantRequest struct {
	Name        string                `json:"name" validate:"required"`
	CuisineType string                `json:"cuisine_type"`
	PictureURL  string                `json:"picture_url"`
	PhoneNumber string                `json:"phone_number"`
	ContactName string                `json:"contact_name" validate:"required"`
	Email       string                `json:"email" validate:"required,email"`
	Address     AddressRequest        `json:"address" validate:"required"`
	Hours       []HourRequest         `json:"hours" validate:"dive"`
	Menu        []MenuCategoryRequest `json:"menu" validate:"dive"`
}

// RequestWithdrawalRequest is the body of POST /restaurants/:id/withdrawal.
type RequestWithdrawalRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// UpsertHoursRequest is the body of PUT /restaurants/:id/hours.
type UpsertHoursRequest struct {
	Hours []HourRequest `json:"hours" validate:"required,min=1,dive"`
}

// UpdateMenuItemRequest is the body of PUT /menu/items/:itemId.
type UpdateMenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Available   bool    `json:"available"`
}

// OrderItemRequest is one line of an order.
type OrderItemRequest struct {
	MenuItemID int `json:"menu_item_id" validate:"required,gt=0"`
	Quantity   int `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	RestaurantID  int                `json:"restaurant_id" validate:"required,gt=0"`
	CustomerName  string             `json:"customer_name" validate:"required"`
	CustomerPhone string             `json:"customer_phone"`
	Address       *AddressRequest    `json:"address"`
	Subtotal      float64            `json:"subtotal" validate:"gte=0"`
	Tips          float64            `json:"tips" validate:"gte=0"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// AssignDriverRequest is the body of POST /orders/:number/driver.
type AssignDriverRequest struct {
	DriverID int `json:"driver_id" validate:"required,gt=0"`
}

// UpdateOrderStatusRequest is the body of PUT /orders/:number/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateDeliveryTimeRequest is the body of PUT /orders/:number/delivery-time.
type UpdateDeliveryTimeRequest struct {
	DeliveryTime time.Time `json:"delivery_time" validate:"required"`
}

// CreateDriverRequest is the body of POST /drivers.
type CreateDriverRequest struct {
	Name string `json:"name" validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the body of PUT /auth/password.
type ChangePasswordRequest struct {
	Username        string `json:"username" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// CreatedResponse carries the generated id of a new resource.
type CreatedResponse struct {
	ID int `json:"id"`
}

// OrderCreatedResponse carries the generated number of a new order.
type OrderCreatedResponse struct {
	Number string `json:"number"`
}

// LoginResponse carries the access token of an authenticated owner.
type LoginResponse struct {
	Token        string `json:"token"`
	RestaurantID int    `json:"restaurant_id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
