// Package http exposes the marketplace over a JSON REST API. Handlers bind
// and validate request bodies, construct commands and queries, and map
// application errors to statuses; no business logic lives here.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"frontdash/internal/adapters/out/auth"
	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerRestaurantHandler   commands.RegisterRestaurantCommandHandler
	approveRegistrationHandler  commands.ApproveRegistrationCommandHandler
	rejectRegistrationHandler   commands.RejectRegistrationCommandHandler
	requestWithdrawalHandler    commands.RequestWithdrawalCommandHandler
	approveWithdrawalHandler    commands.ApproveWithdrawalCommandHandler
	rejectWithdrawalHandler     commands.RejectWithdrawalCommandHandler
	upsertOperatingHoursHandler commands.UpsertOperatingHoursCommandHandler
	updateMenuItemHandler       commands.UpdateMenuItemCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	assignDriverHandler         commands.AssignDriverCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	updateDeliveryTimeHandler   commands.UpdateDeliveryTimeCommandHandler
	createDriverHandler         commands.CreateDriverCommandHandler
	deleteDriverHandler         commands.DeleteDriverCommandHandler
	authenticateOwnerHandler    commands.AuthenticateOwnerCommandHandler
	changePasswordHandler       commands.ChangePasswordCommandHandler

	getRestaurantsByStatusHandler queries.GetRestaurantsByStatusQueryHandler
	getOrdersByRestaurantHandler  queries.GetOrdersByRestaurantQueryHandler
	getOrdersByStatusHandler      queries.GetOrdersByStatusQueryHandler
	getOrderDetailsHandler        queries.GetOrderDetailsQueryHandler
	getAllDriversHandler          queries.GetAllDriversQueryHandler
}

// Handlers bundles every command and query handler the server exposes.
type Handlers struct {
	RegisterRestaurant   commands.RegisterRestaurantCommandHandler
	ApproveRegistration  commands.ApproveRegistrationCommandHandler
	RejectRegistration   commands.RejectRegistrationCommandHandler
	RequestWithdrawal    commands.RequestWithdrawalCommandHandler
	ApproveWithdrawal    commands.ApproveWithdrawalCommandHandler
	RejectWithdrawal     commands.RejectWithdrawalCommandHandler
	UpsertOperatingHours commands.UpsertOperatingHoursCommandHandler
	UpdateMenuItem       commands.UpdateMenuItemCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	AssignDriver         commands.AssignDriverCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	UpdateDeliveryTime   commands.UpdateDeliveryTimeCommandHandler
	CreateDriver         commands.CreateDriverCommandHandler
	DeleteDriver         commands.DeleteDriverCommandHandler
	AuthenticateOwner    commands.AuthenticateOwnerCommandHandler
	ChangePassword       commands.ChangePasswordCommandHandler

	GetRestaurantsByStatus queries.GetRestaurantsByStatusQueryHandler
	GetOrdersByRestaurant  queries.GetOrdersByRestaurantQueryHandler
	GetOrdersByStatus      queries.GetOrdersByStatusQueryHandler
	GetOrderDetails        queries.GetOrderDetailsQueryHandler
	GetAllDrivers          queries.GetAllDriversQueryHandler
}

// NewServer creates an HTTP server delegating to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		registerRestaurantHandler:     handlers.RegisterRestaurant,
		approveRegistrationHandler:    handlers.ApproveRegistration,
		rejectRegistrationHandler:     handlers.RejectRegistration,
		requestWithdrawalHandler:      handlers.RequestWithdrawal,
		approveWithdrawalHandler:      handlers.ApproveWithdrawal,
		rejectWithdrawalHandler:       handlers.RejectWithdrawal,
		upsertOperatingHoursHandler:   handlers.UpsertOperatingHours,
		updateMenuItemHandler:         handlers.UpdateMenuItem,
		createOrderHandler:            handlers.CreateOrder,
		assignDriverHandler:           handlers.AssignDriver,
		updateOrderStatusHandler:      handlers.UpdateOrderStatus,
		updateDeliveryTimeHandler:     handlers.UpdateDeliveryTime,
		createDriverHandler:           handlers.CreateDriver,
		deleteDriverHandler:           handlers.DeleteDriver,
		authenticateOwnerHandler:      handlers.AuthenticateOwner,
		changePasswordHandler:         handlers.ChangePassword,
		getRestaurantsByStatusHandler: handlers.GetRestaurantsByStatus,
		getOrdersByRestaurantHandler:  handlers.GetOrdersByRestaurant,
		getOrdersByStatusHandler:      handlers.GetOrdersByStatus,
		getOrderDetailsHandler:        handlers.GetOrderDetails,
		getAllDriversHandler:          handlers.GetAllDrivers,
	}
}

// RegisterRoutes wires middleware and all API routes onto the echo
// instance. Owner-facing routes sit behind the JWT middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, logger *zap.Logger, issuer *auth.JWTTokenIssuer) {
	e.Validator = NewRequestValidator()
	e.Use(RequestIDMiddleware)
	e.Use(RequestLoggingMiddleware(logger))
	e.Use(MetricsMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/restaurants", s.RegisterRestaurant)
	api.GET("/restaurants", s.GetRestaurantsByStatus)
	api.POST("/restaurants/:id/approve", s.ApproveRegistration)
	api.POST("/restaurants/:id/reject", s.RejectRegistration)
	api.POST("/restaurants/:id/withdrawal", s.RequestWithdrawal)
	api.POST("/restaurants/:id/withdrawal/approve", s.ApproveWithdrawal)
	api.POST("/restaurants/:id/withdrawal/reject", s.RejectWithdrawal)
	api.GET("/restaurants/:id/orders", s.GetOrdersByRestaurant)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:number", s.GetOrderDetails)
	api.POST("/orders/:number/driver", s.AssignDriver)
	api.PUT("/orders/:number/status", s.UpdateOrderStatus)
	api.PUT("/orders/:number/delivery-time", s.UpdateDeliveryTime)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetAllDrivers)
	api.DELETE("/drivers/:id", s.DeleteDriver)

	api.POST("/auth/login", s.Login)

	owner := api.Group("", OwnerAuthMiddleware(issuer))
	owner.PUT("/auth/password", s.ChangePassword)
	owner.PUT("/restaurants/:id/hours", s.UpsertOperatingHours)
	owner.PUT("/menu/items/:itemId", s.UpdateMenuItem)
}
