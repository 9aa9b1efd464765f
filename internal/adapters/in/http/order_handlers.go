package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/application/usecases/queries"
	"frontdash/internal/core/domain/model/order"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	var address *commands.AddressInput
	if req.Address != nil {
		address = &commands.AddressInput{
			Street:   req.Address.Street,
			City:     req.Address.City,
			State:    req.Address.State,
			ZipCode:  req.Address.ZipCode,
			Building: req.Address.Building,
			Unit:     req.Address.Unit,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.RestaurantID, req.CustomerName, req.CustomerPhone,
		address, req.Subtotal, req.Tips, items,
	)
	if err != nil {
		return writeError(c, err)
	}

	number, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreatedResponse{Number: number})
}

// GetOrdersByStatus handles GET /api/v1/orders?status=PENDING&driver=ANY.
func (s *Server) GetOrdersByStatus(c echo.Context) error {
	driverFilter := queries.AnyDriver
	if param := c.QueryParam("driver"); param != "" {
		driverFilter = queries.DriverFilter(param)
	}

	query, err := queries.NewGetOrdersByStatusQuery(order.Status(c.QueryParam("status")), driverFilter)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrdersByRestaurant handles GET /api/v1/restaurants/:id/orders.
func (s *Server) GetOrdersByRestaurant(c echo.Context) error {
	id, err := restaurantIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrdersByRestaurantQuery(id)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getOrdersByRestaurantHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrderDetails handles GET /api/v1/orders/:number.
func (s *Server) GetOrderDetails(c echo.Context) error {
	query, err := queries.NewGetOrderDetailsQuery(c.Param("number"))
	if err != nil {
		return writeError(c, err)
	}

	details, err := s.getOrderDetailsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, details)
}

// AssignDriver handles POST /api/v1/orders/:number/driver.
func (s *Server) AssignDriver(c echo.Context) error {
	var req AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignDriverCommand(c.Param("number"), req.DriverID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.assignDriverHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:number/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(c.Param("number"), order.Status(req.Status))
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateDeliveryTime handles PUT /api/v1/orders/:number/delivery-time.
func (s *Server) UpdateDeliveryTime(c echo.Context) error {
	var req UpdateDeliveryTimeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryTimeCommand(c.Param("number"), req.DeliveryTime)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateDeliveryTimeHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
