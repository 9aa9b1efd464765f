package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/application/usecases/queries"
	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/pkg/errs"
)

// RegisterRestaurant handles POST /api/v1/restaurants.
func (s *Server) RegisterRestaurant(c echo.Context) error {
	var req RegisterRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	menu := make([]commands.MenuCategoryInput, 0, len(req.Menu))
	for _, category := range req.Menu {
		items := make([]commands.MenuItemInput, 0, len(category.Items))
		for _, item := range category.Items {
			items = append(items, commands.MenuItemInput{
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				Available:   item.Available,
			})
		}
		menu = append(menu, commands.MenuCategoryInput{Name: category.Name, Items: items})
	}

	hours := make([]commands.HourInput, 0, len(req.Hours))
	for _, hour := range req.Hours {
		hours = append(hours, commands.HourInput{
			WeekDay:   hour.WeekDay,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
		})
	}

	cmd, err := commands.NewRegisterRestaurantCommand(
		req.Name, req.CuisineType, req.PictureURL, req.PhoneNumber, req.ContactName, req.Email,
		commands.AddressInput{
			Street:   req.Address.Street,
			City:     req.Address.City,
			State:    req.Address.State,
			ZipCode:  req.Address.ZipCode,
			Building: req.Address.Building,
			Unit:     req.Address.Unit,
		},
		hours,
		menu,
	)
	if err != nil {
		return writeError(c, err)
	}

	id, err := s.registerRestaurantHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetRestaurantsByStatus handles GET /api/v1/restaurants?status=NEW_REG.
func (s *Server) GetRestaurantsByStatus(c echo.Context) error {
	query, err := queries.NewGetRestaurantsByStatusQuery(restaurant.Status(c.QueryParam("status")))
	if err != nil {
		return writeError(c, err)
	}

	restaurants, err := s.getRestaurantsByStatusHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, restaurants)
}

// ApproveRegistration handles POST /api/v1/restaurants/:id/approve.
func (s *Server) ApproveRegistration(c echo.Context) error {
	id, err := restaurantIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewApproveRegistrationCommand(id)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.approveRegistrationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RejectRegistration handles POST /api/v1/restaurants/:id/reject.
func (s *Server) RejectRegistration(c echo.Context) error {
	id, err := restaurantIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRejectRegistrationCommand(id)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.rejectRegistrationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RequestWithdrawal handles POST /api/v1/restaurants/:id/withdrawal.
func (s *Server) RequestWithdrawal(c echo.Context) error {
	id, err := restaurantIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	var req RequestWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRequestWithdrawalCommand(id, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.requestWithdrawalHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ApproveWithdrawal handles POST /api/v1/restaurants/:id/withdrawal/approve.
func (s *Server) ApproveWithdrawal(c echo.Context) error {
	id, err := restaurantIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewApproveWithdrawalCommand(id)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.approveWithdrawalHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RejectWithdrawal handles POST /api/v1/restaurants/:id/withdrawal/reject.
func (s *Server) RejectWithdrawal(c echo.Context) error {
	id, err := restaurantIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRejectWithdrawalCommand(id)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.rejectWithdrawalHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpsertOperatingHours handles PUT /api/v1/restaurants/:id/hours.
func (s *Server) UpsertOperatingHours(c echo.Context) error {
	id, err := restaurantIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	// An owner token only grants access to its own restaurant.
	ownerID, ok := c.Get("owner_restaurant_id").(int)
	if !ok || ownerID != id {
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "restaurant does not belong to the authenticated owner",
		})
	}

	var req UpsertHoursRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hours := make([]commands.HourInput, 0, len(req.Hours))
	for _, hour := range req.Hours {
		hours = append(hours, commands.HourInput{
			WeekDay:   hour.WeekDay,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
		})
	}

	cmd, err := commands.NewUpsertOperatingHoursCommand(id, hours)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.upsertOperatingHoursHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateMenuItem handles PUT /api/v1/menu/items/:itemId.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("menuItemId", err))
	}

	var req UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemCommand(itemID, req.Name, req.Description, req.Price, req.Available)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateMenuItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func restaurantIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}
	return id, nil
}
