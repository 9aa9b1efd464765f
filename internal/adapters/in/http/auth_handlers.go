package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"frontdash/internal/core/application/usecases/commands"
)

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAuthenticateOwnerCommand(req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	token, restaurantID, err := s.authenticateOwnerHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, RestaurantID: restaurantID})
}

// ChangePassword handles PUT /api/v1/auth/password. The username comes from
// the verified token, not the request body, so an owner can only change
// their own password.
func (s *Server) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	username, _ := c.Get("owner_username").(string)
	req.Username = username
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewChangePasswordCommand(req.Username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.changePasswordHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
