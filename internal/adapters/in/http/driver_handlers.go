package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/application/usecases/queries"
	"frontdash/internal/pkg/errs"
)

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(c echo.Context) error {
	var req CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDriverCommand(req.Name)
	if err != nil {
		return writeError(c, err)
	}

	id, err := s.createDriverHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetAllDrivers handles GET /api/v1/drivers.
func (s *Server) GetAllDrivers(c echo.Context) error {
	drivers, err := s.getAllDriversHandler.Handle(c.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, drivers)
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	cmd, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteDriverHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
