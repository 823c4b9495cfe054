package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-system/internal/core/ports"
)

// RequestHandler handles HTTP requests for maintenance request operations.
// All authorization decisions live in the service and the authz rule engine;
// the handler only translates between HTTP and the service contract.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create handles POST /v1/requests.
//
// @Summary      Create a maintenance request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  requestResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), actor, toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toViewResponse(view))
}

// List handles GET /v1/requests. Technicians only see requests assigned to
// them or created by them; the service scopes the query.
//
// @Summary      List maintenance requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  listRequestsResponse
// @Router       /v1/requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), actor, c.QueryParam("status"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(items))
}

// Get handles GET /v1/requests/:id.
//
// @Summary      Get a maintenance request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  requestResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/requests/{id} [get]
func (h *RequestHandler) Get(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetByID(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toViewResponse(view))
}

// Update handles PUT /v1/requests/:id. The patch is applied all-or-nothing:
// a single disallowed sub-change rejects the whole mutation.
//
// @Summary      Update a maintenance request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Request id"
// @Param        body  body      updateRequestRequest  true  "Partial update"
// @Success      200   {object}  requestResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/requests/{id} [put]
func (h *RequestHandler) Update(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toViewResponse(view))
}

// Delete handles DELETE /v1/requests/:id.
//
// @Summary      Delete a maintenance request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/requests/{id} [delete]
func (h *RequestHandler) Delete(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteResponse{Message: "Maintenance request removed"})
}

// CheckOverdue handles POST /v1/requests/check-overdue.
//
// @Summary      Sweep overdue requests and notify technicians
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overdueResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/requests/check-overdue [post]
func (h *RequestHandler) CheckOverdue(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	result, err := h.service.CheckOverdue(c.Request().Context(), actor, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, overdueResponse{
		Checked:           result.Checked,
		NotificationsSent: result.NotificationsSent,
		Message:           overdueMessage(result),
	})
}
