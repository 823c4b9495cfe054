package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-system/internal/core/ports"
)

// EquipmentHandler handles HTTP requests for equipment operations.
type EquipmentHandler struct {
	service ports.EquipmentService
}

func NewEquipmentHandler(service ports.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

type createEquipmentRequest struct {
	Name             string `json:"name"     validate:"required"`
	Category         string `json:"category" validate:"required"`
	SerialNumber     string `json:"serial_number"`
	Department       string `json:"department"`
	Company          string `json:"company"  validate:"required"`
	AssignedEmployee string `json:"assigned_employee"`
	TechnicianID     string `json:"technician_id"`
	TeamID           string `json:"team_id"`
	Location         string `json:"location"`
	WorkCenter       string `json:"work_center"`
	Description      string `json:"description"`
}

// Create handles POST /v1/equipment (manager/admin, enforced by the router).
//
// @Summary      Register equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEquipmentRequest  true  "Equipment details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Router       /v1/equipment [post]
func (h *EquipmentHandler) Create(c echo.Context) error {
	var req createEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	eq, err := h.service.Create(c.Request().Context(), ports.CreateEquipmentInput{
		Name:             req.Name,
		Category:         req.Category,
		SerialNumber:     req.SerialNumber,
		Department:       req.Department,
		Company:          req.Company,
		AssignedEmployee: req.AssignedEmployee,
		TechnicianID:     req.TechnicianID,
		TeamID:           req.TeamID,
		Location:         req.Location,
		WorkCenter:       req.WorkCenter,
		Description:      req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, eq)
}

// List handles GET /v1/equipment.
//
// @Summary      List equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  map[string]any
// @Router       /v1/equipment [get]
func (h *EquipmentHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /v1/equipment/:id.
//
// @Summary      Get equipment by id
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Equipment id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  errorResponse
// @Router       /v1/equipment/{id} [get]
func (h *EquipmentHandler) Get(c echo.Context) error {
	eq, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eq)
}

// Scrap handles POST /v1/equipment/:id/scrap — retires a unit directly,
// outside the request state machine.
//
// @Summary      Mark equipment as scrapped
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Equipment id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/equipment/{id}/scrap [post]
func (h *EquipmentHandler) Scrap(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	eq, err := h.service.Scrap(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eq)
}
