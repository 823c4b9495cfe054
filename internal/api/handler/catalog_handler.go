package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-system/internal/core/domain"
	"github.com/gearguard/maintenance-system/internal/core/ports"
)

// CatalogHandler serves the small reference catalogs: maintenance teams and
// work centers. These are plain CRUD with route-level RBAC, no per-entity
// rules.
type CatalogHandler struct {
	teams       ports.TeamRepository
	workCenters ports.WorkCenterRepository
}

func NewCatalogHandler(teams ports.TeamRepository, workCenters ports.WorkCenterRepository) *CatalogHandler {
	return &CatalogHandler{teams: teams, workCenters: workCenters}
}

type createTeamRequest struct {
	Name    string   `json:"name" validate:"required"`
	Members []string `json:"members"`
}

type createWorkCenterRequest struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code"`
	Location string `json:"location"`
}

// CreateTeam handles POST /v1/teams.
func (h *CatalogHandler) CreateTeam(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	team, err := h.teams.Create(c.Request().Context(), &domain.MaintenanceTeam{
		Name:      req.Name,
		Members:   req.Members,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /v1/teams.
func (h *CatalogHandler) ListTeams(c echo.Context) error {
	teams, err := h.teams.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

// CreateWorkCenter handles POST /v1/work-centers.
func (h *CatalogHandler) CreateWorkCenter(c echo.Context) error {
	var req createWorkCenterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	wc, err := h.workCenters.Create(c.Request().Context(), &domain.WorkCenter{
		Name:      req.Name,
		Code:      req.Code,
		Location:  req.Location,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, wc)
}

// ListWorkCenters handles GET /v1/work-centers.
func (h *CatalogHandler) ListWorkCenters(c echo.Context) error {
	centers, err := h.workCenters.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, centers)
}
