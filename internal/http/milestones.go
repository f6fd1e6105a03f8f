package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
)

func (h *Handler) CreateMilestone(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateMilestoneRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	milestone, err := h.milestones.Create(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, milestone)
}

// ListMilestones returns milestones across every project the caller
// belongs to.
func (h *Handler) ListMilestones(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	milestones, err := h.milestones.ListForUser(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, milestones)
}

func (h *Handler) ListProjectMilestones(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	milestones, err := h.milestones.ListByProject(c.Request().Context(), actor, c.Param("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, milestones)
}

func (h *Handler) GetMilestone(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	milestone, err := h.milestones.Get(c.Request().Context(), actor, c.Param("milestoneId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, milestone)
}

func (h *Handler) UpdateMilestone(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.UpdateMilestoneRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.milestones.Update(c.Request().Context(), actor, c.Param("milestoneId"), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "milestone updated successfully"})
}

func (h *Handler) DeleteMilestone(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.milestones.Delete(c.Request().Context(), actor, c.Param("milestoneId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "milestone deleted successfully"})
}
