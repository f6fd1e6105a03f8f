package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
)

func (h *Handler) CreateAchievement(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateAchievementRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	achievement, err := h.achievements.Create(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, achievement)
}

func (h *Handler) ListAchievements(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	achievements, err := h.achievements.ListOwn(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, achievements)
}
