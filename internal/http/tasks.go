package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
)

func (h *Handler) CreateTask(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateTaskRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	task, err := h.tasks.Create(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	task, err := h.tasks.Get(c.Request().Context(), actor, c.Param("taskId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.UpdateTaskRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	task, err := h.tasks.Update(c.Request().Context(), actor, c.Param("taskId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.tasks.Delete(c.Request().Context(), actor, c.Param("taskId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted successfully"})
}

// QueryTaskHistory returns the audit trail, filtered by the query
// parameters and implicitly scoped to the caller's projects for
// non-admins. Zero rows is a successful empty result.
func (h *Handler) QueryTaskHistory(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	query := dto.HistoryQuery{
		UserID:    c.QueryParam("user_id"),
		ProjectID: c.QueryParam("project_id"),
		TaskID:    c.QueryParam("task_id"),
	}

	entries, err := h.history.Query(c.Request().Context(), actor, query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
