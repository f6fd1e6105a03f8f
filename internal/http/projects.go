package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
)

func (h *Handler) CreateProject(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateProjectRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	project, err := h.projects.Create(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	projects, err := h.projects.List(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	project, err := h.projects.Get(c.Request().Context(), actor, c.Param("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.UpdateProjectRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	project, err := h.projects.Update(c.Request().Context(), actor, c.Param("projectId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.projects.Delete(c.Request().Context(), actor, c.Param("projectId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "project deleted successfully"})
}

// ListProjectTasks serves the project view: every task under a project,
// for admins and members.
func (h *Handler) ListProjectTasks(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	tasks, err := h.tasks.ListByProject(c.Request().Context(), actor, c.Param("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) ListProjectMembers(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	members, err := h.projects.Members(c.Request().Context(), actor, c.Param("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, members)
}

// ListUserTasks and ListUserProjects serve the user views. Non-admins
// may only ask about themselves; admins may pass ?user_id.
func (h *Handler) ListUserTasks(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	tasks, err := h.tasks.ListByUser(c.Request().Context(), actor, c.QueryParam("user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) ListUserProjects(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	projects, err := h.projects.ListForUser(c.Request().Context(), actor, c.QueryParam("user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}
