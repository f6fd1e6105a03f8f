package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	token, user, err := h.users.Login(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) ListUsers(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	users, err := h.users.List(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	user, err := h.users.Get(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.users.Delete(c.Request().Context(), actor, c.Param("userId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted successfully"})
}

func (h *Handler) UpdateCredentials(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.UpdateCredentialsRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.users.UpdateCredentials(c.Request().Context(), actor, req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "credentials updated successfully"})
}
