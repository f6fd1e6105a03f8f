package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
)

func (h *Handler) CreateNotification(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateNotificationRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	notification, err := h.notifications.Create(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, notification)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = actor.UserID
	}

	notifications, err := h.notifications.ListForUser(c.Request().Context(), actor, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.notifications.MarkRead(c.Request().Context(), actor, c.Param("notificationId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "notification marked as read"})
}

func (h *Handler) DeleteNotification(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.notifications.Delete(c.Request().Context(), actor, c.Param("notificationId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "notification deleted successfully"})
}
