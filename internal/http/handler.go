package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "taskhive.com/taskhive/internal/errors"
	"taskhive.com/taskhive/internal/services"
	"taskhive.com/taskhive/pkg/logger"
)

type Handler struct {
	users         *services.UserService
	projects      *services.ProjectService
	tasks         *services.TaskService
	boards        *services.BoardService
	history       *services.HistoryService
	milestones    *services.MilestoneService
	achievements  *services.AchievementService
	notifications *services.NotificationService
	validate      *validator.Validate
}

func NewHandler(
	users *services.UserService,
	projects *services.ProjectService,
	tasks *services.TaskService,
	boards *services.BoardService,
	history *services.HistoryService,
	milestones *services.MilestoneService,
	achievements *services.AchievementService,
	notifications *services.NotificationService,
) *Handler {
	return &Handler{
		users:         users,
		projects:      projects,
		tasks:         tasks,
		boards:        boards,
		history:       history,
		milestones:    milestones,
		achievements:  achievements,
		notifications: notifications,
		validate:      validator.New(),
	}
}

var errInvalidPayload = &apperrors.Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

// bind parses and validates the request body. Failures come back as
// exceptions so respondError can map them.
func (h *Handler) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errInvalidPayload
	}
	if err := h.validate.Struct(req); err != nil {
		return &apperrors.Exception{
			Message:    "validation failed: " + err.Error(),
			StatusCode: http.StatusBadRequest,
		}
	}
	return nil
}

// respondError maps service errors onto the wire contract: known
// exceptions keep their status and message, anything else becomes an
// opaque 500.
func respondError(c echo.Context, err error) error {
	if apperrors.IsException(err) {
		return c.JSON(apperrors.StatusCode(err), echo.Map{"error": err.Error()})
	}
	logger.Error.Error("internal error",
		zap.String("path", c.Request().URL.Path), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   "internal server error",
		"details": err.Error(),
	})
}
