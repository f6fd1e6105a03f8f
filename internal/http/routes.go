package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "taskhive.com/taskhive/internal/http/middlewares"
	"taskhive.com/taskhive/pkg/logger"
)

// Register wires every route. Everything under /api requires a bearer
// token except user registration and login.
func Register(e *echo.Echo, h *Handler, jwtSecret []byte, rateLimitPerMinute int) {
	e.Use(middleware.RequestLogger(logger.Audit))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.POST("/users/register", h.Register)
	api.POST("/users/login", h.Login)

	auth := api.Group("", middleware.Authenticate(jwtSecret))

	auth.GET("/users", h.ListUsers)
	auth.GET("/users/:userId", h.GetUser)
	auth.DELETE("/users/:userId", h.DeleteUser)
	auth.PUT("/users/credentials", h.UpdateCredentials)

	auth.POST("/projects", h.CreateProject)
	auth.GET("/projects", h.ListProjects)
	auth.GET("/projects/:projectId", h.GetProject)
	auth.PUT("/projects/:projectId", h.UpdateProject)
	auth.DELETE("/projects/:projectId", h.DeleteProject)

	auth.POST("/tasks", h.CreateTask)
	auth.GET("/tasks/:taskId", h.GetTask)
	auth.PUT("/tasks/:taskId", h.UpdateTask)
	auth.DELETE("/tasks/:taskId", h.DeleteTask)

	auth.GET("/task-history", h.QueryTaskHistory)

	auth.POST("/milestones", h.CreateMilestone)
	auth.GET("/milestones", h.ListMilestones)
	auth.GET("/milestones/project/:projectId", h.ListProjectMilestones)
	auth.GET("/milestones/:milestoneId", h.GetMilestone)
	auth.PUT("/milestones/:milestoneId", h.UpdateMilestone)
	auth.DELETE("/milestones/:milestoneId", h.DeleteMilestone)

	auth.POST("/kanban/boards", h.CreateBoard)
	auth.GET("/kanban/boards/:projectId", h.GetBoard)
	auth.PUT("/kanban/boards/:boardId", h.RenameBoard)
	auth.DELETE("/kanban/boards/:boardId", h.DeleteBoard)

	auth.POST("/kanban/columns", h.CreateColumn)
	auth.GET("/kanban/columns/:boardId", h.ListColumns)
	auth.PUT("/kanban/columns/:columnId", h.UpdateColumn)
	auth.DELETE("/kanban/columns/:columnId", h.DeleteColumn)

	auth.POST("/kanban/cards", h.CreateCard)
	auth.GET("/kanban/cards/:columnId", h.ListCards)
	auth.PUT("/kanban/cards/:cardId", h.MoveCard)
	auth.DELETE("/kanban/cards/:cardId", h.DeleteCard)

	auth.POST("/user-achievements", h.CreateAchievement)
	auth.GET("/user-achievements", h.ListAchievements)

	auth.POST("/notifications", h.CreateNotification)
	auth.GET("/notifications", h.ListNotifications)
	auth.PUT("/notifications/:notificationId/read", h.MarkNotificationRead)
	auth.DELETE("/notifications/:notificationId", h.DeleteNotification)

	auth.GET("/user-views/tasks", h.ListUserTasks)
	auth.GET("/user-views/projects", h.ListUserProjects)
	auth.GET("/project-views/:projectId/tasks", h.ListProjectTasks)
	auth.GET("/project-views/:projectId/members", h.ListProjectMembers)
}
