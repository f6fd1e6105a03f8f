package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhive.com/taskhive/internal/data_models"
	middleware "taskhive.com/taskhive/internal/http/middlewares"
)

func (h *Handler) CreateBoard(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateBoardRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	board, err := h.boards.CreateBoard(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, board)
}

func (h *Handler) GetBoard(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	board, err := h.boards.GetBoard(c.Request().Context(), actor, c.Param("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

func (h *Handler) RenameBoard(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.RenameBoardRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.boards.RenameBoard(c.Request().Context(), actor, c.Param("boardId"), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "kanban board updated successfully"})
}

func (h *Handler) DeleteBoard(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.boards.DeleteBoard(c.Request().Context(), actor, c.Param("boardId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "kanban board deleted successfully"})
}

func (h *Handler) CreateColumn(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateColumnRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	column, err := h.boards.CreateColumn(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, column)
}

func (h *Handler) ListColumns(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	columns, err := h.boards.ListColumns(c.Request().Context(), actor, c.Param("boardId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, columns)
}

func (h *Handler) UpdateColumn(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.UpdateColumnRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.boards.UpdateColumn(c.Request().Context(), actor, c.Param("columnId"), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "kanban column updated successfully"})
}

func (h *Handler) DeleteColumn(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.boards.DeleteColumn(c.Request().Context(), actor, c.Param("columnId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "kanban column deleted successfully"})
}

func (h *Handler) CreateCard(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.CreateCardRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	card, err := h.boards.CreateCard(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) ListCards(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	cards, err := h.boards.ListCards(c.Request().Context(), actor, c.Param("columnId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cards)
}

func (h *Handler) MoveCard(c echo.Context) error {
	actor := middleware.CurrentUser(c)

	var req dto.MoveCardRequest
	if err := h.bind(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.boards.MoveCard(c.Request().Context(), actor, c.Param("cardId"), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "kanban card updated successfully"})
}

func (h *Handler) DeleteCard(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if err := h.boards.DeleteCard(c.Request().Context(), actor, c.Param("cardId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "kanban card deleted successfully"})
}
