package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type boardRequest struct {
	Board *tictactoe.Board `json:"board"`
}

type turnRequest struct {
	Board *tictactoe.Board `json:"board"`
	Move  *tictactoe.Move  `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GameHandler - serves the engine over JSON. Boards must be exactly 3 rows of 3 cells.
type GameHandler struct {
	logger  *slog.Logger
	advisor advisorUseCase
}

// NewGameHandler - creates a handler backed by the advisor.
func NewGameHandler(logger *slog.Logger, advisor advisorUseCase) *GameHandler {
	return &GameHandler{
		logger:  logger,
		advisor: advisor,
	}
}

// InitialBoard - the empty board together with its solution.
func (that *GameHandler) InitialBoard(ctx echo.Context) error {
	solution, err := that.advisor.BestMove(ctx.Request().Context(), tictactoe.InitialState())
	if err != nil {
		return that.sendError(ctx, "InitialBoard", err)
	}

	return ctx.JSON(http.StatusOK, solution)
}

// Minimax - the best move for the posted board.
func (that *GameHandler) Minimax(ctx echo.Context) error {
	var req boardRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if req.Board == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "board is required"})
	}

	solution, err := that.advisor.BestMove(ctx.Request().Context(), *req.Board)
	if err != nil {
		return that.sendError(ctx, "Minimax", err)
	}

	return ctx.JSON(http.StatusOK, solution)
}

// Turn - applies the posted move and answers with the engine's move.
func (that *GameHandler) Turn(ctx echo.Context) error {
	var req turnRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if req.Board == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "board is required"})
	}

	if req.Move == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "move is required"})
	}

	turn, err := that.advisor.PlayTurn(ctx.Request().Context(), *req.Board, *req.Move)
	if err != nil {
		return that.sendError(ctx, "Turn", err)
	}

	return ctx.JSON(http.StatusOK, turn)
}

func (that *GameHandler) sendError(ctx echo.Context, method string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrUnreachableBoard),
		errors.Is(err, apperror.ErrGameFinished):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}
