package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

type advisorUseCase interface {
	BestMove(ctx context.Context, board tictactoe.Board) (*entity.Solution, error)
	PlayTurn(ctx context.Context, board tictactoe.Board, move tictactoe.Move) (*entity.Turn, error)
}

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

func New(logger *slog.Logger, advisor advisorUseCase) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout
	e.Server.IdleTimeout = idleTimeout

	e.Use(middleware.Recover())

	log := logger.With("component", "rest")
	handler := NewGameHandler(log, advisor)

	e.GET("/ping", PingHandler)

	api := e.Group("/api/v1")
	api.GET("/board", handler.InitialBoard)
	api.POST("/minimax", handler.Minimax)
	api.POST("/turn", handler.Turn)

	return &Server{
		logger: log,
		echo:   e,
	}
}

// Start - listens on the port until Shutdown is called.
func (that *Server) Start(port string) error {
	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.echo.ServeHTTP(w, r)
}
