package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// ErrNoMoveFound - the engine returned no move for a board that is not finished.
var ErrNoMoveFound = errors.New("engine found no move on an unfinished board")

type solutionRepoDep interface {
	Save(ctx context.Context, solution *entity.Solution) error
	GetByBoard(ctx context.Context, board tictactoe.Board) (*entity.Solution, error)
}

// Advisor - answers positions with the minimax engine and remembers what it solved.
type Advisor struct {
	logger       *slog.Logger
	solutionRepo solutionRepoDep
}

// NewAdvisor - creates an advisor that caches solutions in solutionRepo.
func NewAdvisor(logger *slog.Logger, solutionRepo solutionRepoDep) *Advisor {
	return &Advisor{
		logger:       logger.With("component", "advisor"),
		solutionRepo: solutionRepo,
	}
}

// BestMove - returns the searched value and best move of the board.
// A finished board yields a solution without a move. Cache errors are logged, never returned.
func (that *Advisor) BestMove(ctx context.Context, board tictactoe.Board) (*entity.Solution, error) {
	log := that.logger.With("method", "BestMove", "board", board.String())

	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate board: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to solve board: %w", err)
	}

	cached, err := that.solutionRepo.GetByBoard(ctx, board)
	switch {
	case err == nil:
		cached.Cached = true
		log.Debug("solution found in cache")
		return cached, nil
	case !errors.Is(err, repository.ErrSolutionNotFound):
		log.Warn("failed to read cached solution", "error", err)
	}

	solution := entity.NewSolution(board, tictactoe.Analyze(board))

	if err = that.solutionRepo.Save(ctx, solution); err != nil {
		log.Warn("failed to cache solution", "error", err)
	}

	log.Debug("board solved", "value", solution.Value, "visited", solution.Visited)

	return solution, nil
}

// PlayTurn - applies the caller's move and, unless that ends the game, answers with the engine's move.
func (that *Advisor) PlayTurn(ctx context.Context, board tictactoe.Board, move tictactoe.Move) (*entity.Turn, error) {
	log := that.logger.With("method", "PlayTurn", "board", board.String(), "move", move.String())

	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate board: %w", err)
	}

	if board.IsTerminal() {
		return nil, apperror.ErrGameFinished
	}

	next, err := board.Apply(move)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	turn := &entity.Turn{PlayerMove: move}

	if !next.IsTerminal() {
		solution, err := that.BestMove(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("failed to find bot move: %w", err)
		}

		if solution.Move == nil {
			return nil, ErrNoMoveFound
		}

		if next, err = next.Apply(*solution.Move); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		turn.BotMove = solution.Move
	}

	turn.Board = next
	turn.Outcome = next.Outcome()

	if winner, ok := next.Winner(); ok {
		turn.Winner = winner
	}

	if !turn.IsFinished() {
		turn.Turn = next.CurrentPlayer()
	}

	log.Info("turn played", "outcome", turn.Outcome.String())

	return turn, nil
}
