package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// memSolution keeps solutions in process memory. Used when the Redis cache is disabled.
type memSolution struct {
	mu        sync.RWMutex
	solutions map[tictactoe.Board]entity.Solution
}

func NewMemorySolutionRepository() SolutionRepository {
	return &memSolution{
		solutions: make(map[tictactoe.Board]entity.Solution),
	}
}

func (that *memSolution) Save(_ context.Context, solution *entity.Solution) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.solutions[solution.Board] = *solution

	return nil
}

func (that *memSolution) GetByBoard(_ context.Context, board tictactoe.Board) (*entity.Solution, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	solution, ok := that.solutions[board]
	if !ok {
		return nil, ErrSolutionNotFound
	}

	if solution.Move != nil {
		move := *solution.Move
		solution.Move = &move
	}

	return &solution, nil
}

func (that *memSolution) DeleteByBoard(_ context.Context, board tictactoe.Board) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.solutions[board]; !ok {
		return ErrSolutionNotFound
	}

	delete(that.solutions, board)

	return nil
}
