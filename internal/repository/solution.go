package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrSolutionNotFound = errors.New("solution not found")

type SolutionRepository interface {
	Save(ctx context.Context, solution *entity.Solution) error
	GetByBoard(ctx context.Context, board tictactoe.Board) (*entity.Solution, error)
	DeleteByBoard(ctx context.Context, board tictactoe.Board) error
}

type dbSolution struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSolutionRepository - stores solved boards as JSON under "<prefix>:<board key>".
// A zero ttl keeps entries forever.
func NewSolutionRepository(client *redis.Client, prefix string, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (that *dbSolution) Save(ctx context.Context, solution *entity.Solution) error {
	solutionJSON, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("could not marshal solution: %w", err)
	}

	if err = that.client.Set(ctx, that.key(solution.Board), solutionJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) GetByBoard(ctx context.Context, board tictactoe.Board) (*entity.Solution, error) {
	response, err := that.client.Get(ctx, that.key(board)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSolutionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	var solution entity.Solution
	if err = json.Unmarshal([]byte(response), &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return &solution, nil
}

func (that *dbSolution) DeleteByBoard(ctx context.Context, board tictactoe.Board) error {
	deleted, err := that.client.Del(ctx, that.key(board)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	if deleted == 0 {
		return ErrSolutionNotFound
	}

	return nil
}

func (that *dbSolution) key(board tictactoe.Board) string {
	return that.prefix + ":" + board.Key()
}
