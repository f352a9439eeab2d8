package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBoardKey   = errors.New("invalid board key")
	ErrInvalidBoardShape = errors.New("board must have 3 rows of 3 cells")
)

// IllegalMoveError - returned by Board.Apply when the target cell cannot take a mark.
// It unwraps to apperror.ErrInvalidCell or apperror.ErrCellOccupied.
type IllegalMoveError struct {
	Move Move
	Err  error
}

func (that *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %v", that.Move, that.Err)
}

func (that *IllegalMoveError) Unwrap() error {
	return that.Err
}
