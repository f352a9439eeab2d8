package apperror

import "errors"

var (
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrUnreachableBoard = errors.New("board is not reachable by legal play")
	ErrGameFinished     = errors.New("game is already finished")
)
