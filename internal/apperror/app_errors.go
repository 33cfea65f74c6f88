package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrInvalidColumn     = errors.New("column is out of range")
	ErrColumnFull        = errors.New("column is full")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
)
