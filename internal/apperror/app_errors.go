package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrIllegalMove      = errors.New("illegal move")
	ErrComputerTurn     = errors.New("it's the computer's turn")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownGame      = errors.New("unknown game")
	ErrInvalidVariant   = errors.New("invalid game variant")
	ErrSessionClosed    = errors.New("session is closed")
	ErrGameNotFound     = errors.New("game not found")
)
