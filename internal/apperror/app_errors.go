package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("position out of bounds")
	ErrInvalidMove          = errors.New("invalid move")
	ErrInputExhausted       = errors.New("unable to read input")
	ErrUnknownVariant       = errors.New("unknown game type")
	ErrNotFound             = errors.New("not found")
)

// Causes of ErrInvalidMove, in the order Move checks them.
var (
	ErrOutOfShape          = errors.New("position is not on the board")
	ErrNotAJump            = errors.New("not a valid jump")
	ErrNoMarbleAtSource    = errors.New("no marble at source position")
	ErrDestinationOccupied = errors.New("destination is not empty")
	ErrNothingToJump       = errors.New("no marble to jump over")
)
