package solitaire

import (
	"fmt"

	"github.com/rocketscienceinc/marblesolitaire/internal/apperror"
)

const (
	DefaultArmThickness = 3
	DefaultDimensions   = 5
)

type options struct {
	size    int
	hole    bool
	holeRow int
	holeCol int
}

type Option func(*options)

// WithSize sets the arm thickness (English), side length (European) or row count (Triangular).
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithHole sets the zero-based position of the initially empty slot.
func WithHole(row, col int) Option {
	return func(o *options) {
		o.hole = true
		o.holeRow = row
		o.holeCol = col
	}
}

// New - creates a board of the given variant. Without options the board has the
// variant's default size; the hole defaults to the center for rectangular boards
// and to the apex for the triangle.
func New(variant Variant, opts ...Option) (Model, error) {
	o := &options{}
	switch variant {
	case English, European:
		o.size = DefaultArmThickness
	case Triangular:
		o.size = DefaultDimensions
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, variant)
	}

	for _, opt := range opts {
		opt(o)
	}

	if !o.hole && variant != Triangular {
		center := rectangularSize(o.size) / 2
		o.holeRow, o.holeCol = center, center
	}

	var (
		model Model
		err   error
	)

	switch variant {
	case English:
		model, err = NewEnglishBoard(o.size, o.holeRow, o.holeCol)
	case European:
		model, err = NewEuropeanBoard(o.size, o.holeRow, o.holeCol)
	default:
		model, err = NewTriangleBoard(o.size, o.holeRow, o.holeCol)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s board: %w", variant, err)
	}

	return model, nil
}

// SizeOf - returns the size a board was built with, in the unit WithSize takes:
// arm thickness or side length for rectangular boards, rows for the triangle.
func SizeOf(model ModelState) int {
	if board, ok := model.(*RectangularBoard); ok {
		return board.ArmThickness()
	}

	return model.BoardSize()
}
