package solitaire

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/marblesolitaire/internal/apperror"
	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
)

type Variant string

const (
	English    Variant = "english"
	European   Variant = "european"
	Triangular Variant = "triangular"
)

// ModelState is the read-only view of a board, used by renderers.
type ModelState interface {
	Variant() Variant
	BoardSize() int
	SlotAt(row, col int) (entity.SlotState, error)
	Score() int
}

// Model is a playable board. All coordinates are zero-based.
type Model interface {
	ModelState

	Move(fromRow, fromCol, toRow, toCol int) error
	IsGameOver() bool
}

func ParseVariant(name string) (Variant, error) {
	switch variant := Variant(strings.ToLower(strings.TrimSpace(name))); variant {
	case English, European, Triangular:
		return variant, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, name)
	}
}

// RectangularBoard is an English or European board: a square grid of side 3*armThickness-2
// with orthogonal jumps only.
type RectangularBoard struct {
	*engine

	variant      Variant
	armThickness int
}

func newRectangularBoard(variant Variant, build func(int) shape, armThickness, holeRow, holeCol int) (*RectangularBoard, error) {
	if armThickness <= 0 || armThickness%2 == 0 {
		return nil, fmt.Errorf("%w: arm thickness %d must be positive and odd", apperror.ErrInvalidConfiguration, armThickness)
	}

	board, err := newEngine(rectangularSize(armThickness), build(armThickness), orthogonalJumps, holeRow, holeCol)
	if err != nil {
		return nil, err
	}

	return &RectangularBoard{
		engine:       board,
		variant:      variant,
		armThickness: armThickness,
	}, nil
}

// NewEnglishBoard - creates a plus-shaped board with the hole at (holeRow, holeCol).
func NewEnglishBoard(armThickness, holeRow, holeCol int) (*RectangularBoard, error) {
	return newRectangularBoard(English, plusShape, armThickness, holeRow, holeCol)
}

// NewEuropeanBoard - creates an octagonal board with the hole at (holeRow, holeCol).
func NewEuropeanBoard(sideLength, holeRow, holeCol int) (*RectangularBoard, error) {
	return newRectangularBoard(European, octagonShape, sideLength, holeRow, holeCol)
}

func (that *RectangularBoard) Variant() Variant {
	return that.variant
}

func (that *RectangularBoard) ArmThickness() int {
	return that.armThickness
}

// TriangleBoard is a triangular board where row r holds r+1 positions and
// marbles jump in six directions.
type TriangleBoard struct {
	*engine
}

// NewTriangleBoard - creates a triangle of the given number of rows with the hole at (holeRow, holeCol).
func NewTriangleBoard(dimensions, holeRow, holeCol int) (*TriangleBoard, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("%w: dimensions %d must be positive", apperror.ErrInvalidConfiguration, dimensions)
	}

	board, err := newEngine(dimensions, triangleShape(dimensions), triangleJumps, holeRow, holeCol)
	if err != nil {
		return nil, err
	}

	return &TriangleBoard{engine: board}, nil
}

func (that *TriangleBoard) Variant() Variant {
	return Triangular
}
