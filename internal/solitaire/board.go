package solitaire

import (
	"fmt"

	"github.com/rocketscienceinc/marblesolitaire/internal/apperror"
	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
)

type offset struct {
	row, col int
}

var (
	orthogonalJumps = []offset{
		{-2, 0}, // up
		{0, 2},  // right
		{2, 0},  // down
		{0, -2}, // left
	}

	triangleJumps = []offset{
		{0, -2},  // left
		{0, 2},   // right
		{-2, -2}, // up-left
		{-2, 0},  // up-right
		{2, 0},   // down-left
		{2, 2},   // down-right
	}
)

// engine holds the occupancy grid and the move rules shared by every variant.
// A variant is an engine configured with a shape and a set of jump offsets.
type engine struct {
	size    int
	cells   [][]entity.SlotState
	isValid shape
	jumps   []offset
}

func newEngine(size int, isValid shape, jumps []offset, holeRow, holeCol int) (*engine, error) {
	if !isValid(holeRow, holeCol) {
		return nil, fmt.Errorf("%w: invalid empty cell position (%d,%d)", apperror.ErrInvalidConfiguration, holeRow, holeCol)
	}

	cells := make([][]entity.SlotState, size)
	for row := range cells {
		cells[row] = make([]entity.SlotState, size)
		for col := range cells[row] {
			if isValid(row, col) {
				cells[row][col] = entity.Marble
			} else {
				cells[row][col] = entity.Invalid
			}
		}
	}

	cells[holeRow][holeCol] = entity.Empty

	return &engine{
		size:    size,
		cells:   cells,
		isValid: isValid,
		jumps:   jumps,
	}, nil
}

// Move jumps the marble at (fromRow, fromCol) over its neighbour into (toRow, toCol).
// On error the board is left untouched.
func (that *engine) Move(fromRow, fromCol, toRow, toCol int) error {
	if err := that.validateMove(fromRow, fromCol, toRow, toCol); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	midRow, midCol := (fromRow+toRow)/2, (fromCol+toCol)/2

	that.cells[fromRow][fromCol] = entity.Empty
	that.cells[midRow][midCol] = entity.Empty
	that.cells[toRow][toCol] = entity.Marble

	return nil
}

// validateMove - checks the move preconditions in a fixed order and returns the first one that fails.
func (that *engine) validateMove(fromRow, fromCol, toRow, toCol int) error {
	if !that.isValid(fromRow, fromCol) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfShape, fromRow, fromCol)
	}

	if !that.isValid(toRow, toCol) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfShape, toRow, toCol)
	}

	if !that.isJump(toRow-fromRow, toCol-fromCol) {
		return apperror.ErrNotAJump
	}

	if that.cells[fromRow][fromCol] != entity.Marble {
		return apperror.ErrNoMarbleAtSource
	}

	if that.cells[toRow][toCol] != entity.Empty {
		return apperror.ErrDestinationOccupied
	}

	midRow, midCol := (fromRow+toRow)/2, (fromCol+toCol)/2
	if !that.isValid(midRow, midCol) || that.cells[midRow][midCol] != entity.Marble {
		return apperror.ErrNothingToJump
	}

	return nil
}

func (that *engine) isJump(rowDiff, colDiff int) bool {
	for _, jump := range that.jumps {
		if jump.row == rowDiff && jump.col == colDiff {
			return true
		}
	}

	return false
}

// canJump - non-mutating probe for a single jump from (row, col).
func (that *engine) canJump(row, col int, jump offset) bool {
	toRow, toCol := row+jump.row, col+jump.col
	midRow, midCol := row+jump.row/2, col+jump.col/2

	return that.isValid(toRow, toCol) &&
		that.cells[toRow][toCol] == entity.Empty &&
		that.isValid(midRow, midCol) &&
		that.cells[midRow][midCol] == entity.Marble
}

// IsGameOver reports whether no marble on the board has a legal jump left.
// The board is rescanned on every call.
func (that *engine) IsGameOver() bool {
	for row := range that.cells {
		for col := range that.cells[row] {
			if that.cells[row][col] != entity.Marble {
				continue
			}

			for _, jump := range that.jumps {
				if that.canJump(row, col, jump) {
					return false
				}
			}
		}
	}

	return true
}

func (that *engine) Score() int {
	score := 0
	for _, row := range that.cells {
		for _, slot := range row {
			if slot == entity.Marble {
				score++
			}
		}
	}

	return score
}

// SlotAt returns the state of a position inside the board's bounding square.
// Off-shape positions inside the square are Invalid, not an error.
func (that *engine) SlotAt(row, col int) (entity.SlotState, error) {
	if !inSquare(that.size, row, col) {
		return entity.Invalid, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row][col], nil
}

func (that *engine) BoardSize() int {
	return that.size
}
