package solitaire

// shape reports whether (row, col) is a playable position of a board.
// Implementations must be pure: they are consulted while painting the board and on every move.
type shape func(row, col int) bool

// rectangularSize is the side of the square grid holding an English or European board.
func rectangularSize(armThickness int) int {
	return armThickness*3 - 2
}

func inSquare(size, row, col int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}

// plusShape - the English board: a vertical and a horizontal band of width armThickness.
func plusShape(armThickness int) shape {
	size := rectangularSize(armThickness)
	inset := armThickness - 1

	return func(row, col int) bool {
		if !inSquare(size, row, col) {
			return false
		}

		return (row >= inset && row < size-inset) || (col >= inset && col < size-inset)
	}
}

// octagonShape - the European board: the full square minus four corner triangles
// whose legs are sideLength-1 cells long.
func octagonShape(sideLength int) shape {
	size := rectangularSize(sideLength)
	cut := sideLength - 1
	last := size - 1

	return func(row, col int) bool {
		if !inSquare(size, row, col) {
			return false
		}

		switch {
		case row+col < cut: // top-left
			return false
		case row+(last-col) < cut: // top-right
			return false
		case (last-row)+col < cut: // bottom-left
			return false
		case (last-row)+(last-col) < cut: // bottom-right
			return false
		}

		return true
	}
}

// triangleShape - row r holds columns 0..r.
func triangleShape(dimensions int) shape {
	return func(row, col int) bool {
		return row >= 0 && row < dimensions && col >= 0 && col <= row
	}
}
