package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
	"github.com/rocketscienceinc/marblesolitaire/internal/solitaire"
)

// View writes a board and free-form messages to an output destination.
type View interface {
	fmt.Stringer

	RenderBoard() error
	RenderMessage(message string) error
}

// New - picks the text view matching the board's variant.
func New(model solitaire.ModelState, out io.Writer) View {
	if model.Variant() == solitaire.Triangular {
		return NewTriangleTextView(model, out)
	}

	return NewTextView(model, out)
}

type textView struct {
	model solitaire.ModelState
	out   io.Writer
	// leading returns the number of spaces before the first slot of a row.
	leading func(row int) int
	// width returns the number of slots drawn for a row.
	width func(row int) int
}

// NewTextView - renders the full bounding square, one character per slot.
func NewTextView(model solitaire.ModelState, out io.Writer) View {
	size := model.BoardSize()

	return &textView{
		model:   model,
		out:     out,
		leading: func(int) int { return 0 },
		width:   func(int) int { return size },
	}
}

// NewTriangleTextView - renders row r shifted right by size-r-1 spaces so the board reads as a triangle.
func NewTriangleTextView(model solitaire.ModelState, out io.Writer) View {
	size := model.BoardSize()

	return &textView{
		model:   model,
		out:     out,
		leading: func(row int) int { return size - row - 1 },
		width:   func(row int) int { return row + 1 },
	}
}

// String - one line per row, slots separated by a single space, no trailing
// whitespace on any line and no newline after the last row.
func (that *textView) String() string {
	size := that.model.BoardSize()
	lines := make([]string, 0, size)

	for row := 0; row < size; row++ {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", that.leading(row)))

		for col := 0; col < that.width(row); col++ {
			if col > 0 {
				line.WriteByte(' ')
			}

			slot, err := that.model.SlotAt(row, col)
			if err != nil {
				slot = entity.Invalid
			}
			line.WriteString(slot.String())
		}

		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	return strings.Join(lines, "\n")
}

func (that *textView) RenderBoard() error {
	return that.RenderMessage(that.String())
}

func (that *textView) RenderMessage(message string) error {
	if _, err := io.WriteString(that.out, message); err != nil {
		return fmt.Errorf("could not transmit output: %w", err)
	}

	return nil
}
