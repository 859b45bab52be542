package controller

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/marblesolitaire/internal/apperror"
	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
	"github.com/rocketscienceinc/marblesolitaire/internal/solitaire"
	"github.com/rocketscienceinc/marblesolitaire/internal/view"
)

const (
	quitToken    = "q"
	maxTokenSize = 4096
)

// oversizedToken stands in for a word longer than maxTokenSize. It is not a number,
// so the player is asked again.
var oversizedToken = []byte("?")

// errQuit is returned by nextValue when the player asks to stop.
var errQuit = errors.New("quit")

// Outcome describes how a game session ended.
type Outcome struct {
	Status string
	Moves  int
	Score  int
}

// GameController runs the text play loop. Coordinates typed by the player are
// one-based and converted here; the model only ever sees zero-based positions.
type GameController struct {
	model   solitaire.Model
	view    view.View
	scanner *bufio.Scanner
}

func NewGameController(model solitaire.Model, view view.View, in io.Reader) *GameController {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, maxTokenSize), maxTokenSize)
	scanner.Split((&wordSplitter{limit: maxTokenSize}).split)

	return &GameController{
		model:   model,
		view:    view,
		scanner: scanner,
	}
}

// PlayGame plays until the board has no moves left or the player quits.
// Running out of input first is reported as apperror.ErrInputExhausted.
func (that *GameController) PlayGame() (*Outcome, error) {
	outcome := &Outcome{}

	for !that.model.IsGameOver() {
		if err := that.renderState(); err != nil {
			return nil, err
		}

		move, err := that.nextMove()
		if errors.Is(err, errQuit) {
			if err = that.handleQuit(); err != nil {
				return nil, err
			}

			outcome.Status = entity.StatusQuit
			outcome.Score = that.model.Score()

			return outcome, nil
		}

		if err != nil {
			return nil, err
		}

		err = that.model.Move(move[0]-1, move[1]-1, move[2]-1, move[3]-1)
		if errors.Is(err, apperror.ErrInvalidMove) {
			if err = that.view.RenderMessage("Invalid move. Play again. " + moveCause(err) + "\n"); err != nil {
				return nil, err
			}

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to make move: %w", err)
		}

		outcome.Moves++
	}

	if err := that.handleGameOver(); err != nil {
		return nil, err
	}

	outcome.Status = entity.StatusOver
	outcome.Score = that.model.Score()

	return outcome, nil
}

// nextMove - reads from-row, from-col, to-row and to-col.
func (that *GameController) nextMove() ([4]int, error) {
	var move [4]int

	for i := range move {
		value, err := that.nextValue()
		if err != nil {
			return move, err
		}

		move[i] = value
	}

	return move, nil
}

// nextValue - returns the next positive integer token, asking again for anything else.
func (that *GameController) nextValue() (int, error) {
	for {
		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return 0, fmt.Errorf("%w: %w", apperror.ErrInputExhausted, err)
			}

			return 0, apperror.ErrInputExhausted
		}

		token := that.scanner.Text()
		if strings.EqualFold(token, quitToken) {
			return 0, errQuit
		}

		if value, err := strconv.Atoi(token); err == nil && value > 0 {
			return value, nil
		}

		if err := that.view.RenderMessage("Re-enter a positive integer greater than 0: "); err != nil {
			return 0, err
		}
	}
}

func (that *GameController) renderState() error {
	if err := that.view.RenderBoard(); err != nil {
		return err
	}

	return that.view.RenderMessage(fmt.Sprintf("\nScore: %d\n", that.model.Score()))
}

func (that *GameController) handleQuit() error {
	if err := that.view.RenderMessage("Game quit!\nState of game when quit:\n"); err != nil {
		return err
	}

	return that.renderState()
}

func (that *GameController) handleGameOver() error {
	if err := that.view.RenderMessage("Game over!\n"); err != nil {
		return err
	}

	return that.renderState()
}

// wordSplitter splits like bufio.ScanWords, but a word that does not fit in limit
// bytes is reported once as oversizedToken and the rest of it is dropped.
type wordSplitter struct {
	limit      int
	discarding bool
}

func (that *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	skipped := 0

	if that.discarding {
		end := bytes.IndexFunc(data, unicode.IsSpace)
		if end < 0 {
			return len(data), nil, nil
		}

		that.discarding = false
		skipped = end
		data = data[end:]
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if advance == 0 && token == nil && err == nil && len(data) >= that.limit {
		that.discarding = true

		return skipped + len(data), oversizedToken, nil
	}

	return skipped + advance, token, err
}

// moveCause - strips the generic prefix so the player only sees why the move failed.
func moveCause(err error) string {
	return strings.TrimPrefix(err.Error(), apperror.ErrInvalidMove.Error()+": ")
}
