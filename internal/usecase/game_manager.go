package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/marblesolitaire/internal/controller"
	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
	"github.com/rocketscienceinc/marblesolitaire/internal/pkg"
	"github.com/rocketscienceinc/marblesolitaire/internal/solitaire"
	"github.com/rocketscienceinc/marblesolitaire/internal/view"
)

var ErrHistoryDisabled = errors.New("result history is disabled")

type resultRepo interface {
	Create(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
	DeleteByID(ctx context.Context, id string) error
}

// Position is a zero-based board coordinate.
type Position struct {
	Row, Col int
}

// Settings selects the board for a session. Nil Size and Hole mean the variant's defaults.
type Settings struct {
	Variant solitaire.Variant
	Size    *int
	Hole    *Position
}

type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
	now        func() time.Time
}

// NewGameManager - resultRepo may be nil, in which case finished games are not recorded.
func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

// Play - runs one session reading moves from in and writing the board to out.
// A finished or quit game is recorded; a failure to record is logged, not returned.
func (that *GameManager) Play(ctx context.Context, settings Settings, in io.Reader, out io.Writer) (*entity.Result, error) {
	log := that.logger.With("method", "Play", "variant", settings.Variant)

	model, err := that.createModel(settings)
	if err != nil {
		return nil, err
	}

	log.Debug("game started", "size", model.BoardSize(), "score", model.Score())

	gameController := controller.NewGameController(model, view.New(model, out), in)

	outcome, err := gameController.PlayGame()
	if err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	result := &entity.Result{
		ID:         pkg.GenerateResultID(),
		Variant:    string(model.Variant()),
		Size:       solitaire.SizeOf(model),
		Score:      outcome.Score,
		Moves:      outcome.Moves,
		Status:     outcome.Status,
		FinishedAt: that.now().UTC(),
	}

	log.Info("game finished", "status", result.Status, "score", result.Score, "moves", result.Moves)

	if that.resultRepo != nil {
		if err = that.resultRepo.Create(ctx, result); err != nil {
			log.Error("failed to record result", "error", err)
		}
	}

	return result, nil
}

// RecentResults - returns up to limit recorded games, newest first.
func (that *GameManager) RecentResults(ctx context.Context, limit int) ([]*entity.Result, error) {
	if that.resultRepo == nil {
		return nil, ErrHistoryDisabled
	}

	results, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

// Result - returns the recorded game with the given id.
func (that *GameManager) Result(ctx context.Context, id string) (*entity.Result, error) {
	if that.resultRepo == nil {
		return nil, ErrHistoryDisabled
	}

	result, err := that.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return result, nil
}

// DeleteResult - removes a recorded game from storage and from the recent list.
func (that *GameManager) DeleteResult(ctx context.Context, id string) error {
	if that.resultRepo == nil {
		return ErrHistoryDisabled
	}

	if err := that.resultRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	that.logger.With("method", "DeleteResult").Info("result deleted", "id", id)

	return nil
}

func (that *GameManager) createModel(settings Settings) (solitaire.Model, error) {
	var opts []solitaire.Option
	if settings.Size != nil {
		opts = append(opts, solitaire.WithSize(*settings.Size))
	}

	if settings.Hole != nil {
		opts = append(opts, solitaire.WithHole(settings.Hole.Row, settings.Hole.Col))
	}

	model, err := solitaire.New(settings.Variant, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return model, nil
}
