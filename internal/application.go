package application

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/marblesolitaire/internal/config"
	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
	"github.com/rocketscienceinc/marblesolitaire/internal/repository"
	"github.com/rocketscienceinc/marblesolitaire/internal/repository/storage"
	"github.com/rocketscienceinc/marblesolitaire/internal/solitaire"
	"github.com/rocketscienceinc/marblesolitaire/internal/usecase"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrIncompleteHole  = errors.New("both -hole-row and -hole-col must be given")
	ErrTooManyVariants = errors.New("only one game type may be given")
)

// Options are the command line settings. Hole coordinates are one-based. Size and
// the hole only override the config when SizeSet and HoleSet say they were given.
type Options struct {
	ConfigPath string
	Variant    string
	Size       int
	SizeSet    bool
	HoleRow    int
	HoleCol    int
	HoleSet    bool
	History    int
	Show       string
	Delete     string
}

// ParseFlags - parses `[flags] [english|european|triangular]`.
func ParseFlags(args []string, output io.Writer) (*Options, error) {
	opts := &Options{}

	flags := flag.NewFlagSet("marblesolitaire", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&opts.ConfigPath, "config", "config.yml", "path to the config file")
	flags.IntVar(&opts.Size, "size", 0, "arm thickness (english), side length (european) or rows (triangular)")
	flags.IntVar(&opts.HoleRow, "hole-row", 0, "one-based row of the initially empty slot")
	flags.IntVar(&opts.HoleCol, "hole-col", 0, "one-based column of the initially empty slot")
	flags.IntVar(&opts.History, "history", 0, "print the N most recent recorded games and exit")
	flags.StringVar(&opts.Show, "show", "", "print the recorded game with this id and exit")
	flags.StringVar(&opts.Delete, "delete", "", "remove the recorded game with this id and exit")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	switch flags.NArg() {
	case 0:
	case 1:
		opts.Variant = flags.Arg(0)
	default:
		return nil, fmt.Errorf("%w: %v", ErrTooManyVariants, flags.Args())
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if set["hole-row"] != set["hole-col"] {
		return nil, ErrIncompleteHole
	}

	opts.SizeSet = set["size"]
	opts.HoleSet = set["hole-row"]

	return opts, nil
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, opts *Options, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var resultRepo repository.ResultRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultRepo = repository.NewResultRepository(redisStorage, conf.Redis.HistorySize)
	}

	gameManager := usecase.NewGameManager(logger, resultRepo)

	switch {
	case opts.Delete != "":
		return deleteResult(ctx, gameManager, opts.Delete, out)
	case opts.Show != "":
		return showResult(ctx, gameManager, opts.Show, out)
	case opts.History > 0:
		return printHistory(ctx, gameManager, opts.History, out)
	}

	settings, err := buildSettings(conf, opts)
	if err != nil {
		return err
	}

	log.Debug("starting game", "variant", settings.Variant, "size", settings.Size)

	if _, err = gameManager.Play(ctx, settings, in, out); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

// buildSettings - merges flags over config and converts the hole to zero-based coordinates.
func buildSettings(conf *config.Config, opts *Options) (usecase.Settings, error) {
	name := opts.Variant
	if name == "" {
		name = conf.Game.Variant
	}

	variant, err := solitaire.ParseVariant(name)
	if err != nil {
		return usecase.Settings{}, err
	}

	settings := usecase.Settings{Variant: variant}

	switch {
	case opts.SizeSet:
		size := opts.Size
		settings.Size = &size
	case conf.Game.Size != 0:
		size := conf.Game.Size
		settings.Size = &size
	}

	if opts.HoleSet {
		settings.Hole = &usecase.Position{Row: opts.HoleRow - 1, Col: opts.HoleCol - 1}
	}

	return settings, nil
}

func printHistory(ctx context.Context, gameManager *usecase.GameManager, limit int, out io.Writer) error {
	results, err := gameManager.RecentResults(ctx, limit)
	if err != nil {
		return err
	}

	for _, result := range results {
		if _, err = fmt.Fprintln(out, formatResult(result)); err != nil {
			return fmt.Errorf("could not transmit output: %w", err)
		}
	}

	return nil
}

func showResult(ctx context.Context, gameManager *usecase.GameManager, id string, out io.Writer) error {
	result, err := gameManager.Result(ctx, id)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out, formatResult(result)); err != nil {
		return fmt.Errorf("could not transmit output: %w", err)
	}

	return nil
}

func deleteResult(ctx context.Context, gameManager *usecase.GameManager, id string, out io.Writer) error {
	if err := gameManager.DeleteResult(ctx, id); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "Deleted %s\n", id); err != nil {
		return fmt.Errorf("could not transmit output: %w", err)
	}

	return nil
}

func formatResult(result *entity.Result) string {
	return fmt.Sprintf("%s %s %-10s size %d score %d moves %d %s",
		result.ID, result.FinishedAt.Format(time.RFC3339), result.Variant, result.Size, result.Score, result.Moves, result.Status)
}
