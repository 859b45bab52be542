package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/marblesolitaire/internal"
	"github.com/rocketscienceinc/marblesolitaire/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration and logger, and plays a game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}()

	opts, err := app.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	conf := config.MustLoad(opts.ConfigPath)
	logger := initLogger(conf)

	if err = app.RunApp(logger, conf, opts, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger. Logs go to stderr so they never mix with the board on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
