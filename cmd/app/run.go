package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/akyairhashvil/countdown/internal/alert"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli"
)

var errNoTerminal = errors.New("countdown needs an interactive terminal")

func runTimer(c *cli.Context, e env) error {
	if !e.isTTY() {
		return errNoTerminal
	}
	if c.GlobalIsSet("theme") {
		if err := validateTheme(c.GlobalString("theme")); err != nil {
			return err
		}
	}
	cfg, err := loadConfig(c, e.fs)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(logPath(c.GlobalString("log"), os.Getenv))
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var history database.HistoryRepository
	if cfg.History.Enabled {
		db, err := database.Open(ctx, cfg.HistoryPath())
		if err != nil {
			// The timer works without history.
			util.LogError(logger, "open history", err)
		} else {
			defer db.Close()
			history = db
		}
	}

	notifier := alert.NewNotifier(
		alert.NewSpeakerPlayer(e.fs, cfg.Alert.Sound, cfg.Alert.Volume),
		alert.NewBell(e.stderr),
		alert.WithMute(cfg.Alert.Mute),
		alert.WithLogger(logger),
	)
	defer notifier.Silence()

	model := tui.NewMainModel(ctx, tui.Options{
		Duration: countdown.Duration{
			Hours:   cfg.Timer.Hours,
			Minutes: cfg.Timer.Minutes,
			Seconds: cfg.Timer.Seconds,
		},
		Alerter: notifier,
		History: history,
		Theme:   cfg.UI.Theme,
		Logger:  logger,
		Now:     e.now,
	})
	logger.Printf("starting with %s, theme %s", model.Timer().Controller().Duration(), cfg.UI.Theme)
	return e.program(model)
}

// openLog routes logging to path through tea.LogToFile, since the program
// owns the terminal. An empty path discards everything.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return util.Discard(), func() {}, nil
	}
	f, err := tea.LogToFile(path, "countdown")
	if err != nil {
		return nil, nil, err
	}
	return util.NewLogger(f, "countdown "), func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
