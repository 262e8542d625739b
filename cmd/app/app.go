package main

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

// env carries the process boundaries so commands can run against fakes.
type env struct {
	fs      afero.Fs
	stdout  io.Writer
	stderr  io.Writer
	isTTY   func() bool
	program func(m tea.Model) error
	now     func() time.Time
}

func defaultEnv() env {
	return env{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTTY: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		program: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
		now: time.Now,
	}
}

func newApp(e env) *cli.App {
	app := cli.NewApp()
	app.Name = "countdown"
	app.HelpName = "countdown"
	app.Usage = "a countdown timer for the terminal"
	app.UsageText = "countdown [options] [command]"
	app.Version = version
	app.Writer = e.stdout
	app.ErrWriter = e.stderr
	app.Flags = globalFlags
	app.UseShortOptionHandling = true
	app.Action = func(c *cli.Context) error {
		return runTimer(c, e)
	}
	app.Commands = []cli.Command{
		{
			Name:    "history",
			Aliases: []string{"l"},
			Usage:   "list recently finished countdowns",
			Flags:   historyFlags,
			Action: func(c *cli.Context) error {
				return listHistory(c, e)
			},
		},
		{
			Name:    "report",
			Aliases: []string{"r"},
			Usage:   "write a PDF summary of one day's finished countdowns",
			Flags:   reportFlags,
			Action: func(c *cli.Context) error {
				return writeReport(c, e)
			},
		},
	}
	return app
}
