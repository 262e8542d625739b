package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

var (
	globalFlags = []cli.Flag{
		cli.IntFlag{
			Name:  "hours, H",
			Usage: "initial hours (0-23)",
		},
		cli.IntFlag{
			Name:  "minutes, m",
			Usage: "initial minutes (0-59)",
		},
		cli.IntFlag{
			Name:  "seconds, s",
			Usage: "initial seconds (0-59)",
		},
		cli.StringFlag{
			Name:  "theme",
			Usage: "color theme: default, dracula or mono",
		},
		cli.StringFlag{
			Name:  "sound",
			Usage: "WAV file to loop when the countdown ends",
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "skip the sound and only ring the terminal bell",
		},
		cli.BoolFlag{
			Name:  "no-history",
			Usage: "do not record finished countdowns",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "write debug logs to this file",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "config file (default: $XDG_CONFIG_HOME/countdown/config.yaml)",
		},
	}

	historyFlags = []cli.Flag{
		cli.IntFlag{
			Name:  "limit, n",
			Usage: "number of countdowns to show",
			Value: config.HistoryListLimit,
		},
		cli.Int64Flag{
			Name:  "delete",
			Usage: "remove the entry with this id from the history",
		},
	}

	reportFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "out, o",
			Usage: "output file (default: $XDG_DOCUMENTS_DIR/COUNTDOWN/countdown_<date>.pdf)",
		},
		cli.StringFlag{
			Name:  "date, d",
			Usage: "day to report as YYYY-MM-DD (default: today)",
		},
	}
)

// loadConfig reads the config file and lays the command line on top of it.
func loadConfig(c *cli.Context, fs afero.Fs) (*config.Config, error) {
	mgr, err := config.NewManager(fs, c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	cfg := mgr.GetConfig()
	applyFlags(c, cfg)
	cfg.Normalize()
	return cfg, nil
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.GlobalIsSet("hours") {
		cfg.Timer.Hours = c.GlobalInt("hours")
	}
	if c.GlobalIsSet("minutes") {
		cfg.Timer.Minutes = c.GlobalInt("minutes")
	}
	if c.GlobalIsSet("seconds") {
		cfg.Timer.Seconds = c.GlobalInt("seconds")
	}
	if c.GlobalIsSet("theme") {
		cfg.UI.Theme = c.GlobalString("theme")
	}
	if c.GlobalIsSet("sound") {
		cfg.Alert.Sound = c.GlobalString("sound")
	}
	if c.GlobalBool("mute") {
		cfg.Alert.Mute = true
	}
	if c.GlobalBool("no-history") {
		cfg.History.Enabled = false
	}
}

// logPath picks the debug log file. --log wins over the environment switch.
func logPath(flag string, getenv func(string) string) string {
	if flag != "" {
		return flag
	}
	if getenv(config.DebugEnvVar) != "" {
		return filepath.Join(util.DataDir(config.AppName), "debug.log")
	}
	return ""
}

func validateTheme(name string) error {
	if _, ok := tui.Themes[name]; !ok {
		return fmt.Errorf("unknown theme %q (have %s)", name, strings.Join(tui.ThemeNames(), ", "))
	}
	return nil
}
