package main

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/countdown/internal/tui"
)

var (
	version = tui.AppVersion
	commit  string
	date    string
)

func main() {
	if commit != "" {
		tui.GitCommit = commit
	}
	if date != "" {
		tui.BuildTime = date
	}
	if err := newApp(defaultEnv()).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "countdown: %s\n", err.Error())
		os.Exit(1)
	}
}
