package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/report"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"
)

const dayLayout = "2006-01-02"

func openHistory(ctx context.Context, c *cli.Context, e env) (*database.Database, error) {
	cfg, err := loadConfig(c, e.fs)
	if err != nil {
		return nil, err
	}
	return database.Open(ctx, cfg.HistoryPath())
}

func listHistory(c *cli.Context, e env) error {
	ctx := context.Background()
	db, err := openHistory(ctx, c, e)
	if err != nil {
		return err
	}
	defer db.Close()

	if id := c.Int64("delete"); id > 0 {
		if err := db.DeleteRun(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "Removed countdown #%d\n", id)
		return nil
	}

	runs, err := db.RecentRuns(ctx, c.Int("limit"))
	if err != nil {
		return err
	}
	printRuns(e.stdout, runs, e.now())
	return nil
}

func printRuns(w io.Writer, runs []models.Run, now time.Time) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "countdown: no finished countdowns yet")
		return
	}
	fmt.Fprintln(w, "Finished countdowns:")
	fmt.Fprintln(w)
	total := 0
	for i, r := range runs {
		total += r.DurationSeconds
		fmt.Fprintf(w, "%3d. #%-4d %-10s finished %s\n",
			i+1, r.ID, countdown.FromSeconds(r.DurationSeconds), humanize.RelTime(r.FinishedAt, now, "ago", "from now"))
	}
	fmt.Fprintf(w, "\n%s counted over %s\n", report.FormatClock(total), pluralRuns(len(runs)))
}

func pluralRuns(n int) string {
	if n == 1 {
		return "1 countdown"
	}
	return humanize.Comma(int64(n)) + " countdowns"
}

func writeReport(c *cli.Context, e env) error {
	day := e.now()
	if raw := c.String("date"); raw != "" {
		parsed, err := time.ParseInLocation(dayLayout, raw, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", raw)
		}
		day = parsed
	}

	ctx := context.Background()
	db, err := openHistory(ctx, c, e)
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := db.DaySummary(ctx, day)
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		out = filepath.Join(util.ReportsDir(config.AppName), report.FileName(summary.Date))
	}
	path, err := report.WriteFile(out, summary)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "Report written to %s (%s)\n", path, pluralRuns(len(summary.Runs)))
	return nil
}
