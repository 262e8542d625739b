package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

const dayLayout = "2006-01-02"

// RecordRun stores a finished countdown and returns its ID.
func (d *Database) RecordRun(ctx context.Context, run models.Run) (int64, error) {
	if d == nil || d.DB == nil {
		return 0, wrapRunErr("record", 0, ErrClosed)
	}
	if run.DurationSeconds <= 0 || run.FinishedAt.IsZero() {
		return 0, wrapRunErr("record", 0, ErrInvalidRun)
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = run.FinishedAt.Add(-run.Duration())
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO runs (duration_seconds, started_at, finished_at, day) VALUES (?, ?, ?, ?)",
		run.DurationSeconds, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.FinishedAt.Local().Format(dayLayout))
	if err != nil {
		return 0, wrapRunErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapRunErr("record", 0, err)
	}
	return id, nil
}

// RecentRuns lists the latest finished runs, newest first.
func (d *Database) RecentRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, duration_seconds, started_at, finished_at
		FROM runs
		ORDER BY finished_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	return scanRuns(rows)
}

// RunsForDay lists runs finished on the local calendar day of day, oldest first.
func (d *Database) RunsForDay(ctx context.Context, day time.Time) ([]models.Run, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, duration_seconds, started_at, finished_at
		FROM runs
		WHERE day = ?
		ORDER BY finished_at ASC, id ASC`, day.Local().Format(dayLayout))
	if err != nil {
		return nil, wrapRunErr("list day", 0, err)
	}
	return scanRuns(rows)
}

func (d *Database) CountForDay(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE day = ?", day.Local().Format(dayLayout)).Scan(&n)
	if err != nil {
		return 0, wrapRunErr("count", 0, err)
	}
	return n, nil
}

// DaySummary bundles the runs of one day with their total length.
func (d *Database) DaySummary(ctx context.Context, day time.Time) (models.DaySummary, error) {
	runs, err := d.RunsForDay(ctx, day)
	if err != nil {
		return models.DaySummary{}, err
	}
	summary := models.DaySummary{Date: day.Local().Format(dayLayout), Runs: runs}
	for _, r := range runs {
		summary.TotalSeconds += r.DurationSeconds
	}
	return summary, nil
}

// DeleteRun removes a single history entry.
func (d *Database) DeleteRun(ctx context.Context, id int64) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return wrapRunErr("delete", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapRunErr("delete", id, err)
	}
	if n == 0 {
		return wrapRunErr("delete", id, sql.ErrNoRows)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]models.Run, error) {
	defer rows.Close()
	var runs []models.Run
	for rows.Next() {
		var r models.Run
		if err := rows.Scan(&r.ID, &r.DurationSeconds, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = r.StartedAt.Local()
		r.FinishedAt = r.FinishedAt.Local()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
