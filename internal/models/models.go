package models

import "time"

// Run is one countdown that reached zero.
type Run struct {
	ID              int64
	DurationSeconds int
	StartedAt       time.Time
	FinishedAt      time.Time
}

// Duration returns the configured length of the run.
func (r Run) Duration() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}

// DaySummary aggregates the runs finished on one calendar day.
type DaySummary struct {
	Date         string
	Runs         []Run
	TotalSeconds int
}
