package testutil

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
)

// ControllerBuilder provides a fluent API for controllers in a given state.
type ControllerBuilder struct {
	duration countdown.Duration
	alerter  countdown.Alerter
	ticks    int
	paused   bool
	started  bool
}

func NewController() *ControllerBuilder {
	return &ControllerBuilder{duration: countdown.Duration{Seconds: 10}}
}

func (b *ControllerBuilder) WithDuration(h, m, s int) *ControllerBuilder {
	b.duration = countdown.Duration{Hours: h, Minutes: m, Seconds: s}
	return b
}

func (b *ControllerBuilder) WithAlerter(a countdown.Alerter) *ControllerBuilder {
	b.alerter = a
	return b
}

// Running starts the countdown and counts n ticks.
func (b *ControllerBuilder) Running(n int) *ControllerBuilder {
	b.started = true
	b.ticks = n
	return b
}

// Paused starts, counts n ticks, then pauses.
func (b *ControllerBuilder) Paused(n int) *ControllerBuilder {
	b.Running(n)
	b.paused = true
	return b
}

// Expired runs the countdown to zero.
func (b *ControllerBuilder) Expired() *ControllerBuilder {
	return b.Running(b.duration.TotalSeconds())
}

func (b *ControllerBuilder) Build() *countdown.Controller {
	c := countdown.New(b.duration, b.alerter)
	if !b.started {
		return c
	}
	c.Start()
	for i := 0; i < b.ticks; i++ {
		c.Tick(c.Epoch())
	}
	if b.paused {
		c.Pause()
	}
	return c
}

// RunBuilder provides a fluent API for history entries.
type RunBuilder struct {
	run models.Run
}

func NewRun() *RunBuilder {
	now := time.Now()
	return &RunBuilder{
		run: models.Run{
			DurationSeconds: 300,
			StartedAt:       now.Add(-5 * time.Minute),
			FinishedAt:      now,
		},
	}
}

func (b *RunBuilder) WithSeconds(s int) *RunBuilder {
	b.run.DurationSeconds = s
	b.run.StartedAt = b.run.FinishedAt.Add(-time.Duration(s) * time.Second)
	return b
}

func (b *RunBuilder) FinishedAt(t time.Time) *RunBuilder {
	b.run.FinishedAt = t
	b.run.StartedAt = t.Add(-b.run.Duration())
	return b
}

func (b *RunBuilder) Build() models.Run {
	return b.run
}
