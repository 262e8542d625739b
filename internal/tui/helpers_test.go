package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type countingAlerter struct {
	alerts   int
	silences int
}

func (a *countingAlerter) Alert()   { a.alerts++ }
func (a *countingAlerter) Silence() { a.silences++ }

type fakeHistory struct {
	runs     []models.Run
	err      error
	countErr error
}

func (f *fakeHistory) RecordRun(ctx context.Context, run models.Run) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

func (f *fakeHistory) RecentRuns(ctx context.Context, limit int) ([]models.Run, error) {
	return f.runs, f.err
}

func (f *fakeHistory) RunsForDay(ctx context.Context, day time.Time) ([]models.Run, error) {
	return f.runs, f.err
}

func (f *fakeHistory) CountForDay(ctx context.Context, day time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.runs), nil
}

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)

func setupTimer(t *testing.T, d countdown.Duration) (TimerModel, *countingAlerter) {
	t.Helper()
	alerter := &countingAlerter{}
	m := NewTimerModel(context.Background(), Options{
		Duration:      d,
		Alerter:       alerter,
		TickInterval:  time.Millisecond,
		FlashInterval: time.Millisecond,
		Now:           func() time.Time { return fixedNow },
	})
	return m, alerter
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m TimerModel, msgs ...tea.KeyMsg) TimerModel {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

// tick delivers one beat for the controller's current epoch.
func tick(m TimerModel) (TimerModel, tea.Cmd) {
	return m.Update(TickMsg{Epoch: m.ctrl.Epoch(), Time: fixedNow})
}
