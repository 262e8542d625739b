package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one beat of the countdown, tagged with the controller epoch
// that scheduled it.
type TickMsg struct {
	Epoch int
	Time  time.Time
}

// FlashMsg toggles the expiry flash.
type FlashMsg struct {
	Epoch int
}

type historyMsg struct {
	Count int
	Err   error
}

func tickCmd(epoch int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return TickMsg{Epoch: epoch, Time: t} })
}

func flashCmd(epoch int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return FlashMsg{Epoch: epoch} })
}

func loadTodayCmd(ctx context.Context, repo database.HistoryRepository, day time.Time) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := repo.CountForDay(ctx, day)
		return historyMsg{Count: n, Err: err}
	}
}

func recordRunCmd(ctx context.Context, repo database.HistoryRepository, run models.Run) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		if _, err := repo.RecordRun(ctx, run); err != nil {
			return historyMsg{Count: -1, Err: err}
		}
		n, err := repo.CountForDay(ctx, run.FinishedAt)
		return historyMsg{Count: n, Err: err}
	}
}
