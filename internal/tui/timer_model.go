package tui

import (
	"context"
	"log"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a TimerModel.
type Options struct {
	Duration      countdown.Duration
	Alerter       countdown.Alerter
	History       database.HistoryRepository
	Theme         string
	TickInterval  time.Duration
	FlashInterval time.Duration
	Logger        *log.Logger
	Now           func() time.Time
}

// TimerModel is the single countdown screen.
type TimerModel struct {
	ctx           context.Context
	ctrl          *countdown.Controller
	fields        [fieldCount]textinput.Model
	focus         int
	progress      progress.Model
	keys          *HandlerRegistry
	theme         Theme
	themeName     string
	history       database.HistoryRepository
	todayCount    int
	startedAt     time.Time
	pulse         bool
	flashOn       bool
	statusMessage string
	statusIsError bool
	tickInterval  time.Duration
	flashInterval time.Duration
	log           *log.Logger
	now           func() time.Time
	width, height int
}

func NewTimerModel(ctx context.Context, opts Options) TimerModel {
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TickInterval
	}
	if opts.FlashInterval <= 0 {
		opts.FlashInterval = config.FlashInterval
	}
	if opts.Logger == nil {
		opts.Logger = util.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Theme == "" {
		opts.Theme = config.DefaultTheme
	}

	ctrl := countdown.New(opts.Duration, opts.Alerter)
	m := TimerModel{
		ctx:           ctx,
		ctrl:          ctrl,
		fields:        newFields(ctrl.Duration()),
		focus:         fieldMinutes,
		progress:      progress.New(progress.WithDefaultGradient()),
		keys:          defaultRegistry(),
		theme:         ResolveTheme(opts.Theme),
		themeName:     opts.Theme,
		history:       opts.History,
		tickInterval:  opts.TickInterval,
		flashInterval: opts.FlashInterval,
		log:           opts.Logger,
		now:           opts.Now,
	}
	m.progress.Width = config.ProgressWidth
	m.progress.ShowPercentage = false
	m.syncFieldFocus()
	return m
}

func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadTodayCmd(m.ctx, m.history, m.now()))
}

// Controller exposes the state machine for the root model and tests.
func (m TimerModel) Controller() *countdown.Controller {
	return m.ctrl
}

func (m TimerModel) ThemeName() string {
	return m.themeName
}

func (m TimerModel) startCountdown() (TimerModel, tea.Cmd) {
	fromReady := m.ctrl.State() == countdown.Ready
	if !m.ctrl.Start() {
		return m, nil
	}
	if fromReady || m.startedAt.IsZero() {
		m.startedAt = m.now()
	}
	m.flashOn = false
	m.pulse = true
	m.clearStatus()
	m.syncFieldFocus()
	m.log.Printf("countdown started: %d seconds left", m.ctrl.Remaining())
	return m, tickCmd(m.ctrl.Epoch(), m.tickInterval)
}

func (m TimerModel) pauseCountdown() (TimerModel, tea.Cmd) {
	if !m.ctrl.Pause() {
		return m, nil
	}
	m.pulse = false
	m.log.Printf("countdown paused: %d seconds left", m.ctrl.Remaining())
	return m, m.syncFieldFocus()
}

func (m TimerModel) resetCountdown() (TimerModel, tea.Cmd) {
	m.ctrl.Reset()
	m.pulse = false
	m.flashOn = false
	m.startedAt = time.Time{}
	m.clearStatus()
	m.log.Printf("countdown reset to %s", m.ctrl.Duration())
	return m, m.syncFieldFocus()
}

func (m *TimerModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *TimerModel) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}
