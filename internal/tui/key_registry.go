package tui

import (
	"sort"

	"github.com/akyairhashvil/countdown/internal/countdown"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m TimerModel, key string) (TimerModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Label       string
	Handler     KeyHandler
	Description string
	States      []countdown.RunState
	Enabled     func(c *countdown.Controller) bool
	Priority    int
}

func (b KeyBinding) AppliesToState(state countdown.RunState) bool {
	if len(b.States) == 0 {
		return true
	}
	for _, s := range b.States {
		if s == state {
			return true
		}
	}
	return false
}

func (b KeyBinding) label() string {
	if b.Label != "" {
		return b.Label
	}
	return b.Key
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m TimerModel, key string) (TimerModel, tea.Cmd, bool) {
	state := m.ctrl.State()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToState(state) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// HelpItem is one entry of the footer help line.
type HelpItem struct {
	Label       string
	Description string
	Enabled     bool
}

// HelpFor lists described bindings once per label. Bindings that do not
// apply to the controller's state are reported disabled.
func (r *HandlerRegistry) HelpFor(c *countdown.Controller) []HelpItem {
	seen := make(map[string]bool)
	var items []HelpItem
	for _, b := range r.bindings {
		if b.Description == "" || seen[b.label()] {
			continue
		}
		seen[b.label()] = true
		enabled := b.AppliesToState(c.State())
		if enabled && b.Enabled != nil {
			enabled = b.Enabled(c)
		}
		items = append(items, HelpItem{Label: b.label(), Description: b.Description, Enabled: enabled})
	}
	return items
}

// All returns every binding in priority order.
func (r *HandlerRegistry) All() []KeyBinding {
	out := make([]KeyBinding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

var editableStates = []countdown.RunState{countdown.Ready, countdown.Paused, countdown.Expired}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	start := func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
		next, cmd := m.startCountdown()
		return next, cmd, true
	}
	canStart := func(c *countdown.Controller) bool { return c.CanStart() }

	r.Register(KeyBinding{Key: "s", Handler: start, Description: "start", Enabled: canStart, Priority: 10,
		States: []countdown.RunState{countdown.Ready, countdown.Paused}})
	r.Register(KeyBinding{Key: "enter", Handler: start, Priority: 10,
		States: []countdown.RunState{countdown.Ready, countdown.Paused}})
	r.Register(KeyBinding{Key: "p", Description: "pause", Priority: 10,
		States: []countdown.RunState{countdown.Running},
		Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
			next, cmd := m.pauseCountdown()
			return next, cmd, true
		}})
	toggle := func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
		if m.ctrl.State() == countdown.Running {
			next, cmd := m.pauseCountdown()
			return next, cmd, true
		}
		next, cmd := m.startCountdown()
		return next, cmd, true
	}
	for _, k := range []string{" ", "space"} {
		r.Register(KeyBinding{Key: k, Label: "space", Description: "start/pause", Priority: 9, Handler: toggle,
			States: []countdown.RunState{countdown.Ready, countdown.Running, countdown.Paused}})
	}
	r.Register(KeyBinding{Key: "r", Description: "reset", Priority: 10,
		Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
			next, cmd := m.resetCountdown()
			return next, cmd, true
		}})
	r.Register(KeyBinding{Key: "tab", Label: "tab", Description: "field", Priority: 5, States: editableStates,
		Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
			next, cmd := m.moveFocus(1)
			return next, cmd, true
		}})
	r.Register(KeyBinding{Key: "shift+tab", Priority: 5, States: editableStates,
		Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
			next, cmd := m.moveFocus(-1)
			return next, cmd, true
		}})
	for _, k := range []string{"up", "k"} {
		r.Register(KeyBinding{Key: k, Label: "↑/↓", Description: "adjust", Priority: 5, States: editableStates,
			Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
				return m.adjustField(1), nil, true
			}})
	}
	for _, k := range []string{"down", "j"} {
		r.Register(KeyBinding{Key: k, Label: "↑/↓", Priority: 5, States: editableStates,
			Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
				return m.adjustField(-1), nil, true
			}})
	}
	r.Register(KeyBinding{Key: "t", Description: "theme", Priority: 1,
		Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
			m.themeName = nextThemeName(m.themeName)
			m.theme = ResolveTheme(m.themeName)
			return m, nil, true
		}})
	r.Register(KeyBinding{Key: "q", Description: "quit", Priority: 0,
		Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
			return m, tea.Quit, true
		}})
	return r
}
