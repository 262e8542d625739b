// Package alert plays the expiry alarm. Sound goes through the system
// speaker; when that is unavailable a terminal bell pulse stands in.
package alert

import (
	"log"

	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/util"
)

// Player produces the looping alarm sound.
//
//go:generate mockgen -source=alert.go -destination=mock_alert_test.go -package=alert
type Player interface {
	Play() error
	Stop()
}

// Pulser is the fallback when playback fails.
type Pulser interface {
	Pulse()
}

// Notifier turns countdown expiry into sound, falling back to a pulse.
// Playback errors are logged and never returned.
type Notifier struct {
	player   Player
	fallback Pulser
	muted    bool
	log      *log.Logger
}

type Option func(*Notifier)

// WithMute skips the player and goes straight to the fallback pulse.
func WithMute(muted bool) Option {
	return func(n *Notifier) { n.muted = muted }
}

func WithLogger(l *log.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.log = l
		}
	}
}

func NewNotifier(player Player, fallback Pulser, opts ...Option) *Notifier {
	n := &Notifier{
		player:   player,
		fallback: fallback,
		log:      util.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var _ countdown.Alerter = (*Notifier)(nil)

func (n *Notifier) Alert() {
	if n.player != nil && !n.muted {
		err := n.player.Play()
		if err == nil {
			return
		}
		util.LogError(n.log, "alert playback unavailable", err)
	}
	if n.fallback != nil {
		n.fallback.Pulse()
	}
}

func (n *Notifier) Silence() {
	if n.player != nil {
		n.player.Stop()
	}
}
