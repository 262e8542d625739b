package alert

import (
	"io"
	"sync"
	"time"
)

// VibratePattern alternates on and off spans, starting with on.
var VibratePattern = []time.Duration{
	200 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
}

// Bell rings the terminal bell once per "on" span of its pattern.
type Bell struct {
	mu      sync.Mutex
	out     io.Writer
	pattern []time.Duration
	after   func(time.Duration, func())
}

func NewBell(out io.Writer) *Bell {
	return &Bell{
		out:     out,
		pattern: VibratePattern,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

func (b *Bell) Pulse() {
	var offset time.Duration
	for i, span := range b.pattern {
		if i%2 == 0 {
			b.after(offset, b.ring)
		}
		offset += span
	}
}

func (b *Bell) ring() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.out, "\a")
}
