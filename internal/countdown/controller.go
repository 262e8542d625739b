// Package countdown holds the timer state machine: Ready, Running, Paused
// and Expired, driven by externally scheduled ticks.
package countdown

// RunState is the controller's lifecycle state.
type RunState int

const (
	Ready RunState = iota
	Running
	Paused
	Expired
)

func (s RunState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Status readouts.
const (
	StatusReady   = "Ready to start"
	StatusRunning = "Running..."
	StatusPaused  = "Paused"
	StatusExpired = "Time's up! (Reset to Stop)"
)

// TickResult reports what a tick did.
type TickResult int

const (
	TickIgnored TickResult = iota
	TickCounted
	TickExpired
)

// Controller owns the countdown. It is not safe for concurrent use; callers
// drive it from a single event loop.
//
// Every Start, Pause and Reset advances the epoch. The caller tags each
// scheduled tick with the epoch current at scheduling time, and Tick drops
// anything older, so at most one tick chain is ever live.
type Controller struct {
	duration  Duration
	remaining int
	state     RunState
	epoch     int
	alerter   Alerter
}

func New(d Duration, a Alerter) *Controller {
	if a == nil {
		a = nopAlerter{}
	}
	d = d.Clamp()
	return &Controller{
		duration:  d,
		remaining: d.TotalSeconds(),
		state:     Ready,
		alerter:   a,
	}
}

func (c *Controller) State() RunState    { return c.state }
func (c *Controller) Remaining() int     { return c.remaining }
func (c *Controller) Duration() Duration { return c.duration }
func (c *Controller) Epoch() int         { return c.epoch }

// Elapsed is the number of seconds counted since the last reset.
func (c *Controller) Elapsed() int {
	if e := c.duration.TotalSeconds() - c.remaining; e > 0 {
		return e
	}
	return 0
}

func (c *Controller) Status() string {
	switch c.state {
	case Running:
		return StatusRunning
	case Paused:
		return StatusPaused
	case Expired:
		return StatusExpired
	default:
		return StatusReady
	}
}

func (c *Controller) CanStart() bool {
	return c.state != Running && c.state != Expired && c.remaining > 0
}

func (c *Controller) CanPause() bool {
	return c.state == Running
}

// Editable reports whether the duration fields accept input.
func (c *Controller) Editable() bool {
	return c.state != Running
}

// SetDuration stores a new clamped duration. It is refused while running.
// In Ready or Paused the remaining time follows the new total right away;
// an expired countdown keeps zero until Reset.
func (c *Controller) SetDuration(d Duration) bool {
	if !c.Editable() {
		return false
	}
	c.duration = d.Clamp()
	if c.state == Ready || c.state == Paused {
		c.remaining = c.duration.TotalSeconds()
	}
	return true
}

func (c *Controller) SetHours(h int) bool {
	d := c.duration
	d.Hours = h
	return c.SetDuration(d)
}

func (c *Controller) SetMinutes(m int) bool {
	d := c.duration
	d.Minutes = m
	return c.SetDuration(d)
}

func (c *Controller) SetSeconds(s int) bool {
	d := c.duration
	d.Seconds = s
	return c.SetDuration(d)
}

// Start moves Ready or Paused into Running. It is a no-op with nothing left
// on the clock.
func (c *Controller) Start() bool {
	if !c.CanStart() {
		return false
	}
	c.state = Running
	c.epoch++
	return true
}

func (c *Controller) Pause() bool {
	if !c.CanPause() {
		return false
	}
	c.state = Paused
	c.epoch++
	return true
}

// Reset returns to Ready with the full duration and silences the alert.
func (c *Controller) Reset() {
	c.state = Ready
	c.remaining = c.duration.TotalSeconds()
	c.epoch++
	c.alerter.Silence()
}

// Tick counts one second for the given epoch.
func (c *Controller) Tick(epoch int) TickResult {
	if epoch != c.epoch || c.state != Running {
		return TickIgnored
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining > 0 {
		return TickCounted
	}
	c.state = Expired
	c.alerter.Alert()
	return TickExpired
}
