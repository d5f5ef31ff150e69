package lilylib

import (
	"time"
)

const (
	DefaultTickRate = 20
	// maxTicksPerFrame bounds catch-up after a stall; the backlog beyond it
	// is dropped.
	maxTicksPerFrame = 10
)

// Time splits wall-clock frames into fixed simulation ticks. TickDelta is
// the fraction of the next tick already elapsed, used to interpolate
// rendering between the last two ticks.
type Time struct {
	Now        time.Time
	Dt         time.Duration
	TickRate   int
	TicksDue   int
	TickDelta  float32
	TotalTicks uint64

	clock func() time.Time
	acc   time.Duration
}

func (t *Time) TickDuration() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// advance moves the clock to now and recomputes the due ticks.
func (t *Time) advance(now time.Time) {
	t.Dt = now.Sub(t.Now)
	if t.Dt < 0 {
		t.Dt = 0
	}
	t.Now = now

	tick := t.TickDuration()
	t.acc += t.Dt
	due := int(t.acc / tick)
	t.acc -= time.Duration(due) * tick
	if due > maxTicksPerFrame {
		due = maxTicksPerFrame
	}
	t.TicksDue = due
	t.TotalTicks += uint64(due)
	t.TickDelta = float32(t.acc) / float32(tick)
}

type TimeModule struct {
	// TickRate is ticks per second; DefaultTickRate when zero.
	TickRate int
	// Clock replaces time.Now, mostly for tests.
	Clock func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	rate := mod.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}
	cmd.AddResources(&Time{
		Now:      clock(),
		TickRate: rate,
		clock:    clock,
	})
	app.UseSystem(System(timeSystem).InStage(PreUpdate))
}

func timeSystem(t *Time) {
	t.advance(t.clock())
}
