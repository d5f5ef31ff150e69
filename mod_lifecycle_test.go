package lilylib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleModule_RemovesAfterTicks(t *testing.T) {
	type Thrown struct{}
	clock := &fakeClock{now: time.Unix(0, 0)}
	app := newTestApp(clock, LifecycleModule{})
	cmd := app.Commands()
	eid := cmd.AddEntity(Thrown{}, LifetimeComponent{TicksLeft: 3})
	app.FlushCommands()

	clock.Advance(100 * time.Millisecond)
	app.Step()
	assert.NotNil(t, cmd.GetAllComponents(eid))

	clock.Advance(50 * time.Millisecond)
	app.Step()
	assert.Nil(t, cmd.GetAllComponents(eid))
}
