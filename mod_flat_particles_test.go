package lilylib

import (
	"testing"
	"time"

	"github.com/gekko3d/lilylib/particle"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatParticleModule_TicksRendersAndRemoves(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	app := newTestApp(clock, FlatParticleModule{})
	cmd := app.Commands()

	p := particle.NewMovingFlatParticle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 2, nil)
	p.VelocityMultiplier = 1
	p.Scale = 1
	eid := cmd.AddEntity(FlatParticleComponent{Particle: p})
	cmd.AddEntity(CameraComponent{Eye: mgl64.Vec3{0, 5, 0}})
	app.FlushCommands()

	frame := Resource[FrameVertices](app)
	require.NotNil(t, frame)

	// One tick, halfway into the next.
	clock.Advance(75 * time.Millisecond)
	app.Step()
	assert.Equal(t, 1, p.Age)
	require.Equal(t, 1, frame.Quads())
	// Anchor is halfway between x = 0 and x = 1, 5 below the camera.
	assert.InDelta(t, -0.5, frame.Vertices[0].Pos.X(), 1e-5)
	assert.InDelta(t, -5, frame.Vertices[0].Pos.Y(), 1e-5)
	assert.InDelta(t, 1.5, frame.Vertices[2].Pos.X(), 1e-5)

	// Two more ticks: age 2, then death.
	clock.Advance(100 * time.Millisecond)
	app.Step()
	assert.True(t, p.Dead())
	assert.Equal(t, 0, frame.Quads(), "dead particles are not drawn")
	assert.Nil(t, app.Commands().GetAllComponents(eid), "dead particles are removed")
}

func TestFlatParticleModule_NoCameraNoGeometry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	app := newTestApp(clock, FlatParticleModule{})
	app.Commands().AddEntity(FlatParticleComponent{Particle: particle.NewFlatParticle(mgl64.Vec3{}, 10, nil)})
	app.FlushCommands()

	clock.Advance(50 * time.Millisecond)
	app.Step()
	assert.Equal(t, 0, Resource[FrameVertices](app).Quads())
}
