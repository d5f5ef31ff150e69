package lilylib

import (
	"github.com/gekko3d/lilylib/particle"
	"github.com/go-gl/mathgl/mgl64"
)

// FlatParticleComponent attaches a flat particle to an entity. The entity is
// removed once the particle dies.
type FlatParticleComponent struct {
	Particle *particle.FlatParticle
}

// CameraComponent marks the entity whose eye position geometry is built
// relative to. The first one found wins.
type CameraComponent struct {
	Eye mgl64.Vec3
}

func (c CameraComponent) Position() mgl64.Vec3 { return c.Eye }

// FrameVertices collects the particle vertices of the current frame. It is
// cleared at the start of every Render stage.
type FrameVertices struct {
	particle.VertexBuffer
}

type FlatParticleModule struct{}

func (FlatParticleModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&FrameVertices{})
	app.UseSystem(System(flatParticleTickSystem).InStage(Update))
	app.UseSystem(System(flatParticleRenderSystem).InStage(Render))
}

func flatParticleTickSystem(t *Time, cmd *Commands) {
	for i := 0; i < t.TicksDue; i++ {
		MakeQuery1[FlatParticleComponent](cmd).Map(func(eid EntityId, fp *FlatParticleComponent) bool {
			p := fp.Particle
			if p == nil || p.Dead() {
				return true
			}
			p.Tick()
			if p.Dead() {
				cmd.RemoveEntity(eid)
			}
			return true
		})
	}
}

func flatParticleRenderSystem(t *Time, out *FrameVertices, cmd *Commands) {
	out.Reset()

	cam, ok := findCamera(cmd)
	if !ok {
		return
	}
	MakeQuery1[FlatParticleComponent](cmd).Map(func(eid EntityId, fp *FlatParticleComponent) bool {
		if fp.Particle != nil && !fp.Particle.Dead() {
			fp.Particle.BuildGeometry(out, cam, t.TickDelta)
		}
		return true
	})
}

func findCamera(cmd *Commands) (CameraComponent, bool) {
	var cam CameraComponent
	found := false
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, c *CameraComponent) bool {
		cam = *c
		found = true
		return false
	})
	return cam, found
}
