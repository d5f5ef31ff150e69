package particle

import (
	"github.com/gekko3d/lilylib/sprite"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Sheet is the render sheet a particle is batched under.
type Sheet int

const (
	SheetOpaque Sheet = iota
	SheetTranslucent
)

const (
	// DefaultVelocityMultiplier is the per-tick velocity damping of moving
	// particles.
	DefaultVelocityMultiplier = 0.98
	// gravityPerTick is the downward acceleration for gravity strength 1.
	gravityPerTick = 0.04
)

// SpriteProvider picks the frame to show for a given age.
type SpriteProvider interface {
	SpriteForAge(age, maxAge int) sprite.Sprite
}

// Camera is the part of the host camera the geometry needs.
type Camera interface {
	Position() mgl64.Vec3
}

// Behavior is the per-tick update hook. OnTick runs after the particle has
// aged and moved, so angle setters called from it interpolate correctly.
type Behavior interface {
	OnTick(p *FlatParticle)
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(p *FlatParticle)

func (f BehaviorFunc) OnTick(p *FlatParticle) { f(p) }

// LightSource returns the packed light at a world position.
type LightSource func(pos mgl64.Vec3) int32

// FlatParticle is a sprite particle that lies flat in the world instead of
// facing the camera. Its orientation comes from the three angles of its
// BillboardState.
type FlatParticle struct {
	BillboardState

	Velocity           mgl64.Vec3
	Gravity            float32
	VelocityMultiplier float32

	Color [4]float32
	Scale float32

	// Fade replaces the linear fade-out of the second half of life when set.
	Fade ease.TweenFunc
	// SizeCurve scales Scale by a function of life progress in [0,1].
	SizeCurve func(progress float32) float32
	Light     LightSource
	Behavior  Behavior

	sprites SpriteProvider
	sprite  sprite.Sprite
}

// NewFlatParticle creates a stationary particle.
func NewFlatParticle(pos mgl64.Vec3, maxAge int, sprites SpriteProvider) *FlatParticle {
	p := &FlatParticle{
		BillboardState: NewBillboardState(pos, maxAge),
		Color:          [4]float32{1, 1, 1, 1},
		Scale:          0.1,
		sprites:        sprites,
	}
	p.pickSprite()
	return p
}

// NewMovingFlatParticle creates a particle with an initial velocity and the
// default damping.
func NewMovingFlatParticle(pos, velocity mgl64.Vec3, maxAge int, sprites SpriteProvider) *FlatParticle {
	p := NewFlatParticle(pos, maxAge, sprites)
	p.Velocity = velocity
	p.VelocityMultiplier = DefaultVelocityMultiplier
	return p
}

func (p *FlatParticle) RenderSheet() Sheet {
	return SheetTranslucent
}

func (p *FlatParticle) Sprite() sprite.Sprite {
	return p.sprite
}

func (p *FlatParticle) Alpha() float32 {
	return p.Color[3]
}

// Tick advances the particle by one simulation step.
func (p *FlatParticle) Tick() {
	p.Snapshot()

	if p.Age >= p.MaxAge {
		p.Age++
		return
	}
	p.Age++

	p.Velocity[1] -= gravityPerTick * float64(p.Gravity)
	p.Position = p.Position.Add(p.Velocity)
	p.Velocity = p.Velocity.Mul(float64(p.VelocityMultiplier))

	p.pickSprite()
	p.fade()

	if p.Behavior != nil {
		p.Behavior.OnTick(p)
	}
}

func (p *FlatParticle) pickSprite() {
	if p.sprites != nil {
		p.sprite = p.sprites.SpriteForAge(p.Age, p.MaxAge)
	}
}

func (p *FlatParticle) fade() {
	half := p.MaxAge / 2
	if p.Age <= half {
		return
	}
	if p.Fade != nil {
		p.Color[3] = p.Fade(float32(p.Age-half), 1, -1, float32(p.MaxAge-half))
		return
	}
	p.Color[3] = 1 - float32(p.Age-half)/float32(p.MaxAge)
}

// Size is the half-extent of the quad at tickDelta. Progress runs from the
// previous tick's age to the current one, like the interpolated anchor.
func (p *FlatParticle) Size(tickDelta float32) float32 {
	if p.SizeCurve == nil || p.MaxAge <= 0 {
		return p.Scale
	}
	progress := (float32(p.Age-1) + tickDelta) / float32(p.MaxAge)
	progress = min(max(progress, 0), 1)
	return p.Scale * p.SizeCurve(progress)
}

func (p *FlatParticle) Brightness() int32 {
	if p.Light == nil {
		return FullBright
	}
	return p.Light(p.Position)
}

// BuildGeometry emits the particle's quad for the frame at tickDelta.
func (p *FlatParticle) BuildGeometry(out VertexConsumer, camera Camera, tickDelta float32) {
	corners := BuildQuad(&p.BillboardState, camera.Position(), tickDelta, p.Size(tickDelta))
	s := p.sprite
	light := p.Brightness()

	uvs := [4][2]float32{
		{s.MaxU, s.MaxV},
		{s.MaxU, s.MinV},
		{s.MinU, s.MinV},
		{s.MinU, s.MaxV},
	}
	for i, c := range corners {
		out.Vertex(Vertex{
			Pos:   c,
			U:     uvs[i][0],
			V:     uvs[i][1],
			Color: p.Color,
			Light: light,
		})
	}
}

// Spin returns a behavior that turns the particle by a fixed amount of
// radians per tick around each axis.
func Spin(x, y, z float32) Behavior {
	return BehaviorFunc(func(p *FlatParticle) {
		if x != 0 {
			p.SetAngleX(p.AngleX + x)
		}
		if y != 0 {
			p.SetAngleY(p.AngleY + y)
		}
		if z != 0 {
			p.SetAngleZ(p.AngleZ + z)
		}
	})
}
