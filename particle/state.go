// Package particle builds flat, world-aligned sprite particles: the
// per-tick billboard state, the quad geometry and the vertex records handed
// to the renderer.
package particle

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// BillboardState is the simulation state of one particle. Every current
// field has a previous twin so rendering can interpolate between two ticks.
type BillboardState struct {
	Position     mgl64.Vec3
	PrevPosition mgl64.Vec3

	// Radians.
	AngleX, AngleY, AngleZ             float32
	PrevAngleX, PrevAngleY, PrevAngleZ float32

	Age    int
	MaxAge int
}

func NewBillboardState(pos mgl64.Vec3, maxAge int) BillboardState {
	return BillboardState{
		Position:     pos,
		PrevPosition: pos,
		MaxAge:       maxAge,
	}
}

// Snapshot copies the current fields into the previous ones. It runs once at
// the start of every tick, before anything overwrites the current values.
func (s *BillboardState) Snapshot() {
	s.PrevPosition = s.Position
	s.PrevAngleX = s.AngleX
	s.PrevAngleY = s.AngleY
	s.PrevAngleZ = s.AngleZ
}

func (s *BillboardState) SetAngleX(radians float32) {
	s.PrevAngleX = s.AngleX
	s.AngleX = radians
}

func (s *BillboardState) SetAngleY(radians float32) {
	s.PrevAngleY = s.AngleY
	s.AngleY = radians
}

func (s *BillboardState) SetAngleZ(radians float32) {
	s.PrevAngleZ = s.AngleZ
	s.AngleZ = radians
}

// Dead reports whether the particle outlived MaxAge.
func (s *BillboardState) Dead() bool {
	return s.Age > s.MaxAge
}

func (s *BillboardState) InterpolatedPosition(tickDelta float32) mgl64.Vec3 {
	t := float64(tickDelta)
	return mgl64.Vec3{
		lerp64(t, s.PrevPosition.X(), s.Position.X()),
		lerp64(t, s.PrevPosition.Y(), s.Position.Y()),
		lerp64(t, s.PrevPosition.Z(), s.Position.Z()),
	}
}

// InterpolatedAngles returns the X, Y and Z angles at tickDelta.
func (s *BillboardState) InterpolatedAngles(tickDelta float32) mgl32.Vec3 {
	return mgl32.Vec3{
		lerp(tickDelta, s.PrevAngleX, s.AngleX),
		lerp(tickDelta, s.PrevAngleY, s.AngleY),
		lerp(tickDelta, s.PrevAngleZ, s.AngleZ),
	}
}

func lerp(t, a, b float32) float32 { return a + (b-a)*t }

func lerp64(t, a, b float64) float64 { return a + (b-a)*t }
