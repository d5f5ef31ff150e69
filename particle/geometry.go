package particle

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// quadCorners is a flat, upward-facing square of half-extent 1 in the X-Z
// plane, in winding order.
var quadCorners = [4]mgl32.Vec3{
	{-1, 0, -1},
	{-1, 0, 1},
	{1, 0, 1},
	{1, 0, -1},
}

// Rotation composes the X, Y and Z rotations in that order (qX * qY * qZ).
// Rotations do not commute; renderers rely on this exact order.
func Rotation(angles mgl32.Vec3) mgl32.Quat {
	q := mgl32.QuatRotate(angles.X(), mgl32.Vec3{1, 0, 0})
	q = q.Mul(mgl32.QuatRotate(angles.Y(), mgl32.Vec3{0, 1, 0}))
	return q.Mul(mgl32.QuatRotate(angles.Z(), mgl32.Vec3{0, 0, 1}))
}

// BuildQuad returns the four corners of the particle at tickDelta, relative
// to the camera. The anchor is interpolated in world precision before the
// camera is subtracted so particles far from the origin don't jitter.
// tickDelta outside [0,1] extrapolates.
func BuildQuad(s *BillboardState, camera mgl64.Vec3, tickDelta float32, size float32) [4]mgl32.Vec3 {
	anchor := s.InterpolatedPosition(tickDelta).Sub(camera)
	offset := mgl32.Vec3{float32(anchor.X()), float32(anchor.Y()), float32(anchor.Z())}

	q := Rotation(s.InterpolatedAngles(tickDelta))

	var out [4]mgl32.Vec3
	for i, c := range quadCorners {
		out[i] = q.Rotate(c).Mul(size).Add(offset)
	}
	return out
}
