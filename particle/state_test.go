package particle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewBillboardState(t *testing.T) {
	s := NewBillboardState(mgl64.Vec3{1, 2, 3}, 20)

	assert.Equal(t, s.Position, s.PrevPosition)
	assert.Equal(t, 0, s.Age)
	assert.Equal(t, 20, s.MaxAge)
	assert.False(t, s.Dead())
}

func TestBillboardState_AngleSettersAreIndependent(t *testing.T) {
	s := NewBillboardState(mgl64.Vec3{}, 20)

	s.SetAngleX(1)
	s.SetAngleY(2)
	s.SetAngleZ(3)
	s.SetAngleY(5)

	assert.Equal(t, float32(0), s.PrevAngleX)
	assert.Equal(t, float32(1), s.AngleX)
	assert.Equal(t, float32(2), s.PrevAngleY)
	assert.Equal(t, float32(5), s.AngleY)
	assert.Equal(t, float32(0), s.PrevAngleZ)
	assert.Equal(t, float32(3), s.AngleZ)
}

func TestBillboardState_Snapshot(t *testing.T) {
	s := NewBillboardState(mgl64.Vec3{}, 20)
	s.Position = mgl64.Vec3{4, 5, 6}
	s.AngleX, s.AngleY, s.AngleZ = 0.1, 0.2, 0.3

	s.Snapshot()

	assert.Equal(t, s.Position, s.PrevPosition)
	assert.Equal(t, s.AngleX, s.PrevAngleX)
	assert.Equal(t, s.AngleY, s.PrevAngleY)
	assert.Equal(t, s.AngleZ, s.PrevAngleZ)
}

func TestBillboardState_Interpolation(t *testing.T) {
	s := NewBillboardState(mgl64.Vec3{}, 20)
	s.Position = mgl64.Vec3{2, 4, 8}
	s.SetAngleZ(1)

	assert.Equal(t, mgl64.Vec3{0, 0, 0}, s.InterpolatedPosition(0))
	assert.Equal(t, mgl64.Vec3{1, 2, 4}, s.InterpolatedPosition(0.5))
	assert.Equal(t, mgl64.Vec3{2, 4, 8}, s.InterpolatedPosition(1))
	assert.InDelta(t, 0.25, s.InterpolatedAngles(0.25).Z(), eps)
}

func TestBillboardState_Dead(t *testing.T) {
	s := NewBillboardState(mgl64.Vec3{}, 3)
	s.Age = 3
	assert.False(t, s.Dead())
	s.Age = 4
	assert.True(t, s.Dead())
}
