// Package render draws item-backed entities such as thrown or floating items
// through the host's item renderer.
package render

import "github.com/google/uuid"

// BillboardRenderable exposes the pose of an entity drawn as a loose item:
// rotations in degrees and offsets in blocks inside the entity's bounding box,
// all at a render tickDelta.
type BillboardRenderable interface {
	XRotation(tickDelta float32) float32
	YRotation(tickDelta float32) float32
	ZRotation(tickDelta float32) float32
	XOffset(tickDelta float32) float32
	YOffset(tickDelta float32) float32
	ZOffset(tickDelta float32) float32
}

// ItemStack is the host's item stack; the renderer only passes it through.
type ItemStack interface {
	Empty() bool
}

// WorldItemEntity is an entity represented by an item that is not meant to
// face the camera, like a dropped item.
type WorldItemEntity interface {
	BillboardRenderable
	EntityID() uuid.UUID
	Stack() ItemStack
}

// StaticPose is embedded by entities that keep the default upright pose.
// Override individual methods to animate.
type StaticPose struct{}

func (StaticPose) XRotation(float32) float32 { return 0 }
func (StaticPose) YRotation(float32) float32 { return 0 }
func (StaticPose) ZRotation(float32) float32 { return 0 }
func (StaticPose) XOffset(float32) float32   { return 0 }
func (StaticPose) YOffset(float32) float32   { return 0 }
func (StaticPose) ZOffset(float32) float32   { return 0 }
