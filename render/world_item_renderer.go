package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// BlockAtlasTexture is the atlas item models are drawn from.
const BlockAtlasTexture = "minecraft:textures/atlas/blocks.png"

// DefaultOverlay is the packed overlay UV for "no hurt/flash tint".
const DefaultOverlay int32 = 10 << 16

// DisplayMode selects which model transform the item model applies.
type DisplayMode int

const (
	ModeNone DisplayMode = iota
	ModeGround
	ModeFixed
	ModeGUI
)

// Model is the host's baked item model.
type Model any

// ConsumerProvider is the host's per-layer vertex consumer lookup. It is
// passed through untouched.
type ConsumerProvider any

// ItemRenderer is implemented by the host.
type ItemRenderer interface {
	Model(stack ItemStack, entityID uuid.UUID) Model
	RenderItem(stack ItemStack, mode DisplayMode, leftHanded bool, matrices *MatrixStack, consumers ConsumerProvider, light, overlay int32, model Model)
}

// EntityRenderer draws one entity for one frame.
type EntityRenderer interface {
	Render(entity any, yaw, tickDelta float32, matrices *MatrixStack, consumers ConsumerProvider, light int32)
}

// WorldItemEntityRenderer renders WorldItemEntity values the way dropped
// items are rendered, posed by the entity itself.
type WorldItemEntityRenderer struct {
	items ItemRenderer
	// Base draws the parts every entity shares (name tag, hitbox). Optional.
	Base EntityRenderer
}

func NewWorldItemEntityRenderer(items ItemRenderer) *WorldItemEntityRenderer {
	return &WorldItemEntityRenderer{items: items}
}

// Render draws entity if it is a WorldItemEntity and ignores anything else.
func (r *WorldItemEntityRenderer) Render(entity any, yaw, tickDelta float32, matrices *MatrixStack, consumers ConsumerProvider, light int32) {
	item, ok := entity.(WorldItemEntity)
	if !ok {
		return
	}
	stack := item.Stack()

	matrices.Push()
	model := r.items.Model(stack, item.EntityID())
	PoseMatrices(matrices, item, tickDelta)
	r.items.RenderItem(stack, ModeGround, false, matrices, consumers, light, DefaultOverlay, model)
	matrices.Pop()

	if r.Base != nil {
		r.Base.Render(entity, yaw, tickDelta, matrices, consumers, light)
	}
}

// PoseMatrices translates by the pose offsets, then rotates around X, Y and
// Z in that order. Zero rotations are skipped.
func PoseMatrices(matrices *MatrixStack, pose BillboardRenderable, tickDelta float32) {
	rx := pose.XRotation(tickDelta)
	ry := pose.YRotation(tickDelta)
	rz := pose.ZRotation(tickDelta)

	matrices.Translate(pose.XOffset(tickDelta), pose.YOffset(tickDelta), pose.ZOffset(tickDelta))
	if rx != 0 {
		matrices.Multiply(mgl32.QuatRotate(mgl32.DegToRad(rx), mgl32.Vec3{1, 0, 0}))
	}
	if ry != 0 {
		matrices.Multiply(mgl32.QuatRotate(mgl32.DegToRad(ry), mgl32.Vec3{0, 1, 0}))
	}
	if rz != 0 {
		matrices.Multiply(mgl32.QuatRotate(mgl32.DegToRad(rz), mgl32.Vec3{0, 0, 1}))
	}
}

// Texture returns the atlas used for any entity this renderer draws.
func (r *WorldItemEntityRenderer) Texture(entity any) string {
	return BlockAtlasTexture
}
