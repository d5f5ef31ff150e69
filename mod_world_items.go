package lilylib

import (
	"github.com/gekko3d/lilylib/particle"
	"github.com/gekko3d/lilylib/render"
	"github.com/go-gl/mathgl/mgl64"
)

// WorldItemComponent is an item-backed entity drawn through the host's item
// renderer. Position is the entity's world position; Light the packed light
// at it.
type WorldItemComponent struct {
	Entity   render.WorldItemEntity
	Position mgl64.Vec3
	Light    int32
}

// WorldItemFrame holds the renderer state shared by all world items.
type WorldItemFrame struct {
	Renderer  *render.WorldItemEntityRenderer
	Matrices  *render.MatrixStack
	Consumers render.ConsumerProvider
	// Drawn counts the entities handed to the renderer in the last frame.
	Drawn int
}

type WorldItemModule struct {
	Items     render.ItemRenderer
	Consumers render.ConsumerProvider
	Base      render.EntityRenderer
}

func (mod WorldItemModule) Install(app *App, cmd *Commands) {
	var r *render.WorldItemEntityRenderer
	if mod.Items == nil {
		app.Logger().Warnf("WorldItemModule installed without an item renderer, world items won't draw")
	} else {
		r = render.NewWorldItemEntityRenderer(mod.Items)
		r.Base = mod.Base
	}
	cmd.AddResources(&WorldItemFrame{
		Renderer:  r,
		Matrices:  render.NewMatrixStack(),
		Consumers: mod.Consumers,
	})
	app.UseSystem(System(worldItemRenderSystem).InStage(Render))
}

// NewWorldItem returns a component lit at full brightness.
func NewWorldItem(entity render.WorldItemEntity, pos mgl64.Vec3) WorldItemComponent {
	return WorldItemComponent{Entity: entity, Position: pos, Light: particle.FullBright}
}

func worldItemRenderSystem(t *Time, frame *WorldItemFrame, cmd *Commands) {
	frame.Drawn = 0
	if frame.Renderer == nil {
		return
	}
	cam, ok := findCamera(cmd)
	if !ok {
		return
	}

	MakeQuery1[WorldItemComponent](cmd).Map(func(eid EntityId, wi *WorldItemComponent) bool {
		if wi.Entity == nil {
			return true
		}
		rel := wi.Position.Sub(cam.Eye)

		frame.Matrices.Push()
		frame.Matrices.Translate(float32(rel.X()), float32(rel.Y()), float32(rel.Z()))
		frame.Renderer.Render(wi.Entity, 0, t.TickDelta, frame.Matrices, frame.Consumers, wi.Light)
		frame.Matrices.Pop()
		frame.Drawn++
		return true
	})
}
