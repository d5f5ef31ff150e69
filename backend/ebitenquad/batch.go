// Package ebitenquad draws flat particle quads with ebiten.
//
// A Batch is a particle.VertexConsumer. Particles write camera-relative
// vertices into it during the render stage, the batch projects them to
// screen space and a single DrawTriangles32 call submits the frame.
//
// With the lilylib runtime, draw the FrameVertices resource filled by
// FlatParticleModule from the game's Draw method:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.app.Step()
//		g.batch.DrawFrame(screen, g.atlas, lilylib.Resource[lilylib.FrameVertices](g.app))
//	}
package ebitenquad

import (
	"github.com/gekko3d/lilylib"
	"github.com/gekko3d/lilylib/particle"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Projector maps camera-relative positions to screen pixels.
type Projector struct {
	// ViewProj is the view-projection matrix. The view part must not carry a
	// translation because particle vertices are already camera-relative.
	ViewProj mgl32.Mat4
	// Width and Height of the destination image in pixels.
	Width, Height float32
	// TexWidth and TexHeight of the atlas image in pixels. UVs are scaled by
	// these to get source coordinates.
	TexWidth, TexHeight float32
}

// NewProjector builds a perspective projector looking from the origin along
// forward, with fovY in radians.
func NewProjector(forward, up mgl32.Vec3, fovY float32, width, height, texWidth, texHeight int) Projector {
	view := mgl32.LookAtV(mgl32.Vec3{}, forward, up)
	proj := mgl32.Perspective(fovY, float32(width)/float32(height), 0.05, 1024)
	return Projector{
		ViewProj:  proj.Mul4(view),
		Width:     float32(width),
		Height:    float32(height),
		TexWidth:  float32(texWidth),
		TexHeight: float32(texHeight),
	}
}

// Project returns the screen position of p and whether it lies in front of
// the camera.
func (pr Projector) Project(p mgl32.Vec3) (x, y float32, ok bool) {
	clip := pr.ViewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) * 0.5 * pr.Width
	y = (1 - ndcY) * 0.5 * pr.Height
	return x, y, true
}

// Batch collects quads for one atlas page.
type Batch struct {
	Projector Projector

	verts   []ebiten.Vertex
	indices []uint32
	pending [4]ebiten.Vertex
	n       int
	visible bool
	culled  int
}

func NewBatch(p Projector) *Batch {
	return &Batch{Projector: p, visible: true}
}

// Vertex implements particle.VertexConsumer. A quad with any corner behind
// the camera is dropped whole.
func (b *Batch) Vertex(v particle.Vertex) {
	x, y, ok := b.Projector.Project(v.Pos)
	if !ok {
		b.visible = false
	}
	b.pending[b.n] = Convert(v, x, y, b.Projector.TexWidth, b.Projector.TexHeight)
	b.n++
	if b.n < 4 {
		return
	}
	if b.visible {
		b.verts = append(b.verts, b.pending[:]...)
	} else {
		b.culled++
	}
	b.n = 0
	b.visible = true
}

// AddVertices feeds already collected vertices, such as a frame's
// particle.VertexBuffer, through Vertex.
func (b *Batch) AddVertices(vs []particle.Vertex) {
	for _, v := range vs {
		b.Vertex(v)
	}
}

// Convert turns a particle vertex into an ebiten vertex at screen position
// (x, y). The color is premultiplied and darkened by the brighter of the
// block and sky light levels.
func Convert(v particle.Vertex, x, y, texW, texH float32) ebiten.Vertex {
	block, sky := particle.UnpackLight(v.Light)
	level := max(block, sky)
	shade := float32(level) / particle.MaxLight
	a := v.Color[3]
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   v.U * texW,
		SrcY:   v.V * texH,
		ColorR: v.Color[0] * shade * a,
		ColorG: v.Color[1] * shade * a,
		ColorB: v.Color[2] * shade * a,
		ColorA: a,
	}
}

// Quads returns the number of visible quads collected so far.
func (b *Batch) Quads() int {
	return len(b.verts) / 4
}

// Culled returns the number of quads dropped since the last Reset.
func (b *Batch) Culled() int {
	return b.culled
}

// Vertices exposes the collected vertices. The slice is reused after Reset.
func (b *Batch) Vertices() []ebiten.Vertex {
	return b.verts
}

// Indices returns the triangle list for the collected quads.
func (b *Batch) Indices() []uint32 {
	if quads := b.Quads(); len(b.indices) != quads*6 {
		b.indices = particle.QuadIndices(quads)
	}
	return b.indices
}

// Draw submits every collected quad onto dst sampling from atlas.
func (b *Batch) Draw(dst, atlas *ebiten.Image) {
	if len(b.verts) == 0 || dst == nil || atlas == nil {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(b.verts, b.Indices(), atlas, &op)
}

// DrawFrame replaces the batch contents with the frame's particle vertices
// and draws them. A nil frame draws nothing.
func (b *Batch) DrawFrame(dst, atlas *ebiten.Image, frame *lilylib.FrameVertices) {
	b.Reset()
	if frame == nil {
		return
	}
	b.AddVertices(frame.Vertices)
	b.Draw(dst, atlas)
}

// Reset drops collected vertices, keeping capacity.
func (b *Batch) Reset() {
	b.verts = b.verts[:0]
	b.indices = b.indices[:0]
	b.n = 0
	b.visible = true
	b.culled = 0
}
