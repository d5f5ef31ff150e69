package particle

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one record for the host's vertex consumer. Light is the packed
// block/sky value produced by PackLight.
type Vertex struct {
	Pos   mgl32.Vec3
	U, V  float32
	Color [4]float32
	Light int32
}

// VertexConsumer receives vertices four at a time; every four consecutive
// vertices form one quad.
type VertexConsumer interface {
	Vertex(v Vertex)
}

// VertexBuffer is a VertexConsumer that keeps everything it receives.
type VertexBuffer struct {
	Vertices []Vertex
}

func (b *VertexBuffer) Vertex(v Vertex) {
	b.Vertices = append(b.Vertices, v)
}

func (b *VertexBuffer) Reset() {
	b.Vertices = b.Vertices[:0]
}

func (b *VertexBuffer) Quads() int {
	return len(b.Vertices) / 4
}

// Indices returns two triangles per complete quad: (0,1,2) and (0,2,3).
func (b *VertexBuffer) Indices() []uint32 {
	return QuadIndices(b.Quads())
}

func QuadIndices(quads int) []uint32 {
	out := make([]uint32, 0, quads*6)
	for q := 0; q < quads; q++ {
		base := uint32(q * 4)
		out = append(out, base, base+1, base+2, base, base+2, base+3)
	}
	return out
}

const (
	// MaxLight is the brightest block or sky level.
	MaxLight = 15
	// FullBright is PackLight(MaxLight, MaxLight).
	FullBright int32 = MaxLight<<4 | MaxLight<<20
)

// PackLight packs block and sky light levels (0..15) into one value.
func PackLight(block, sky int) int32 {
	return int32(clampLevel(block)<<4 | clampLevel(sky)<<20)
}

// UnpackLight reverses PackLight.
func UnpackLight(packed int32) (block, sky int) {
	return int(packed>>4) & 0xF, int(packed>>20) & 0xF
}

func clampLevel(l int) int {
	if l < 0 {
		return 0
	}
	if l > MaxLight {
		return MaxLight
	}
	return l
}
