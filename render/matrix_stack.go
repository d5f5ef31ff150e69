package render

import "github.com/go-gl/mathgl/mgl32"

// MatrixStack is a stack of model transforms. The bottom entry is the
// identity and can't be popped.
type MatrixStack struct {
	stack []mgl32.Mat4
}

func NewMatrixStack() *MatrixStack {
	return &MatrixStack{stack: []mgl32.Mat4{mgl32.Ident4()}}
}

func (m *MatrixStack) Push() {
	m.stack = append(m.stack, m.Peek())
}

func (m *MatrixStack) Pop() {
	if len(m.stack) == 1 {
		panic("render: MatrixStack.Pop on the root entry")
	}
	m.stack = m.stack[:len(m.stack)-1]
}

// Peek returns the current transform.
func (m *MatrixStack) Peek() mgl32.Mat4 {
	return m.stack[len(m.stack)-1]
}

func (m *MatrixStack) Depth() int {
	return len(m.stack)
}

func (m *MatrixStack) Translate(x, y, z float32) {
	m.apply(mgl32.Translate3D(x, y, z))
}

func (m *MatrixStack) Scale(x, y, z float32) {
	m.apply(mgl32.Scale3D(x, y, z))
}

func (m *MatrixStack) Multiply(q mgl32.Quat) {
	m.apply(q.Mat4())
}

// Transform maps a model-space point through the current transform.
func (m *MatrixStack) Transform(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m.Peek())
}

// M = M * op, so later operations apply first to model points.
func (m *MatrixStack) apply(op mgl32.Mat4) {
	top := len(m.stack) - 1
	m.stack[top] = m.stack[top].Mul4(op)
}
