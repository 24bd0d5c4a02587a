package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"orbitview/canvas"
)

const lampSize = 0.05

var lampVs = []float32{
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,

	0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,

	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,

	-0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// lamp draws a small cube where the light is.
type lamp struct {
	program *canvas.Program
	vao     *canvas.Vao
}

func newLamp() (*lamp, error) {
	prg, err := canvas.NewProgram(lampVertexShader, lampFragmentShader)
	if err != nil {
		return nil, err
	}
	return &lamp{
		program: prg,
		vao:     canvas.MakeVao(lampVs, canvas.Attrib{Index: 0, Size: 3}),
	}, nil
}

// draw takes the light's world transform, so the cube turns with the orbit.
func (l *lamp) draw(model, view, projection mgl32.Mat4, color mgl32.Vec3) {
	mvp := projection.Mul4(view).Mul4(model).Mul4(mgl32.Scale3D(lampSize, lampSize, lampSize))
	l.program.Use()
	l.program.SetMat4("mvp", mvp)
	l.program.SetVec3("color", color)
	l.vao.DrawAll(gl.TRIANGLES)
}

func (l *lamp) delete() {
	l.program.Delete()
	l.vao.Delete()
}
