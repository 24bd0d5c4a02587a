package canvas

import "github.com/go-gl/gl/v4.1-core/gl"

const (
	GL_FLOAT32_SIZE = 4
)

// Attrib is one float vertex attribute: Size components at shader
// location Index.
type Attrib struct {
	Index uint32
	Size  int32
}

// Vao owns a vertex array and its single interleaved buffer.
type Vao struct {
	vao, vbo uint32
	Count    int32
}

// MakeVao uploads points and describes them with layout. The stride is the
// sum of all attribute sizes.
func MakeVao(points []float32, layout ...Attrib) *Vao {
	v := &Vao{}
	var stride int32
	for _, a := range layout {
		stride += a.Size
	}
	if stride > 0 {
		v.Count = int32(len(points)) / stride
	}

	gl.GenVertexArrays(1, &v.vao)
	gl.GenBuffers(1, &v.vbo)

	gl.BindVertexArray(v.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	if len(points) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(points)*GL_FLOAT32_SIZE, gl.Ptr(points), gl.STATIC_DRAW)
	}

	var offset int32
	for _, a := range layout {
		gl.VertexAttribPointer(a.Index, a.Size, gl.FLOAT, false, stride*GL_FLOAT32_SIZE, gl.PtrOffset(int(offset*GL_FLOAT32_SIZE)))
		gl.EnableVertexAttribArray(a.Index)
		offset += a.Size
	}

	gl.BindVertexArray(0)
	return v
}

// Draw binds the vertex array and draws count vertices from first.
func (v *Vao) Draw(mode uint32, first, count int32) {
	gl.BindVertexArray(v.vao)
	gl.DrawArrays(mode, first, count)
	gl.BindVertexArray(0)
}

func (v *Vao) DrawAll(mode uint32) {
	v.Draw(mode, 0, v.Count)
}

func (v *Vao) Delete() {
	gl.DeleteVertexArrays(1, &v.vao)
	gl.DeleteBuffers(1, &v.vbo)
}
