package viewer

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"orbitview/canvas"
	"orbitview/hud"
)

const overlayMargin = 10

var overlayQuad = []float32{
	0, 0, 0, 0,
	1, 0, 1, 0,
	1, 1, 1, 1,
	1, 1, 1, 1,
	0, 1, 0, 1,
	0, 0, 0, 0,
}

// overlay shows the hud text in the top left corner. The texture is only
// rebuilt when the text changes.
type overlay struct {
	renderer *hud.Renderer
	program  *canvas.Program
	vao      *canvas.Vao
	texture  uint32

	text          string
	width, height int
}

func newOverlay(fontSize float64) (*overlay, error) {
	r, err := hud.NewRenderer(fontSize)
	if err != nil {
		return nil, err
	}
	prg, err := canvas.NewProgram(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}
	o := &overlay{
		renderer: r,
		program:  prg,
		vao:      canvas.MakeVao(overlayQuad, canvas.Attrib{Index: 0, Size: 2}, canvas.Attrib{Index: 1, Size: 2}),
	}
	if err := o.set(nil); err != nil {
		o.delete()
		return nil, err
	}
	return o, nil
}

func (o *overlay) set(lines []string) error {
	text := strings.Join(lines, "\n")
	if o.texture != 0 && text == o.text {
		return nil
	}
	img, err := o.renderer.Render(lines)
	if err != nil {
		return err
	}
	if o.texture == 0 {
		if o.texture, err = canvas.NewTexture(img, gl.TEXTURE0); err != nil {
			return err
		}
	} else {
		gl.ActiveTexture(gl.TEXTURE0)
		canvas.UpdateTexture(o.texture, img)
	}
	o.text = text
	o.width, o.height = img.Rect.Dx(), img.Rect.Dy()
	return nil
}

func (o *overlay) draw(viewportW, viewportH int) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	// hud images are premultiplied
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	p := o.program
	p.Use()
	p.SetInt("text", 0)
	gl.Uniform2f(p.Location("viewport"), float32(viewportW), float32(viewportH))
	gl.Uniform2f(p.Location("offset"), overlayMargin, overlayMargin)
	gl.Uniform2f(p.Location("size"), float32(o.width), float32(o.height))
	canvas.BindTexture(gl.TEXTURE0, o.texture)
	o.vao.DrawAll(gl.TRIANGLES)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *overlay) delete() {
	o.program.Delete()
	o.vao.Delete()
	if o.texture != 0 {
		canvas.DeleteTexture(o.texture)
	}
}
