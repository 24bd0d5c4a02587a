// Package hud rasterizes the status overlay text.
package hud

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	dpi     = 72
	padding = 6
)

var (
	defaultForeground = color.RGBA{230, 230, 230, 255}
	defaultBackground = color.RGBA{0, 0, 0, 140}
)

// Renderer rasterizes status lines with the Go Regular font.
type Renderer struct {
	// Foreground is the text colour and Background fills the box behind it.
	// Both are premultiplied.
	Foreground color.RGBA
	Background color.RGBA

	font    *truetype.Font
	face    font.Face
	size    float64
	spacing float64
}

func NewRenderer(size float64) (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		Foreground: defaultForeground,
		Background: defaultBackground,
		font:       f,
		face:       truetype.NewFace(f, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull}),
		size:       size,
		spacing:    1.25,
	}, nil
}

func (r *Renderer) lineHeight() int {
	return int(math.Ceil(r.size * r.spacing * dpi / 72))
}

// Render draws lines top to bottom on a translucent box just large enough to
// hold them. The first pixel row is the top of the text.
func (r *Renderer) Render(lines []string) (*image.RGBA, error) {
	if len(lines) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}
	width := 0
	for _, l := range lines {
		if w := font.MeasureString(r.face, l).Ceil(); w > width {
			width = w
		}
	}
	lh := r.lineHeight()
	bounds := image.Rect(0, 0, width+2*padding, lh*len(lines)+2*padding)
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, image.NewUniform(r.Background), image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(r.font)
	c.SetFontSize(r.size)
	c.SetClip(bounds)
	c.SetDst(rgba)
	c.SetSrc(image.NewUniform(r.Foreground))
	c.SetHinting(font.HintingFull)

	pt := freetype.Pt(padding, padding+int(c.PointToFixed(r.size)>>6))
	for _, l := range lines {
		if _, err := c.DrawString(l, pt); err != nil {
			return nil, err
		}
		pt.Y += c.PointToFixed(r.size * r.spacing)
	}
	return rgba, nil
}
