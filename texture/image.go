package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes an image file into RGBA with the first row at the
// bottom, which is the row order glTexImage2D expects.
func LoadImage(file string) (*image.RGBA, error) {
	imgFile, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", file, err)
	}
	defer imgFile.Close()
	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", file, err)
	}
	return FlipRGBA(img), nil
}

// FlipRGBA converts img to RGBA and mirrors it vertically.
func FlipRGBA(img image.Image) *image.RGBA {
	g := gift.New(gift.FlipVertical())
	rgba := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(rgba, img)
	return rgba
}

// Solid is a 1x1 image used when a material has no texture map.
func Solid(c color.RGBA) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	draw.Draw(rgba, rgba.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return rgba
}
