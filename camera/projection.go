package camera

import "github.com/go-gl/mathgl/mgl32"

// Perspective builds the projection for a viewport of width x height pixels.
// fov is the vertical field of view in degrees.
func Perspective(fov float32, width, height int, near, far float32) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}
