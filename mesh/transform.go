package mesh

import "github.com/go-gl/mathgl/mgl32"

// FitMatrix moves the bounding box centre to the origin, scales, then
// rotates about X by rotateX degrees. A scale of 0 makes the largest extent
// 2 units long.
func FitMatrix(min, max mgl32.Vec3, rotateX, scale float32) mgl32.Mat4 {
	center := min.Add(max).Mul(0.5)
	if scale == 0 {
		scale = 1
		ext := max.Sub(min)
		largest := ext[0]
		if ext[1] > largest {
			largest = ext[1]
		}
		if ext[2] > largest {
			largest = ext[2]
		}
		if largest > 0 {
			scale = 2 / largest
		}
	}
	return mgl32.HomogRotate3DX(mgl32.DegToRad(rotateX)).
		Mul4(mgl32.Scale3D(scale, scale, scale)).
		Mul4(mgl32.Translate3D(-center[0], -center[1], -center[2]))
}
