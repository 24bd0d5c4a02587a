package camera

import "github.com/go-gl/mathgl/mgl32"

// Pose is a value snapshot of an Orbit.
type Pose struct {
	Orientation mgl32.Quat
	Radius      float32
	Target      mgl32.Vec3
}

func (o *Orbit) Pose() Pose {
	return Pose{
		Orientation: o.orientation,
		Radius:      o.radius,
		Target:      o.target,
	}
}

// SetPose replaces the orbit state. The orientation is renormalized and a
// negative radius is clamped to zero.
func (o *Orbit) SetPose(p Pose) {
	o.orientation = normalize(p.Orientation)
	o.radius = p.Radius
	if o.radius < 0 {
		o.radius = 0
	}
	o.target = p.Target
	o.updatePosition()
}
