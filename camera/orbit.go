package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	localRight = mgl32.Vec3{1, 0, 0}
	localBack  = mgl32.Vec3{0, 0, 1}
)

// Orbit is a viewpoint constrained to a sphere around Target. The same type
// drives the camera and the point light.
type Orbit struct {
	orientation mgl32.Quat
	radius      float32
	target      mgl32.Vec3
	speed       float32

	position mgl32.Vec3
}

type Option func(o *Orbit)

func WithTarget(target mgl32.Vec3) Option {
	return func(o *Orbit) { o.target = target }
}

// WithSpeed scales radius deltas passed to Update.
func WithSpeed(speed float32) Option {
	return func(o *Orbit) { o.speed = speed }
}

func WithOrientation(q mgl32.Quat) Option {
	return func(o *Orbit) { o.orientation = q }
}

func New(radius float32, opts ...Option) *Orbit {
	o := &Orbit{
		orientation: mgl32.QuatIdent(),
		radius:      float32(math.Max(0, float64(radius))),
		speed:       1,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.orientation = normalize(o.orientation)
	o.updatePosition()
	return o
}

// Update applies an elevation of thetaDelta about the current local right
// axis, then an azimuth of phiDelta about world up, and moves the radius by
// speed*radiusDelta. The radius never drops below zero.
func (o *Orbit) Update(phiDelta, thetaDelta, radiusDelta float32) {
	elevation := mgl32.QuatRotate(thetaDelta, localRight)
	azimuth := mgl32.QuatRotate(phiDelta, worldUp)
	o.orientation = normalize(azimuth.Mul(o.orientation).Mul(elevation))

	r := o.radius + o.speed*radiusDelta
	if r < 0 {
		r = 0
	}
	o.radius = r
	o.updatePosition()
}

func (o *Orbit) updatePosition() {
	o.position = o.target.Add(o.orientation.Rotate(localBack).Mul(o.radius))
}

// ModelMatrix is the world transform of the orbiting entity: T(position)*R(q).
func (o *Orbit) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(o.position[0], o.position[1], o.position[2]).Mul4(o.orientation.Mat4())
}

// ViewMatrix is the exact inverse of ModelMatrix. The rotation part inverts
// by conjugation, so no general 4x4 inverse is needed.
func (o *Orbit) ViewMatrix() mgl32.Mat4 {
	p := o.position
	return o.orientation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

func (o *Orbit) Position() mgl32.Vec3    { return o.position }
func (o *Orbit) Orientation() mgl32.Quat { return o.orientation }
func (o *Orbit) Radius() float32         { return o.radius }
func (o *Orbit) Target() mgl32.Vec3      { return o.target }

func (o *Orbit) Right() mgl32.Vec3   { return o.orientation.Rotate(localRight) }
func (o *Orbit) Forward() mgl32.Vec3 { return o.orientation.Rotate(localBack).Mul(-1) }

func normalize(q mgl32.Quat) mgl32.Quat {
	if q.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return q.Normalize()
}
