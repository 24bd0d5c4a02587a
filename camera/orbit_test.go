package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...interface{}) bool {
	t.Helper()
	ok := true
	for i := range want {
		ok = assert.InDelta(t, float64(want[i]), float64(got[i]), eps, msgAndArgs...) && ok
	}
	return ok
}

func assertMat(t *testing.T, want, got mgl32.Mat4, msgAndArgs ...interface{}) bool {
	t.Helper()
	ok := true
	for i := range want {
		ok = assert.InDelta(t, float64(want[i]), float64(got[i]), eps, msgAndArgs...) && ok
	}
	return ok
}

func assertQuat(t *testing.T, want, got mgl32.Quat) bool {
	t.Helper()
	return assert.InDelta(t, float64(want.W), float64(got.W), eps) && assertVec(t, want.V, got.V)
}

func randomDeltas(r *rand.Rand) (phi, theta, radius float32) {
	phi = (r.Float32() - 0.5) * 2 * math.Pi
	theta = (r.Float32() - 0.5) * math.Pi
	radius = (r.Float32() - 0.5) * 4
	return
}

func TestZeroDeltasKeepPose(t *testing.T) {
	o := New(3)
	o.Update(0.3, -0.7, 0.5)
	before := o.Pose()
	pos := o.Position()
	for i := 0; i < 100; i++ {
		o.Update(0, 0, 0)
	}
	assertQuat(t, before.Orientation, o.Orientation())
	assert.Equal(t, before.Radius, o.Radius())
	assertVec(t, pos, o.Position())
}

func TestRadiusNeverNegative(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	o := New(3, WithSpeed(2))
	for i := 0; i < 1000; i++ {
		_, _, d := randomDeltas(r)
		o.Update(0, 0, d-1)
		require.GreaterOrEqual(t, o.Radius(), float32(0), "step %d", i)
	}
	o.Update(0, 0, -1000)
	assert.Equal(t, float32(0), o.Radius())
	assertVec(t, o.Target(), o.Position())
}

func TestNegativeInitialRadiusIsClamped(t *testing.T) {
	o := New(-5)
	assert.Equal(t, float32(0), o.Radius())
}

func TestOrientationStaysUnit(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	o := New(3)
	for i := 0; i < 5000; i++ {
		phi, theta, d := randomDeltas(r)
		o.Update(phi, theta, d)
		require.InDelta(t, 1.0, float64(o.Orientation().Len()), eps, "step %d", i)
	}
}

func TestViewIsInverseOfModel(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	o := New(3, WithTarget(mgl32.Vec3{1, -2, 0.5}))
	for i := 0; i < 50; i++ {
		phi, theta, d := randomDeltas(r)
		o.Update(phi, theta, d)
		require.True(t, assertMat(t, mgl32.Ident4(), o.ViewMatrix().Mul4(o.ModelMatrix()), "step %d", i))
		require.True(t, assertMat(t, mgl32.Ident4(), o.ModelMatrix().Mul4(o.ViewMatrix()), "step %d", i))
	}
}

func TestAzimuthKeepsHeight(t *testing.T) {
	o := New(3)
	o.Update(0, 0.6, 0)
	require.InDelta(t, 0, float64(o.Right()[1]), eps, "right axis must be horizontal")
	height := o.Position()[1]
	for _, phi := range []float32{0.1, 1.2, -2.5, math.Pi} {
		o.Update(phi, 0, 0)
		assert.InDelta(t, float64(height), float64(o.Position()[1]), eps)
		assert.InDelta(t, 0, float64(o.Right()[1]), eps)
	}
}

func TestQuarterTurnAboutUp(t *testing.T) {
	o := New(3)
	assertVec(t, mgl32.Vec3{0, 0, 3}, o.Position())

	o.Update(math.Pi/2, 0, 0)
	assertVec(t, mgl32.Vec3{3, 0, 0}, o.Position())
	assert.Equal(t, float32(3), o.Radius())
}

func TestElevationAboutLocalRight(t *testing.T) {
	o := New(2)
	o.Update(math.Pi/2, 0, 0)
	// right axis now points along -Z; tilting the camera up moves it toward +Y
	o.Update(0, -math.Pi/2, 0)
	assertVec(t, mgl32.Vec3{0, 2, 0}, o.Position())
	assert.InDelta(t, 0, float64(o.Right()[1]), eps)
}

func TestCameraLooksAtTarget(t *testing.T) {
	target := mgl32.Vec3{0.5, 0.5, -1}
	o := New(4, WithTarget(target))
	o.Update(0.8, -0.4, 0)
	dir := target.Sub(o.Position()).Normalize()
	assertVec(t, dir, o.Forward())

	inView := o.ViewMatrix().Mul4x1(target.Vec4(1))
	assert.InDelta(t, 0, float64(inView[0]), eps)
	assert.InDelta(t, 0, float64(inView[1]), eps)
	assert.InDelta(t, -4, float64(inView[2]), eps)
}

func TestSpeedScalesRadius(t *testing.T) {
	o := New(3, WithSpeed(0.5))
	o.Update(0, 0, 2)
	assert.InDelta(t, 4, float64(o.Radius()), eps)
	assert.InDelta(t, 4, float64(o.Position().Len()), eps)
}

func TestSetPoseRestores(t *testing.T) {
	o := New(3)
	o.Update(1, 0.5, 1)
	saved := o.Pose()

	other := New(1)
	other.SetPose(saved)
	assertVec(t, o.Position(), other.Position())
	assertMat(t, o.ViewMatrix(), other.ViewMatrix())

	other.SetPose(Pose{Orientation: mgl32.Quat{W: 2}, Radius: -1})
	assert.InDelta(t, 1, float64(other.Orientation().Len()), eps)
	assert.Equal(t, float32(0), other.Radius())
}
