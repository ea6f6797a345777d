package spatialmath

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{math.Cos(th / 2.), math.Sin(th / 2.), 0, 0} // in quaternion representation
	aa45x = &R4AA{th, 1., 0., 0.}                                   // in axis-angle representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                // in euler angle representation
	rm45x = &RotationMatrix{[9]float64{
		1, 0, 0,
		0, math.Cos(th), -math.Sin(th),
		0, math.Sin(th), math.Cos(th),
	}} // in rotation matrix representation
)

func assertOrientation45x(t *testing.T, o Orientation) {
	t.Helper()
	test.That(t, o.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, o.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, o.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, o.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, o.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, o.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, o.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, o.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, o.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, o.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, o.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			test.That(t, o.RotationMatrix().At(r, c), test.ShouldAlmostEqual, rm45x.At(r, c))
		}
	}
}

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{1, 0, 0, 0})
	test.That(t, zero.AxisAngles(), test.ShouldResemble, NewR4AA())
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
	test.That(t, zero.RotationMatrix().At(0, 0), test.ShouldEqual, 1)
	test.That(t, zero.RotationMatrix().At(1, 1), test.ShouldEqual, 1)
	test.That(t, zero.RotationMatrix().At(2, 2), test.ShouldEqual, 1)
	test.That(t, zero.RotationMatrix().At(0, 1), test.ShouldEqual, 0)
}

func TestQuaternionRepresentation(t *testing.T) {
	qq45x := Quaternion(q45x)
	assertOrientation45x(t, &qq45x)
}

func TestEulerAnglesRepresentation(t *testing.T) {
	assertOrientation45x(t, ea45x)
}

func TestAxisAnglesRepresentation(t *testing.T) {
	assertOrientation45x(t, aa45x)
}

func TestRotationMatrixRepresentation(t *testing.T) {
	assertOrientation45x(t, rm45x)
}

func TestSlerp(t *testing.T) {
	q1 := q45x
	q2 := quat.Conj(q45x)
	s1 := slerp(q1, q2, 0.25)
	s2 := slerp(q1, q2, 0.5)

	expect1 := quat.Number{0.9808, 0.1951, 0, 0}
	expect2 := quat.Number{1, 0, 0, 0}

	test.That(t, s1.Real, test.ShouldAlmostEqual, expect1.Real, 0.001)
	test.That(t, s1.Imag, test.ShouldAlmostEqual, expect1.Imag, 0.001)
	test.That(t, s1.Jmag, test.ShouldAlmostEqual, expect1.Jmag, 0.001)
	test.That(t, s1.Kmag, test.ShouldAlmostEqual, expect1.Kmag, 0.001)
	test.That(t, s2.Real, test.ShouldAlmostEqual, expect2.Real)
	test.That(t, s2.Imag, test.ShouldAlmostEqual, expect2.Imag)
	test.That(t, s2.Jmag, test.ShouldAlmostEqual, expect2.Jmag)
	test.That(t, s2.Kmag, test.ShouldAlmostEqual, expect2.Kmag)
}

func TestOrientationBetween(t *testing.T) {
	aa90x := &R4AA{math.Pi / 2., 1., 0., 0.}
	btw := OrientationBetween(ea45x, aa90x).AxisAngles()
	test.That(t, btw.Theta, test.ShouldAlmostEqual, math.Pi/4.)
	test.That(t, btw.RX, test.ShouldAlmostEqual, 1.)
	test.That(t, btw.RY, test.ShouldAlmostEqual, 0.)
	test.That(t, btw.RZ, test.ShouldAlmostEqual, 0.)
}

func TestOrientationInverse(t *testing.T) {
	inv := OrientationInverse(aa45x)
	test.That(t, inv.EulerAngles().Roll, test.ShouldAlmostEqual, -th)
	composed := quat.Mul(inv.Quaternion(), aa45x.Quaternion())
	test.That(t, composed.Real, test.ShouldAlmostEqual, 1)
	test.That(t, Norm(composed), test.ShouldAlmostEqual, 0)
}

func TestOrientationAlmostEqual(t *testing.T) {
	qq45x := Quaternion(q45x)
	flipped := Quaternion(Flip(q45x))
	test.That(t, OrientationAlmostEqual(&qq45x, ea45x), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(&qq45x, &flipped), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(&qq45x, NewZeroOrientation()), test.ShouldBeFalse)
}

func TestInterpolateOrientation(t *testing.T) {
	aa90x := &R4AA{math.Pi / 2., 1., 0., 0.}
	mid, err := InterpolateOrientation(NewZeroOrientation(), aa90x, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(mid, ea45x), test.ShouldBeTrue)

	// endpoints are returned exactly
	start, err := InterpolateOrientation(ea45x, aa90x, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, start, test.ShouldEqual, ea45x)
	end, err := InterpolateOrientation(ea45x, aa90x, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, end, test.ShouldEqual, aa90x)

	// interpolating an orientation with itself goes nowhere for any amount
	for _, by := range []float64{0.1, 0.5, 0.9} {
		same, err := InterpolateOrientation(ea45x, ea45x, by)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, OrientationAlmostEqual(same, ea45x), test.ShouldBeTrue)
	}

	// interpolation between antipodal quaternions takes the short way around
	z10 := &EulerAngles{Yaw: math.Pi / 18.}
	z20flipped := Quaternion(Flip((&EulerAngles{Yaw: math.Pi / 9.}).Quaternion()))
	short, err := InterpolateOrientation(z10, &z20flipped, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(short, &EulerAngles{Yaw: math.Pi / 12.}), test.ShouldBeTrue)

	for _, bad := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = InterpolateOrientation(z10, aa90x, bad)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, errors.Is(err, ErrInvalidParameter), test.ShouldBeTrue)
	}
}
