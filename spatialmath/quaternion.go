package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/perceptive-robotics/geometries/utils"
)

// unitNormEpsilon is how far the norm of a quaternion may drift from 1 before
// constructors reject it.
const unitNormEpsilon = 1e-8

// zeroNormEpsilon is the norm below which a quaternion is considered degenerate
// and cannot be normalized.
const zeroNormEpsilon = 1e-12

// Quaternion is an orientation in quaternion representation.
type Quaternion quat.Number

// NewQuaternion returns an orientation from the given quaternion components. The
// components must already form a unit quaternion within unitNormEpsilon; inputs
// that do not are rejected rather than normalized.
func NewQuaternion(w, x, y, z float64) (*Quaternion, error) {
	norm := quat.Abs(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z})
	if math.Abs(norm-1) > unitNormEpsilon {
		return nil, newQuaternionNormError(norm)
	}
	return &Quaternion{Real: w, Imag: x, Jmag: y, Kmag: z}, nil
}

// NewNormalizedQuaternion scales the given components to unit norm and returns the
// resulting orientation. Near-zero inputs cannot determine a rotation and are rejected.
func NewNormalizedQuaternion(w, x, y, z float64) (*Quaternion, error) {
	norm := quat.Abs(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z})
	if norm < zeroNormEpsilon {
		return nil, newDegenerateQuaternionError()
	}
	return &Quaternion{Real: w / norm, Imag: x / norm, Jmag: y / norm, Kmag: z / norm}, nil
}

// Quaternion returns orientation in quaternion representation.
func (q *Quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// AxisAngles returns the orientation in axis angle representation.
func (q *Quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}

// EulerAngles returns orientation in Euler angle representation.
func (q *Quaternion) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(q.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *Quaternion) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(q.Quaternion())
}

// RotateVector rotates the given vector by the receiver, leaving its length unchanged.
func (q *Quaternion) RotateVector(v r3.Vector) r3.Vector {
	return QuatRotateVector(q.Quaternion(), v)
}

// Normalize a quaternion, returning its versor (unit quaternion).
func Normalize(q quat.Number) quat.Number {
	length := quat.Abs(q)
	if math.Abs(length-1.0) > 1e-10 {
		if length == 0 {
			return quat.Number{Real: 1}
		}
		return quat.Number{Real: q.Real / length, Imag: q.Imag / length, Jmag: q.Jmag / length, Kmag: q.Kmag / length}
	}
	return q
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation
// but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual checks whether two quaternions represent nearly the same orientation,
// treating q and -q as equal.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	prod := math.Abs(a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag)
	return prod > 1-tol
}

// QuatRotateVector rotates vector v by the unit quaternion q. This is the sandwich
// product q*v*q^-1 expanded into two cross products, which is cheaper than two full
// quaternion multiplies.
func QuatRotateVector(q quat.Number, v r3.Vector) r3.Vector {
	u := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.Real)).Add(u.Cross(t))
}

// slerp interpolates along the geodesic between two quaternions, taking the shorter
// arc of the double cover.
func slerp(qN1, qN2 quat.Number, by float64) quat.Number {
	if qN1.Real*qN2.Real+qN1.Imag*qN2.Imag+qN1.Jmag*qN2.Jmag+qN1.Kmag*qN2.Kmag < 0 {
		qN2 = Flip(qN2)
	}
	q1 := mgl64.Quat{W: qN1.Real, V: mgl64.Vec3{qN1.Imag, qN1.Jmag, qN1.Kmag}}
	q2 := mgl64.Quat{W: qN2.Real, V: mgl64.Vec3{qN2.Imag, qN2.Jmag, qN2.Kmag}}
	q3 := mgl64.QuatSlerp(q1, q2, by)
	return quat.Number{Real: q3.W, Imag: q3.V.X(), Jmag: q3.V.Y(), Kmag: q3.V.Z()}
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) *R4AA {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return &R4AA{angle, 0, 0, 1}
	}
	return &R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}

// QuatToEulerAngles converts a rotation unit quaternion to euler angles. Angles are
// Tait-Bryan, applied intrinsically: roll about X, then pitch about the new Y, then
// yaw about the new Z. The pitch argument is clamped so poses at the gimbal-lock
// poles still convert to finite angles.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	w := q.Real
	x := q.Imag
	y := q.Jmag
	z := q.Kmag

	return &EulerAngles{
		Roll:  math.Atan2(2*(w*x-y*z), 1-2*(x*x+y*y)),
		Pitch: math.Asin(utils.Clamp(2*(w*y+x*z), -1, 1)),
		Yaw:   math.Atan2(2*(w*z-x*y), 1-2*(y*y+z*z)),
	}
}

// QuatToRotationMatrix converts a quat to a rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	mat := [9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}
	return &RotationMatrix{mat}
}
