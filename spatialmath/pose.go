package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// defaultDistanceEpsilon represents the acceptable discrepancy between two floats
// representing spatial coordinates wherein the coordinates should be considered equivalent.
const defaultDistanceEpsilon = 1e-8

// Pose represents a 6dof pose, position and orientation, with respect to the origin.
// The orientation is stored as a unit quaternion internally.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0,0,0) with same orientation as whatever frame it is placed in.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	q := newDualQuaternionFromRotation(o)
	q.SetTranslation(p)
	return q
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in reference to.
func NewPoseFromPoint(point r3.Vector) Pose {
	return newDualQuaternionFromPoint(point)
}

// NewPoseFromOrientation takes in an orientation and returns a Pose.
// It will have the same position as the frame it is in reference to.
func NewPoseFromOrientation(o Orientation) Pose {
	if o == nil {
		return NewZeroPose()
	}
	return newDualQuaternionFromRotation(o)
}

// Compose treats Poses as functions A(x) and B(x), and produces a new function C(x) = A(B(x)).
// It converts the poses to dual quaternions and multiplies them together, normalizes the
// transform and returns a new Pose.
func Compose(a, b Pose) Pose {
	result := &dualQuaternion{newDualQuaternionFromPose(a).Transformation(newDualQuaternionFromPose(b).Number)}

	// Normalization
	if vecLen := quat.Abs(result.Real); vecLen != 1 {
		result.Real = quat.Scale(1/vecLen, result.Real)
	}
	return result
}

// PoseInverse will return the inverse of a pose. So if a given pose p is the pose of A relative to B,
// PoseInverse(p) will give the pose of B relative to A.
func PoseInverse(p Pose) Pose {
	return newDualQuaternionFromPose(p).Invert()
}

// PoseBetween returns the difference between two poses, that is, the pose which when composed onto the
// first will give the second.
// Example: if PoseBetween(a, b) = c, then Compose(a, c) = b
func PoseBetween(a, b Pose) Pose {
	result := &dualQuaternion{newDualQuaternionFromPose(a).Invert().Transformation(newDualQuaternionFromPose(b).Number)}

	// Normalization
	if vecLen := quat.Abs(result.Real); vecLen != 1 {
		result.Real = quat.Scale(1/vecLen, result.Real)
	}
	return result
}

// PoseBetweenInverse returns the pose which when the second pose is composed onto it will give the first.
// Example: if PoseBetweenInverse(a, b) = c, then Compose(c, a) = b
// PoseBetweenInverse(a, b) is equivalent to Compose(b, PoseInverse(a)).
func PoseBetweenInverse(a, b Pose) Pose {
	result := &dualQuaternion{newDualQuaternionFromPose(b).Transformation(newDualQuaternionFromPose(a).Invert().Number)}

	// Normalization
	if vecLen := quat.Abs(result.Real); vecLen != 1 {
		result.Real = quat.Scale(1/vecLen, result.Real)
	}
	return result
}

// TransformPoint applies the pose to the given point, rotating it and then translating it.
func TransformPoint(p Pose, pt r3.Vector) r3.Vector {
	return newDualQuaternionFromPose(p).TransformPoint(pt)
}

// Interpolate will return a new Pose that is the interpolated pose between p1 and p2.
// The amount must lie within [0, 1]; 0 returns p1 and 1 returns p2 exactly. The orientation
// is interpolated along the geodesic (shorter arc) and the position linearly.
func Interpolate(p1, p2 Pose, by float64) (Pose, error) {
	if math.IsNaN(by) || by < 0 || by > 1 {
		return nil, newInterpolationAmountError(by)
	}
	switch by {
	case 0:
		return p1, nil
	case 1:
		return p2, nil
	}
	intQ := newDualQuaternion()
	intQ.Real = slerp(p1.Orientation().Quaternion(), p2.Orientation().Quaternion(), by)

	intQ.SetTranslation(r3.Vector{
		X: p1.Point().X + (p2.Point().X-p1.Point().X)*by,
		Y: p1.Point().Y + (p2.Point().Y-p1.Point().Y)*by,
		Z: p1.Point().Z + (p2.Point().Z-p1.Point().Z)*by,
	})
	return intQ, nil
}

// PoseAlmostEqual checks if poses are approximately equal.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, defaultDistanceEpsilon)
}

// PoseAlmostEqualEps checks if poses are approximately equal with a user-defined epsilon on position.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return PoseAlmostCoincidentEps(a, b, epsilon) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// PoseAlmostCoincident checks if two poses are approximately at the same 3D coordinate location.
// This uses a default epsilon of 1e-8.
func PoseAlmostCoincident(a, b Pose) bool {
	return PoseAlmostCoincidentEps(a, b, defaultDistanceEpsilon)
}

// PoseAlmostCoincidentEps checks if two poses are approximately at the same 3D coordinate location
// with a user-defined epsilon.
func PoseAlmostCoincidentEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon)
}
