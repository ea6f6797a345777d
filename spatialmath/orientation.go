package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &Quaternion{1, 0, 0, 0}
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return OrientationAlmostEqualEps(o1, o2, 1e-5)
}

// OrientationAlmostEqualEps will return a bool describing whether 2 poses have approximately the same orientation,
// with the tolerance for equality given by epsilon. A rotation and its antipodal quaternion are treated as equal.
func OrientationAlmostEqualEps(o1, o2 Orientation, epsilon float64) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), epsilon)
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	q := Quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &q
}

// OrientationInverse returns the orientation representing the opposite rotation of the given Orientation.
func OrientationInverse(o Orientation) Orientation {
	q := Quaternion(quat.Conj(o.Quaternion()))
	return &q
}

// InterpolateOrientation returns an orientation interpolated between two orientations by the given amount.
// The amount must lie within [0, 1]; 0 returns o1 and 1 returns o2 exactly.
func InterpolateOrientation(o1, o2 Orientation, by float64) (Orientation, error) {
	if math.IsNaN(by) || by < 0 || by > 1 {
		return nil, newInterpolationAmountError(by)
	}
	switch by {
	case 0:
		return o1, nil
	case 1:
		return o2, nil
	}
	q := Quaternion(slerp(o1.Quaternion(), o2.Quaternion(), by))
	return &q, nil
}
