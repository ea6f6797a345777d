package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AxisConvention enumerates the supported axis-labeling conventions for vectors and poses.
type AxisConvention int

// The axis conventions understood by ConventionRotation and friends.
const (
	// ConventionFLU is the ROS body convention: X forward, Y left, Z up.
	ConventionFLU AxisConvention = iota
	// ConventionNED is the PX4 world convention: X north, Y east, Z down.
	ConventionNED
	// ConventionENU is the ROS world convention: X east, Y north, Z up.
	ConventionENU
)

func (c AxisConvention) String() string {
	switch c {
	case ConventionFLU:
		return "FLU"
	case ConventionNED:
		return "NED"
	case ConventionENU:
		return "ENU"
	}
	return fmt.Sprintf("AxisConvention(%d)", int(c))
}

// rotationToFLU gives the rotation taking components expressed in the given convention to FLU
// components. All pairwise conversions chain through FLU.
func rotationToFLU(c AxisConvention) (quat.Number, error) {
	switch c {
	case ConventionFLU:
		return quat.Number{Real: 1}, nil
	case ConventionNED:
		// 180 degrees about X
		return quat.Number{Imag: 1}, nil
	case ConventionENU:
		// 90 degrees about Z, the inverse of the -90 degree FLU to ENU rotation
		return quat.Number{Real: math.Sqrt2 / 2, Kmag: math.Sqrt2 / 2}, nil
	}
	return quat.Number{}, newUnknownConventionError(c)
}

// ConventionRotation returns the fixed rotation which re-expresses vectors given in the from
// convention in the to convention. Conversions between identical conventions yield the identity.
func ConventionRotation(from, to AxisConvention) (Orientation, error) {
	fromQ, err := rotationToFLU(from)
	if err != nil {
		return nil, err
	}
	toQ, err := rotationToFLU(to)
	if err != nil {
		return nil, err
	}
	q := Quaternion(quat.Mul(quat.Conj(toQ), fromQ))
	return &q, nil
}

// VectorToConvention re-expresses a vector given in the from convention in the to convention.
func VectorToConvention(v r3.Vector, from, to AxisConvention) (r3.Vector, error) {
	conv, err := ConventionRotation(from, to)
	if err != nil {
		return r3.Vector{}, err
	}
	return QuatRotateVector(conv.Quaternion(), v), nil
}

// PoseToConvention re-expresses a pose given in the from convention in the to convention. The
// position converts the same way a bare vector does, and the conversion rotation is composed onto
// the orientation.
func PoseToConvention(p Pose, from, to AxisConvention) (Pose, error) {
	conv, err := ConventionRotation(from, to)
	if err != nil {
		return nil, err
	}
	q := conv.Quaternion()
	o := Quaternion(quat.Mul(q, p.Orientation().Quaternion()))
	return NewPose(QuatRotateVector(q, p.Point()), &o), nil
}
