package spatialmath

import (
	"github.com/pkg/errors"
)

// ErrInvalidRotation denotes a set of inputs that cannot represent a valid rotation.
var ErrInvalidRotation = errors.New("invalid rotation")

// ErrInvalidParameter denotes an otherwise well-formed argument outside the range or
// shape an operation accepts.
var ErrInvalidParameter = errors.New("invalid parameter")

func newQuaternionNormError(norm float64) error {
	return errors.Wrapf(ErrInvalidRotation,
		"quaternion norm %v is not 1; use NewNormalizedQuaternion to normalize explicitly", norm)
}

func newDegenerateQuaternionError() error {
	return errors.Wrap(ErrInvalidRotation, "quaternion norm is too close to zero to normalize")
}

func newOrthonormalityError(row, col int, diff float64) error {
	return errors.Wrapf(ErrInvalidRotation,
		"matrix is not orthonormal, R*R^T deviates from the identity at (%d,%d) by %v", row, col, diff)
}

func newImproperRotationError(det float64) error {
	return errors.Wrapf(ErrInvalidRotation, "matrix determinant is %v, a proper rotation needs +1", det)
}

func newRotationMatrixSizeError(length int) error {
	return errors.Wrapf(ErrInvalidParameter, "need 9 row-major values to form a rotation matrix, got %d", length)
}

func newInterpolationAmountError(by float64) error {
	return errors.Wrapf(ErrInvalidParameter, "interpolation amount %v is outside the range [0, 1]", by)
}

func newUnknownConventionError(c AxisConvention) error {
	return errors.Wrapf(ErrInvalidParameter, "unknown axis convention %d", int(c))
}

func newHomogeneousBottomRowError(row []float64) error {
	return errors.Wrapf(ErrInvalidParameter, "homogeneous transform bottom row must be [0 0 0 1], got %v", row)
}
