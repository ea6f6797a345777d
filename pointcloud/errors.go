package pointcloud

import (
	"github.com/pkg/errors"

	"github.com/perceptive-robotics/geometries/spatialmath"
)

func newFlatLengthError(length int) error {
	return errors.Wrapf(spatialmath.ErrInvalidParameter,
		"flat point data must hold x y z triples, got %d values", length)
}

func newMatrixColsError(cols int) error {
	return errors.Wrapf(spatialmath.ErrInvalidParameter,
		"cloud matrix needs exactly 3 columns, got %d", cols)
}

func newNilPoseError() error {
	return errors.Wrap(spatialmath.ErrInvalidParameter, "cannot transform by a nil pose")
}

func newNilCloudError() error {
	return errors.Wrap(spatialmath.ErrInvalidParameter, "cannot transform a nil cloud")
}

func newPCDHeaderError(line, reason string) error {
	return errors.Wrapf(spatialmath.ErrInvalidParameter, "pcd header line %q: %s", line, reason)
}

func newPCDPointError(i int, line string) error {
	return errors.Wrapf(spatialmath.ErrInvalidParameter, "pcd point %d malformed: %q", i, line)
}
