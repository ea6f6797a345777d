package pointcloud

import (
	"context"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/perceptive-robotics/geometries/spatialmath"
	"github.com/perceptive-robotics/geometries/utils"
)

// TransformCloud applies the pose to every point of the cloud and returns the
// result as a new cloud of the same order, leaving the input untouched. The
// rotation matrix is derived from the pose once, all rows are rotated in a
// single multiplication, and the translation is added in one pass.
func TransformCloud(pose spatialmath.Pose, cloud PointCloud) (PointCloud, error) {
	if pose == nil {
		return nil, newNilPoseError()
	}
	if cloud == nil {
		return nil, newNilCloudError()
	}
	if cloud.Size() == 0 {
		return New(), nil
	}

	// rotated = points * R^T, so that row i holds R * points[i]
	var rotated mat.Dense
	rotated.Mul(CloudMatrix(cloud), rotationDense(pose).T())

	t := pose.Point()
	rotated.Apply(func(_, j int, v float64) float64 {
		switch j {
		case 0:
			return v + t.X
		case 1:
			return v + t.Y
		default:
			return v + t.Z
		}
	}, &rotated)
	return CloudFromMatrix(&rotated)
}

// TransformCloudParallel computes the same result as TransformCloud with the
// rows partitioned across ParallelFactor workers, each writing a disjoint
// range of the output.
func TransformCloudParallel(
	ctx context.Context,
	pose spatialmath.Pose,
	cloud PointCloud,
	logger golog.Logger,
) (PointCloud, error) {
	if pose == nil {
		return nil, newNilPoseError()
	}
	if cloud == nil {
		return nil, newNilCloudError()
	}
	size := cloud.Size()
	// GroupWorkParallel hands every group zero work when the total is below
	// the worker count, so small clouds take the serial path
	if size < utils.ParallelFactor {
		return TransformCloud(pose, cloud)
	}
	logger.Debugf("transforming %d points across %d workers", size, utils.ParallelFactor)

	rm := pose.Orientation().RotationMatrix()
	t := pose.Point()
	transformed := make([]r3.Vector, size)
	err := utils.GroupWorkParallel(
		ctx,
		size,
		func(groupSize int) {},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				p := cloud.At(workNum)
				transformed[workNum] = r3.Vector{
					X: rm.At(0, 0)*p.X + rm.At(0, 1)*p.Y + rm.At(0, 2)*p.Z + t.X,
					Y: rm.At(1, 0)*p.X + rm.At(1, 1)*p.Y + rm.At(1, 2)*p.Z + t.Y,
					Z: rm.At(2, 0)*p.X + rm.At(2, 1)*p.Y + rm.At(2, 2)*p.Z + t.Z,
				}
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return NewFromPoints(transformed), nil
}

// rotationDense copies the 3x3 rotation block of the pose into a Dense matrix.
func rotationDense(pose spatialmath.Pose) *mat.Dense {
	rm := pose.Orientation().RotationMatrix()
	vals := make([]float64, 0, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			vals = append(vals, rm.At(r, c))
		}
	}
	return mat.NewDense(3, 3, vals)
}
