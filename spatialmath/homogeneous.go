package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/perceptive-robotics/geometries/utils"
)

// PoseToHomogeneous returns the 4x4 homogeneous transformation matrix which moves points the same
// way the given pose does, with the rotation in the upper left block and the translation in the
// rightmost column.
func PoseToHomogeneous(p Pose) mgl64.Mat4 {
	m := mgl64.Ident4()
	rm := p.Orientation().RotationMatrix()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, rm.At(r, c))
		}
	}
	pt := p.Point()
	m.Set(0, 3, pt.X)
	m.Set(1, 3, pt.Y)
	m.Set(2, 3, pt.Z)
	return m
}

// NewPoseFromHomogeneous creates a pose from a 4x4 homogeneous transformation matrix. The rotation
// block must be a proper rotation, and the bottom row must be [0 0 0 1]; matrices carrying scale,
// shear, a reflection, or a projective bottom row are rejected.
func NewPoseFromHomogeneous(m mgl64.Mat4) (Pose, error) {
	bottom := []float64{m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)}
	for c, want := range []float64{0, 0, 0, 1} {
		if !utils.Float64AlmostEqual(bottom[c], want, defaultOrthonormTol) {
			return nil, newHomogeneousBottomRowError(bottom)
		}
	}
	rot := make([]float64, 0, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			rot = append(rot, m.At(r, c))
		}
	}
	rm, err := NewRotationMatrix(rot)
	if err != nil {
		return nil, err
	}
	return NewPose(r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)}, rm), nil
}
