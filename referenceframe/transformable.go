package referenceframe

import (
	"github.com/perceptive-robotics/geometries/spatialmath"
)

// Transformable is anything that can be re-expressed in another reference frame.
// The argument to Transform carries the pose of the object's current parent frame
// expressed in the destination frame.
type Transformable interface {
	Transform(*PoseInFrame) Transformable
	Parent() string
}

// PoseInFrame is a data structure that packages a pose with the name of the
// frame in which it is expressed.
type PoseInFrame struct {
	parent string
	pose   spatialmath.Pose
}

// Parent returns the name of the frame in which the pose is expressed.
func (pF *PoseInFrame) Parent() string {
	return pF.parent
}

// Pose returns the pose.
func (pF *PoseInFrame) Pose() spatialmath.Pose {
	return pF.pose
}

// Transform re-expresses the pose in the frame of the given transform.
func (pF *PoseInFrame) Transform(tf *PoseInFrame) Transformable {
	return NewPoseInFrame(tf.parent, spatialmath.Compose(tf.pose, pF.pose))
}

// AlmostEqual reports whether the other Transformable is a PoseInFrame in the
// same parent frame whose pose is approximately coincident with this one.
func (pF *PoseInFrame) AlmostEqual(other Transformable) bool {
	pF2, ok := other.(*PoseInFrame)
	if !ok {
		return false
	}
	return pF.parent == pF2.parent && spatialmath.PoseAlmostEqual(pF.pose, pF2.pose)
}

// NewPoseInFrame generates a new PoseInFrame.
func NewPoseInFrame(parent string, pose spatialmath.Pose) *PoseInFrame {
	return &PoseInFrame{
		parent: parent,
		pose:   pose,
	}
}
