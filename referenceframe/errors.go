package referenceframe

import (
	"github.com/pkg/errors"

	"github.com/perceptive-robotics/geometries/spatialmath"
)

// ErrFrameNotFound denotes a frame name that is not registered in the frame graph.
var ErrFrameNotFound = errors.New("frame not found in frame graph")

// ErrNoPathExists denotes two registered frames with no chain of edges between them.
var ErrNoPathExists = errors.New("no path exists between the frames")

func newFrameNotFoundError(name string) error {
	return errors.Wrapf(ErrFrameNotFound, "frame %q", name)
}

func newNoPathExistsError(from, to string) error {
	return errors.Wrapf(ErrNoPathExists, "from %q to %q", from, to)
}

func newEmptyFrameNameError(parent, child string) error {
	return errors.Wrapf(spatialmath.ErrInvalidParameter,
		"frame names cannot be empty, got edge %q -> %q", parent, child)
}

func newSelfEdgeError(name string) error {
	return errors.Wrapf(spatialmath.ErrInvalidParameter,
		"cannot add an edge from frame %q to itself", name)
}

func newNilEdgePoseError(parent, child string) error {
	return errors.Wrapf(spatialmath.ErrInvalidParameter,
		"edge %q -> %q needs a non-nil pose", parent, child)
}
