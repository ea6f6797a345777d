// Package referenceframe names reference frames and does the math of
// translating poses and points between them.
package referenceframe

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	spatial "github.com/perceptive-robotics/geometries/spatialmath"
)

// World is the conventional name for the root frame, made into an exported constant.
const World = "world"

// edgeKey identifies the directed edge from a parent frame to a child frame.
type edgeKey struct {
	parent string
	child  string
}

// FrameGraph is a set of named reference frames connected by relative poses,
// allowing for transformations between any two connected frames. An edge from
// parent to child stores the pose of the child frame expressed in the parent
// frame. Resolution walks the undirected view of the graph, inverting any edge
// traversed from parent to child. Safe for concurrent use.
type FrameGraph struct {
	mu     sync.RWMutex
	name   string
	frames []string       // names in first-registration order
	index  map[string]int // name to position in frames
	// neighbor lists in first-link order, so searches visit frames in a
	// reproducible order and equal-length paths always resolve the same way
	adj   map[string][]string
	edges map[edgeKey]spatial.Pose
}

// NewEmptyFrameGraph creates a FrameGraph with no frames. The name is reported
// in errors when graphs are combined.
func NewEmptyFrameGraph(name string) *FrameGraph {
	return &FrameGraph{
		name:  name,
		index: map[string]int{},
		adj:   map[string][]string{},
		edges: map[edgeKey]spatial.Pose{},
	}
}

// Name returns the name of the FrameGraph.
func (fg *FrameGraph) Name() string {
	return fg.name
}

// AddEdge registers the pose of the child frame expressed in the parent frame.
// Frames not yet in the graph are registered on first sight. Adding an edge
// between two frames that already share one replaces the stored relationship,
// whichever direction the original was added in.
func (fg *FrameGraph) AddEdge(parent, child string, pose spatial.Pose) error {
	if parent == "" || child == "" {
		return newEmptyFrameNameError(parent, child)
	}
	if parent == child {
		return newSelfEdgeError(parent)
	}
	if pose == nil {
		return newNilEdgePoseError(parent, child)
	}
	fg.mu.Lock()
	defer fg.mu.Unlock()
	fg.registerFrame(parent)
	fg.registerFrame(child)
	if _, fwd := fg.edges[edgeKey{parent, child}]; !fwd {
		if _, rev := fg.edges[edgeKey{child, parent}]; !rev {
			fg.adj[parent] = append(fg.adj[parent], child)
			fg.adj[child] = append(fg.adj[child], parent)
		}
	}
	delete(fg.edges, edgeKey{child, parent})
	fg.edges[edgeKey{parent, child}] = pose
	return nil
}

// registerFrame records a frame name the first time it is seen. Write lock
// must be held.
func (fg *FrameGraph) registerFrame(name string) {
	if _, ok := fg.index[name]; ok {
		return
	}
	fg.index[name] = len(fg.frames)
	fg.frames = append(fg.frames, name)
}

// HasFrame checks if the given frame name is registered in the FrameGraph.
func (fg *FrameGraph) HasFrame(name string) bool {
	fg.mu.RLock()
	defer fg.mu.RUnlock()
	_, ok := fg.index[name]
	return ok
}

// FrameNames returns the names of all of the frames that exist in the
// FrameGraph, in the order they were first registered.
func (fg *FrameGraph) FrameNames() []string {
	fg.mu.RLock()
	defer fg.mu.RUnlock()
	names := make([]string, len(fg.frames))
	copy(names, fg.frames)
	return names
}

// EdgeCount returns the number of edges in the FrameGraph.
func (fg *FrameGraph) EdgeCount() int {
	fg.mu.RLock()
	defer fg.mu.RUnlock()
	return len(fg.edges)
}

// Resolve returns the pose of the "from" frame expressed in the "to" frame,
// composed along the shortest chain of edges connecting the two. A point
// expressed in the "from" frame, transformed by the returned pose, yields that
// point expressed in the "to" frame. Resolving a registered frame against
// itself gives the identity pose.
func (fg *FrameGraph) Resolve(from, to string) (spatial.Pose, error) {
	fg.mu.RLock()
	defer fg.mu.RUnlock()
	if _, ok := fg.index[from]; !ok {
		return nil, newFrameNotFoundError(from)
	}
	if _, ok := fg.index[to]; !ok {
		return nil, newFrameNotFoundError(to)
	}
	if from == to {
		return spatial.NewZeroPose(), nil
	}
	path := fg.findPath(from, to)
	if path == nil {
		return nil, newNoPathExistsError(from, to)
	}
	// walk the path, adding new transforms to the left
	pose := spatial.NewZeroPose()
	for i := 0; i < len(path)-1; i++ {
		pose = spatial.Compose(fg.stepPose(path[i], path[i+1]), pose)
	}
	return pose, nil
}

// findPath runs a breadth-first search over the undirected view of the graph
// and returns the frames along a shortest path, both endpoints included, or
// nil if the two frames are disconnected. Read lock must be held.
func (fg *FrameGraph) findPath(from, to string) []string {
	prev := map[string]string{from: from}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			var path []string
			for at := to; at != from; at = prev[at] {
				path = append(path, at)
			}
			path = append(path, from)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, neighbor := range fg.adj[current] {
			if _, seen := prev[neighbor]; !seen {
				prev[neighbor] = current
				queue = append(queue, neighbor)
			}
		}
	}
	return nil
}

// stepPose returns the pose taking coordinates in the current frame to
// coordinates in the next frame along a path. The stored pose maps child
// coordinates into parent coordinates, so stepping from child to parent uses
// it directly and stepping from parent to child uses its inverse. Read lock
// must be held.
func (fg *FrameGraph) stepPose(current, next string) spatial.Pose {
	if pose, ok := fg.edges[edgeKey{next, current}]; ok {
		return pose
	}
	return spatial.PoseInverse(fg.edges[edgeKey{current, next}])
}

// Transform takes in a Transformable object and a destination frame, and
// re-expresses the object in the destination frame.
func (fg *FrameGraph) Transform(object Transformable, dst string) (Transformable, error) {
	tf, err := fg.Resolve(object.Parent(), dst)
	if err != nil {
		return nil, err
	}
	return object.Transform(NewPoseInFrame(dst, tf)), nil
}

// MergeFrameGraph adds every edge of the other graph to this one. Frames
// shared by name become the points where the two graphs connect. Edges that
// collide with existing ones are replaced, the same as re-adding them.
func (fg *FrameGraph) MergeFrameGraph(other *FrameGraph) error {
	if other == nil {
		return errors.Errorf("cannot merge a nil frame graph into %q", fg.name)
	}

	type frameEdge struct {
		parent, child string
		pose          spatial.Pose
	}
	other.mu.RLock()
	merging := make([]frameEdge, 0, len(other.edges))
	for _, parent := range other.frames {
		for _, child := range other.adj[parent] {
			if pose, ok := other.edges[edgeKey{parent, child}]; ok {
				merging = append(merging, frameEdge{parent, child, pose})
			}
		}
	}
	other.mu.RUnlock()

	var errAll error
	for _, e := range merging {
		multierr.AppendInto(&errAll, fg.AddEdge(e.parent, e.child, e.pose))
	}
	return errAll
}
