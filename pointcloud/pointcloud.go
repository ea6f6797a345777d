// Package pointcloud defines an ordered container of 3D points and bulk
// operations over it: rigid-transform application, coordinate-system
// conversions, and reading/writing the ascii PCD format.
package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// PointCloud is an ordered container of points. Points keep the index they
// were appended at, so bulk operations can promise to preserve order.
type PointCloud interface {
	// Size returns the number of points in the cloud.
	Size() int

	// At returns the point at the given index, which must be in [0, Size()).
	At(i int) r3.Vector

	// Append adds a point to the end of the cloud.
	Append(p r3.Vector)

	// MetaData returns the bounds and coordinate totals of the cloud.
	MetaData() MetaData

	// Iterate iterates over all points in the cloud and calls the given
	// function for each point. If the supplied function returns false,
	// iteration will stop after the function returns.
	// numBatches lets you divide up the work. 0 means don't divide.
	// myBatch is used iff numBatches > 0 and is which batch you want.
	Iterate(numBatches, myBatch int, fn func(i int, p r3.Vector) bool)
}

// MetaData is data about what's stored in the point cloud.
type MetaData struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64

	totalX, totalY, totalZ float64
}

// NewMetaData creates a new MetaData.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MinZ: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
		MaxZ: -math.MaxFloat64,
	}
}

// Merge updates the bounds and totals with a new point.
func (meta *MetaData) Merge(v r3.Vector) {
	if v.X > meta.MaxX {
		meta.MaxX = v.X
	}
	if v.Y > meta.MaxY {
		meta.MaxY = v.Y
	}
	if v.Z > meta.MaxZ {
		meta.MaxZ = v.Z
	}

	if v.X < meta.MinX {
		meta.MinX = v.X
	}
	if v.Y < meta.MinY {
		meta.MinY = v.Y
	}
	if v.Z < meta.MinZ {
		meta.MinZ = v.Z
	}

	meta.totalX += v.X
	meta.totalY += v.Y
	meta.totalZ += v.Z
}

// TotalX returns the sum of the X coordinates of the points merged so far.
func (meta *MetaData) TotalX() float64 {
	return meta.totalX
}

// TotalY returns the sum of the Y coordinates of the points merged so far.
func (meta *MetaData) TotalY() float64 {
	return meta.totalY
}

// TotalZ returns the sum of the Z coordinates of the points merged so far.
func (meta *MetaData) TotalZ() float64 {
	return meta.totalZ
}

// CloudCentroid returns the centroid of a pointcloud as a vector.
func CloudCentroid(pc PointCloud) r3.Vector {
	if pc.Size() == 0 {
		return r3.Vector{}
	}
	size := float64(pc.Size())
	meta := pc.MetaData()
	return r3.Vector{
		X: meta.TotalX() / size,
		Y: meta.TotalY() / size,
		Z: meta.TotalZ() / size,
	}
}
