package pointcloud

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// CloudMatrix returns the cloud as a Dense matrix with one point per row,
// columns x, y, z. Returns nil for an empty cloud.
func CloudMatrix(pc PointCloud) *mat.Dense {
	size := pc.Size()
	if size == 0 {
		return nil
	}
	data := make([]float64, 0, size*3)
	pc.Iterate(0, 0, func(_ int, p r3.Vector) bool {
		data = append(data, p.X, p.Y, p.Z)
		return true
	})
	return mat.NewDense(size, 3, data)
}

// CloudFromMatrix builds a cloud from an Nx3 matrix, one point per row.
func CloudFromMatrix(m mat.Matrix) (PointCloud, error) {
	rows, cols := m.Dims()
	if cols != 3 {
		return nil, newMatrixColsError(cols)
	}
	cloud := NewWithPrealloc(rows)
	for i := 0; i < rows; i++ {
		cloud.Append(r3.Vector{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)})
	}
	return cloud, nil
}
