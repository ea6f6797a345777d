package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/perceptive-robotics/geometries/utils"
)

// CartesianToSpherical converts every point (x, y, z) to spherical coordinates
// stored as (r, theta, phi), with theta the azimuth in the xy plane and phi
// the inclination from the +Z axis. The origin maps to (0, 0, 0).
func CartesianToSpherical(pc PointCloud) PointCloud {
	out := NewWithPrealloc(pc.Size())
	pc.Iterate(0, 0, func(_ int, p r3.Vector) bool {
		r := p.Norm()
		phi := 0.
		if r > 0 {
			phi = math.Acos(utils.Clamp(p.Z/r, -1, 1))
		}
		out.Append(r3.Vector{X: r, Y: math.Atan2(p.Y, p.X), Z: phi})
		return true
	})
	return out
}

// SphericalToCartesian converts every point (r, theta, phi) back to cartesian
// coordinates.
func SphericalToCartesian(pc PointCloud) PointCloud {
	out := NewWithPrealloc(pc.Size())
	pc.Iterate(0, 0, func(_ int, p r3.Vector) bool {
		r, theta, phi := p.X, p.Y, p.Z
		sinPhi := math.Sin(phi)
		out.Append(r3.Vector{
			X: r * sinPhi * math.Cos(theta),
			Y: r * sinPhi * math.Sin(theta),
			Z: r * math.Cos(phi),
		})
		return true
	})
	return out
}

// CartesianToCylindrical converts every point (x, y, z) to cylindrical
// coordinates stored as (rho, phi, z), with phi the azimuth in the xy plane.
func CartesianToCylindrical(pc PointCloud) PointCloud {
	out := NewWithPrealloc(pc.Size())
	pc.Iterate(0, 0, func(_ int, p r3.Vector) bool {
		out.Append(r3.Vector{X: math.Hypot(p.X, p.Y), Y: math.Atan2(p.Y, p.X), Z: p.Z})
		return true
	})
	return out
}

// CylindricalToCartesian converts every point (rho, phi, z) back to cartesian
// coordinates.
func CylindricalToCartesian(pc PointCloud) PointCloud {
	out := NewWithPrealloc(pc.Size())
	pc.Iterate(0, 0, func(_ int, p r3.Vector) bool {
		rho, phi := p.X, p.Y
		out.Append(r3.Vector{X: rho * math.Cos(phi), Y: rho * math.Sin(phi), Z: p.Z})
		return true
	})
	return out
}
