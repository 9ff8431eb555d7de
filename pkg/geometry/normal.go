package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// capTolerance decides whether a canonical hit point lies on a flat cap
const capTolerance = 1e-5

// Normal returns the outward surface normal at canonical point p. Sphere and
// cylinder side normals are not normalized; shading only uses their direction.
func Normal(kind ShapeKind, p core.Point3) core.Vec3 {
	switch kind {
	case Sphere:
		return p.ToVec3()
	case Plane:
		return core.NewVec3(0, 0, 1)
	case Cylinder:
		switch {
		case math.Abs(p.Z-1) < capTolerance:
			return core.NewVec3(0, 0, 1)
		case math.Abs(p.Z+1) < capTolerance:
			return core.NewVec3(0, 0, -1)
		default:
			return core.NewVec3(p.X, p.Y, 0)
		}
	case Cone:
		if math.Abs(p.Z+1) < capTolerance {
			return core.NewVec3(0, 0, -1)
		}
		// Gradient of x² + y² - (1-z)²/4
		return core.NewVec3(2*p.X, 2*p.Y, (1-p.Z)/2).Normalize()
	default:
		return core.Vec3{}
	}
}
