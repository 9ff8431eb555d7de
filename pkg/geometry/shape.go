package geometry

import (
	"fmt"
	"strings"
)

// ShapeKind identifies one of the fixed canonical primitives. Size, position
// and orientation come from an object's transform, never from the shape.
type ShapeKind int

const (
	// Plane is the z=0 plane
	Plane ShapeKind = iota
	// Sphere is the unit sphere centred at the origin
	Sphere
	// Cylinder has unit radius around the z axis, spans z∈[-1,1] and has flat caps
	Cylinder
	// Cone has its apex at z=1, widens to unit radius at z=-1 and has a bottom cap
	Cone
)

// ShapeKinds lists every supported primitive
var ShapeKinds = []ShapeKind{Plane, Sphere, Cylinder, Cone}

// String returns the lower-case name of the shape
func (k ShapeKind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known primitives
func (k ShapeKind) Valid() bool {
	return k >= Plane && k <= Cone
}

// ParseShapeKind converts a shape name (case-insensitive) to a ShapeKind
func ParseShapeKind(name string) (ShapeKind, error) {
	for _, k := range ShapeKinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", name)
}
