package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PlaneExtent is the half-size of the grid drawn for the unbounded plane
const PlaneExtent = 20.0

// Edge is a line segment in canonical space
type Edge [2]core.Point3

// Tessellate returns wireframe edges approximating the canonical shape.
// segments controls the number of divisions around circles (minimum 3).
func Tessellate(kind ShapeKind, segments int) []Edge {
	segments = max(3, segments)
	switch kind {
	case Plane:
		return planeGrid(segments)
	case Sphere:
		return sphereWire(segments)
	case Cylinder:
		edges := circle(1, 1, segments)
		edges = append(edges, circle(-1, 1, segments)...)
		for _, p := range ring(1, segments) {
			edges = append(edges, Edge{
				core.NewPoint3(p.X, p.Y, -1),
				core.NewPoint3(p.X, p.Y, 1),
			})
		}
		return edges
	case Cone:
		edges := circle(-1, 1, segments)
		apex := core.NewPoint3(0, 0, 1)
		for _, p := range ring(1, segments) {
			edges = append(edges, Edge{core.NewPoint3(p.X, p.Y, -1), apex})
		}
		return edges
	default:
		return nil
	}
}

// ring returns points evenly spaced on a circle of radius r in the xy plane
func ring(r float64, segments int) []core.Point3 {
	pts := make([]core.Point3, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = core.NewPoint3(r*math.Cos(a), r*math.Sin(a), 0)
	}
	return pts
}

// circle returns a closed loop of edges at height z
func circle(z, r float64, segments int) []Edge {
	pts := ring(r, segments)
	edges := make([]Edge, 0, segments)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		a.Z, b.Z = z, z
		edges = append(edges, Edge{a, b})
	}
	return edges
}

func sphereWire(segments int) []Edge {
	var edges []Edge
	// Latitude rings
	rings := max(2, segments/2)
	for i := 1; i < rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		edges = append(edges, circle(math.Cos(phi), math.Sin(phi), segments)...)
	}
	// Meridians
	for _, p := range ring(1, segments) {
		prev := core.NewPoint3(0, 0, 1)
		for i := 1; i <= rings; i++ {
			phi := math.Pi * float64(i) / float64(rings)
			next := core.NewPoint3(p.X*math.Sin(phi), p.Y*math.Sin(phi), math.Cos(phi))
			edges = append(edges, Edge{prev, next})
			prev = next
		}
	}
	return edges
}

func planeGrid(segments int) []Edge {
	edges := make([]Edge, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		s := -PlaneExtent + 2*PlaneExtent*float64(i)/float64(segments)
		edges = append(edges,
			Edge{core.NewPoint3(s, -PlaneExtent, 0), core.NewPoint3(s, PlaneExtent, 0)},
			Edge{core.NewPoint3(-PlaneExtent, s, 0), core.NewPoint3(PlaneExtent, s, 0)},
		)
	}
	return edges
}
