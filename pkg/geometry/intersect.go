package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersect returns the smallest strictly positive ray parameter at which a
// ray, already expressed in the shape's canonical space, meets the surface.
//
// Quadratic surfaces follow one root policy: the smallest positive root wins,
// and when one root is positive and the other is not the positive one is used.
// A ray starting inside a solid therefore reports its exit point, which also
// makes shadow rays leaving a surface see the far side of an enclosing solid.
func Intersect(kind ShapeKind, ray core.Ray) (float64, bool) {
	switch kind {
	case Plane:
		return hitPlane(ray, 0)
	case Sphere:
		return hitSphere(ray)
	case Cylinder:
		return hitCylinder(ray)
	case Cone:
		return hitCone(ray)
	default:
		return 0, false
	}
}

// hitPlane intersects the plane z = z0
func hitPlane(ray core.Ray, z0 float64) (float64, bool) {
	if ray.Direction.Z == 0 {
		// Parallel to the plane
		return 0, false
	}
	t := (z0 - ray.Origin.Z) / ray.Direction.Z
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// quadraticRoots solves a·t² + 2b·t + c = 0 and returns the real roots in
// ascending order. A zero leading coefficient has no quadratic solution.
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		return nil
	}
	discriminant := b*b - a*c
	if discriminant < 0 || math.IsNaN(discriminant) {
		return nil
	}
	if discriminant == 0 {
		return []float64{-b / a}
	}
	sqrtD := math.Sqrt(discriminant)
	t1 := -(b + sqrtD) / a
	t2 := -(b - sqrtD) / a
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []float64{t1, t2}
}

// nearestPositive returns the smallest root greater than zero
func nearestPositive(roots []float64) (float64, bool) {
	for _, t := range roots {
		if t > 0 {
			return t, true
		}
	}
	return 0, false
}

func hitSphere(ray core.Ray) (float64, bool) {
	e := ray.Origin.ToVec3()
	d := ray.Direction

	a := d.LengthSquared()
	b := e.Dot(d)
	c := e.LengthSquared() - 1

	return nearestPositive(quadraticRoots(a, b, c))
}

func hitCylinder(ray core.Ray) (float64, bool) {
	e := ray.Origin
	d := ray.Direction

	a := d.X*d.X + d.Y*d.Y
	b := e.X*d.X + e.Y*d.Y
	c := e.X*e.X + e.Y*e.Y - 1

	var h hit
	h.offer(sideHit(ray, quadraticRoots(a, b, c)))
	h.offer(hitCap(ray, 1))
	h.offer(hitCap(ray, -1))
	return h.t, h.ok
}

func hitCone(ray core.Ray) (float64, bool) {
	e := ray.Origin
	d := ray.Direction

	a := d.X*d.X + d.Y*d.Y - 0.25*d.Z*d.Z
	b := e.X*d.X + e.Y*d.Y + d.Z*(1-e.Z)/4.0
	c := e.X*e.X + e.Y*e.Y - (1-e.Z)*(1-e.Z)/4.0

	var h hit
	h.offer(sideHit(ray, quadraticRoots(a, b, c)))
	h.offer(hitCap(ray, -1))
	return h.t, h.ok
}

// sideHit returns the first positive root whose point lies strictly between
// the caps, z ∈ (-1, 1)
func sideHit(ray core.Ray, roots []float64) (float64, bool) {
	for _, t := range roots {
		if t <= 0 {
			continue
		}
		z := ray.Origin.Z + t*ray.Direction.Z
		if z > -1 && z < 1 {
			return t, true
		}
	}
	return 0, false
}

// hitCap intersects the unit disk lying in the plane z = z0
func hitCap(ray core.Ray, z0 float64) (float64, bool) {
	t, ok := hitPlane(ray, z0)
	if !ok {
		return 0, false
	}
	p := ray.At(t)
	if p.X*p.X+p.Y*p.Y > 1 {
		return 0, false
	}
	return t, true
}

// hit tracks the nearest accepted candidate among a shape's surfaces
type hit struct {
	t  float64
	ok bool
}

// offer keeps t if it is accepted and nearer than the current candidate
func (h *hit) offer(t float64, ok bool) {
	if ok && (!h.ok || t < h.t) {
		h.t, h.ok = t, true
	}
}
