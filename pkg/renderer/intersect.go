package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Hit records the nearest intersection along a ray
type Hit struct {
	Object *scene.Object
	T      float64 // Ray parameter, valid in world and canonical space alike
}

// Intersect returns the smallest positive ray parameter at which a world-space
// ray meets obj. The ray is re-expressed in the object's canonical space: the
// origin as a point and the direction as a vector, so t carries over unchanged.
// Objects whose transform cannot be inverted are never hit.
func Intersect(ray core.Ray, obj *scene.Object) (float64, bool) {
	inv, err := obj.WorldToCanonical()
	if err != nil {
		return 0, false
	}
	return geometry.Intersect(obj.Kind, ray.Transform(inv))
}

// AnyIntersection reports whether the ray hits any object other than exclude.
// It stops at the first accepted hit. A ray without direction hits nothing.
func AnyIntersection(ray core.Ray, objects []*scene.Object, exclude *scene.Object) bool {
	if ray.Direction.IsZero() {
		return false
	}
	for _, obj := range objects {
		if obj == exclude {
			continue
		}
		if _, ok := Intersect(ray, obj); ok {
			return true
		}
	}
	return false
}

// NearestHit returns the object with the globally smallest positive hit
// parameter. Ties keep the object encountered first.
func NearestHit(ray core.Ray, objects []*scene.Object) (Hit, bool) {
	return nearestHitWhere(ray, objects, nil)
}

// nearestHitWhere is NearestHit restricted to hits accepted by keep (nil keeps all)
func nearestHitWhere(ray core.Ray, objects []*scene.Object, keep func(ray core.Ray, t float64) bool) (Hit, bool) {
	best := Hit{T: math.Inf(1)}
	found := false

	for _, obj := range objects {
		t, ok := Intersect(ray, obj)
		if !ok || t >= best.T {
			continue
		}
		if keep != nil && !keep(ray, t) {
			continue
		}
		best = Hit{Object: obj, T: t}
		found = true
	}

	return best, found
}
