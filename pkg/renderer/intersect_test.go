package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestIntersect_TransformedObjects(t *testing.T) {
	origin := core.NewPoint3(10, 0, 0)
	dir := core.NewVec3(-1, 0, 0)

	tests := []struct {
		name      string
		kind      geometry.ShapeKind
		transform core.Mat4
		wantHit   bool
		wantT     float64
	}{
		{"unit sphere", geometry.Sphere, core.Identity(), true, 9},
		{"scaled sphere", geometry.Sphere, core.Scale(3, 3, 3), true, 7},
		{"stretched sphere", geometry.Sphere, core.Scale(4, 1, 1), true, 6},
		{"translated sphere", geometry.Sphere, core.Translate(-5, 0, 0), true, 14},
		{"sphere out of the way", geometry.Sphere, core.Translate(0, 5, 0), false, 0},
		{"wall plane", geometry.Plane, core.Translate(2, 0, 0).Mul(core.RotateY(math.Pi / 2)), true, 8},
		{"lying cylinder", geometry.Cylinder, core.RotateY(math.Pi / 2), true, 9},
		{"standing cylinder", geometry.Cylinder, scene.Place(core.Origin, core.NewVec3(2, 2, 1)), true, 8},
		{"sphere behind the ray", geometry.Sphere, core.Translate(20, 0, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := &scene.Object{Name: tt.name, Kind: tt.kind, Transform: tt.transform}
			got, ok := Intersect(core.NewRay(origin, dir), obj)
			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v (t=%f)", tt.wantHit, ok, got)
			}
			if ok && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.wantT, got)
			}
		})
	}
}

func TestIntersect_SingularTransformNeverHits(t *testing.T) {
	obj := &scene.Object{Name: "flat", Kind: geometry.Sphere, Transform: core.Scale(1, 1, 0)}
	if _, ok := Intersect(core.NewRay(core.NewPoint3(0, 0, 10), core.NewVec3(0, 0, -1)), obj); ok {
		t.Error("Expected no hit for a singular transform")
	}
}

func TestNearestHit_TiesKeepFirst(t *testing.T) {
	a := &scene.Object{Name: "a", Kind: geometry.Sphere, Transform: core.Identity()}
	b := &scene.Object{Name: "b", Kind: geometry.Sphere, Transform: core.Identity()}

	hit, ok := NearestHit(core.NewRay(core.NewPoint3(5, 0, 0), core.NewVec3(-1, 0, 0)), []*scene.Object{a, b})
	if !ok || hit.Object != a {
		t.Errorf("Expected first object on a tie, got %+v", hit)
	}
}

func TestNearestHit_NoObjects(t *testing.T) {
	if _, ok := NearestHit(core.NewRay(core.Origin, core.NewVec3(1, 0, 0)), nil); ok {
		t.Error("Expected no hit in an empty scene")
	}
}

func TestAnyIntersection(t *testing.T) {
	self := &scene.Object{Name: "self", Kind: geometry.Sphere, Transform: core.Identity()}
	other := &scene.Object{Name: "other", Kind: geometry.Sphere, Transform: core.Translate(0, 0, 5)}
	objects := []*scene.Object{self, other}
	from := core.NewPoint3(0, 0, 1)

	tests := []struct {
		name    string
		dir     core.Vec3
		exclude *scene.Object
		want    bool
	}{
		{"blocked by other", core.NewVec3(0, 0, 1), self, true},
		{"clear sideways", core.NewVec3(1, 0, 0), self, false},
		{"self counts when not excluded", core.NewVec3(0, 0, -1), nil, true},
		{"self excluded", core.NewVec3(0, 0, -1), self, false},
		{"zero direction", core.Vec3{}, self, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyIntersection(core.NewRay(from, tt.dir), objects, tt.exclude); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
