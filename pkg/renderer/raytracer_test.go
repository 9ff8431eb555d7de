package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const colorTolerance = 1e-9

var (
	whiteMaterial = material.New(core.Color{}, core.Gray(1), core.Gray(1), 0.35, 0.3, 0.35, 10)
	lightOff      = lights.NewPointLight(core.Origin, core.Color{})
	sunOff        = lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.Color{})
)

// newTestRaytracer looks from (5,0,0) at the origin with z up. The near plane
// is at distance 1, so primary directions through the image center have unit
// length and t equals distance.
func newTestRaytracer(t *testing.T, opts ...RaytracerOption) *Raytracer {
	t.Helper()
	cfg := geometry.NewCameraConfig(core.NewPoint3(5, 0, 0), core.Origin, core.NewVec3(0, 0, 1))
	cfg.Near = 1
	cfg.Far = 20
	cfg.Width = 2
	cfg.Height = 2
	camera, err := geometry.NewCamera(cfg)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	return NewRaytracer(camera, opts...)
}

func newSphere(t *testing.T, name string, center core.Point3, radius float64) *scene.Object {
	t.Helper()
	obj, err := scene.NewObject(name, geometry.Sphere, scene.Place(center, scene.Uniform(radius)), whiteMaterial)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}
	return obj
}

func colorsEqual(a, b core.Color) bool {
	return math.Abs(a.R-b.R) < colorTolerance &&
		math.Abs(a.G-b.G) < colorTolerance &&
		math.Abs(a.B-b.B) < colorTolerance
}

var towardOrigin = core.NewVec3(-1, 0, 0)

func TestTraceRay_MissReturnsBackground(t *testing.T) {
	rt := newTestRaytracer(t)
	objects := []*scene.Object{newSphere(t, "ball", core.NewPoint3(0, 10, 0), 1)}

	got := rt.TraceRay(objects, rt.Camera().Position(), towardOrigin, lightOff, sunOff)
	if got != core.Background {
		t.Errorf("Expected background, got %v", got)
	}
}

func TestTraceRay_EmptySceneReturnsBackground(t *testing.T) {
	rt := newTestRaytracer(t)
	got := rt.TraceRay(nil, rt.Camera().Position(), towardOrigin, lightOff, sunOff)
	if got != core.Background {
		t.Errorf("Expected background, got %v", got)
	}
}

func TestTraceRay_AmbientOnly(t *testing.T) {
	rt := newTestRaytracer(t)
	mat := material.New(core.NewColor(0.1, 0, 0), core.NewColor(1, 0.5, 0), core.Gray(1), 0.35, 0.3, 1, 10)
	ball, err := scene.NewObject("ball", geometry.Sphere, core.Identity(), mat)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}

	got := rt.TraceRay([]*scene.Object{ball}, rt.Camera().Position(), towardOrigin, lightOff, sunOff)
	want := core.NewColor(0.1+0.08, 0.04, 0)
	if !colorsEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTraceRay_HeadOnLight(t *testing.T) {
	rt := newTestRaytracer(t)
	objects := []*scene.Object{newSphere(t, "ball", core.Origin, 1)}
	pl := lights.NewPointLight(core.NewPoint3(5, 0, 0), core.Gray(1))

	// Light and viewer on the normal: full diffuse and full specular
	got := rt.TraceRay(objects, rt.Camera().Position(), towardOrigin, pl, sunOff)
	want := core.Gray(0.35 + 0.3 + 0.08*0.35)
	if !colorsEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTraceRay_Deterministic(t *testing.T) {
	rt := newTestRaytracer(t)
	objects := []*scene.Object{
		newSphere(t, "ball", core.Origin, 1),
		newSphere(t, "other", core.NewPoint3(0, 2, 1), 0.5),
	}
	pl := lights.NewPointLight(core.NewPoint3(3, 4, 5), core.Gray(1))
	dl := lights.NewDirectionalLight(core.NewVec3(-1, -1, -1), core.Gray(0.5))
	dir := core.NewVec3(-1, 0.05, 0.1)

	first := rt.TraceRay(objects, rt.Camera().Position(), dir, pl, dl)
	for i := 0; i < 5; i++ {
		if got := rt.TraceRay(objects, rt.Camera().Position(), dir, pl, dl); got != first {
			t.Fatalf("Trace %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestShade_PointLightShadowed(t *testing.T) {
	rt := newTestRaytracer(t)
	ball := newSphere(t, "ball", core.Origin, 1)
	blocker := newSphere(t, "blocker", core.NewPoint3(0, 0, 5), 1)
	objects := []*scene.Object{ball, blocker}
	pl := lights.NewPointLight(core.NewPoint3(-1, 0, 10), core.Gray(1))

	ray := core.NewRay(rt.Camera().Position(), towardOrigin)
	hit, ok := NearestHit(ray, objects)
	if !ok || hit.Object != ball {
		t.Fatalf("Expected to hit ball, got %+v", hit)
	}

	shading := rt.shade(objects, ray, hit, pl, sunOff)
	if !shading.PointLightShadowed {
		t.Error("Expected point light to be shadowed")
	}
	if !shading.Diffuse.IsBlack() || !shading.Specular.IsBlack() {
		t.Errorf("Shadowed light contributed diffuse=%v specular=%v", shading.Diffuse, shading.Specular)
	}
	if !colorsEqual(shading.Color(), material.Ambient(whiteMaterial)) {
		t.Errorf("Expected ambient only, got %v", shading.Color())
	}
}

func TestShade_ShadowRayIsUnbounded(t *testing.T) {
	rt := newTestRaytracer(t)
	ball := newSphere(t, "ball", core.Origin, 1)
	// Blocker sits beyond the light along the shadow ray
	blocker := newSphere(t, "blocker", core.NewPoint3(1, 0, 10), 1)
	objects := []*scene.Object{ball, blocker}
	pl := lights.NewPointLight(core.NewPoint3(1, 0, 3), core.Gray(1))

	ray := core.NewRay(rt.Camera().Position(), towardOrigin)
	hit, _ := NearestHit(ray, objects)
	shading := rt.shade(objects, ray, hit, pl, sunOff)
	if !shading.PointLightShadowed {
		t.Error("Expected an object beyond the light to cast a shadow")
	}
}

func TestShade_SunShadowed(t *testing.T) {
	rt := newTestRaytracer(t)
	ball := newSphere(t, "ball", core.Origin, 1)
	roof := newSphere(t, "roof", core.NewPoint3(1, 0, 5), 2)
	objects := []*scene.Object{ball, roof}
	dl := lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.Gray(1))

	ray := core.NewRay(rt.Camera().Position(), towardOrigin)
	hit, _ := NearestHit(ray, objects)
	shading := rt.shade(objects, ray, hit, lightOff, dl)
	if !shading.SunShadowed {
		t.Error("Expected sun to be shadowed")
	}
	if shading.PointLightShadowed {
		t.Error("A switched-off light should never be reported as shadowed")
	}
}

func TestTraceRay_NearestOfTwo(t *testing.T) {
	rt := newTestRaytracer(t)
	red := material.New(core.NewColor(1, 0, 0), core.Color{}, core.Color{}, 0, 0, 0, 1)
	blue := material.New(core.NewColor(0, 0, 1), core.Color{}, core.Color{}, 0, 0, 0, 1)
	far, _ := scene.NewObject("far", geometry.Sphere, core.Identity(), red)
	near, _ := scene.NewObject("near", geometry.Sphere, scene.Place(core.NewPoint3(3, 0, 0), scene.Uniform(0.5)), blue)

	// Order in the slice must not matter
	for _, objects := range [][]*scene.Object{{far, near}, {near, far}} {
		got := rt.TraceRay(objects, rt.Camera().Position(), towardOrigin, lightOff, sunOff)
		if got != core.NewColor(0, 0, 1) {
			t.Errorf("Expected nearest (blue) sphere, got %v", got)
		}
	}
}

func TestTraceRay_FarClipping(t *testing.T) {
	objects := []*scene.Object{newSphere(t, "distant", core.NewPoint3(-30, 0, 0), 1)}

	unclipped := newTestRaytracer(t)
	if got := unclipped.TraceRay(objects, unclipped.Camera().Position(), towardOrigin, lightOff, sunOff); got == core.Background {
		t.Error("Expected hit without far clipping")
	}

	clipped := newTestRaytracer(t, WithFarClipping(true))
	if got := clipped.TraceRay(objects, clipped.Camera().Position(), towardOrigin, lightOff, sunOff); got != core.Background {
		t.Errorf("Expected background beyond far plane, got %v", got)
	}
}

func TestTracePixel_CountsStats(t *testing.T) {
	stats := &RenderStats{}
	rt := newTestRaytracer(t, WithStats(stats))
	objects := []*scene.Object{newSphere(t, "ball", core.Origin, 1)}
	pl := lights.NewPointLight(core.NewPoint3(5, 0, 0), core.Gray(1))

	rt.TracePixel(objects, 1, 1, pl, sunOff)

	snap := stats.Snapshot()
	if snap.PrimaryRays != 1 || snap.Hits != 1 || snap.ShadowRays != 1 || snap.OccludedRays != 0 {
		t.Errorf("Unexpected stats: %+v", snap)
	}
}

func TestInspectPixel(t *testing.T) {
	rt := newTestRaytracer(t)
	objects := []*scene.Object{newSphere(t, "ball", core.Origin, 1)}
	pl := lights.NewPointLight(core.NewPoint3(5, 0, 0), core.Gray(1))

	info := rt.InspectPixel(objects, 1, 1, pl, sunOff)
	if !info.Hit {
		t.Fatal("Expected center pixel to hit")
	}
	if info.Object != "ball" || info.Kind != "sphere" {
		t.Errorf("Expected ball (sphere), got %s (%s)", info.Object, info.Kind)
	}
	if math.Abs(info.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", info.T)
	}
	if !info.WorldPoint.Equals(core.NewPoint3(1, 0, 0)) {
		t.Errorf("Expected world point (1,0,0), got %v", info.WorldPoint)
	}
	if info.Depth < -1 || info.Depth > 1 {
		t.Errorf("Expected depth inside the view volume, got %f", info.Depth)
	}
	if info.Color != info.Shading.Color() {
		t.Errorf("Color %v does not match shading sum %v", info.Color, info.Shading.Color())
	}

	miss := rt.InspectPixel(objects, 0, 0, pl, sunOff)
	if miss.Hit || miss.Color != core.Background {
		t.Errorf("Expected corner pixel to miss, got %+v", miss)
	}
}
