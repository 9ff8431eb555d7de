package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Raytracer answers "what color does this ray see" for a fixed camera. It
// holds no mutable state besides optional statistics, so a single instance
// can serve any number of goroutines.
type Raytracer struct {
	camera  *geometry.Camera
	clipFar bool
	stats   *RenderStats
}

// RaytracerOption configures a Raytracer.
type RaytracerOption func(*Raytracer)

// WithFarClipping discards visible hits that lie beyond the camera's far plane
func WithFarClipping(enabled bool) RaytracerOption {
	return func(rt *Raytracer) {
		rt.clipFar = enabled
	}
}

// WithStats records ray counts into stats. Counters are updated atomically.
func WithStats(stats *RenderStats) RaytracerOption {
	return func(rt *Raytracer) {
		rt.stats = stats
	}
}

// NewRaytracer creates a new raytracer for the given camera
func NewRaytracer(camera *geometry.Camera, opts ...RaytracerOption) *Raytracer {
	rt := &Raytracer{camera: camera}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// Shading breaks a traced color into its Phong terms
type Shading struct {
	Diffuse  core.Color
	Specular core.Color
	Ambient  core.Color
	Base     core.Color

	PointLightShadowed bool
	SunShadowed        bool
}

// Color returns the sum of all terms. Values are not clamped.
func (s Shading) Color() core.Color {
	return s.Diffuse.Add(s.Specular).Add(s.Ambient).Add(s.Base)
}

// TraceRay returns the color seen along the ray from origin in direction dir.
// Rays that hit nothing return core.Background.
func (rt *Raytracer) TraceRay(objects []*scene.Object, origin core.Point3, dir core.Vec3, pl lights.PointLight, dl lights.DirectionalLight) core.Color {
	ray := core.NewRay(origin, dir)
	rt.stats.addPrimary()

	hit, ok := rt.nearestVisible(ray, objects)
	if !ok {
		return core.Background
	}
	rt.stats.addHit()

	return rt.shade(objects, ray, hit, pl, dl).Color()
}

// TracePixel traces the primary ray through sub-pixel (column, row) of the
// camera's super-sampled raster
func (rt *Raytracer) TracePixel(objects []*scene.Object, column, row int, pl lights.PointLight, dl lights.DirectionalLight) core.Color {
	superW, superH := rt.camera.SuperSampledSize()
	dir := rt.camera.RayDirectionForPixel(column, row, superW, superH)
	return rt.TraceRay(objects, rt.camera.Position(), dir, pl, dl)
}

// nearestVisible finds the nearest hit, skipping hits past the far plane when
// clipping is enabled
func (rt *Raytracer) nearestVisible(ray core.Ray, objects []*scene.Object) (Hit, bool) {
	if !rt.clipFar || rt.camera == nil {
		return NearestHit(ray, objects)
	}
	return nearestHitWhere(ray, objects, func(r core.Ray, t float64) bool {
		return rt.camera.CanonicalDepth(r.At(t)) <= 1
	})
}

// shade evaluates the Phong model at a hit. Lighting vectors are expressed in
// the hit object's canonical space, where the normal is defined; shadow rays
// are cast in world space from the world hit point.
func (rt *Raytracer) shade(objects []*scene.Object, ray core.Ray, hit Hit, pl lights.PointLight, dl lights.DirectionalLight) Shading {
	obj := hit.Object
	mat := obj.Material

	// Intersect already proved the transform invertible
	inv, _ := obj.WorldToCanonical()

	worldPoint := ray.At(hit.T)
	p := inv.TransformPoint(worldPoint)
	n := geometry.Normal(obj.Kind, p)
	v := inv.TransformPoint(ray.Origin).Subtract(p)

	shading := Shading{
		Ambient: material.Ambient(mat),
		Base:    mat.Color,
	}

	if !pl.Off() {
		shading.PointLightShadowed = rt.inShadow(objects, worldPoint, pl.ToLight(worldPoint), obj)
		if !shading.PointLightShadowed {
			s := inv.TransformPoint(pl.Position).Subtract(p)
			shading.Diffuse = shading.Diffuse.Add(material.Diffuse(mat, s, n, pl.Color))
			shading.Specular = shading.Specular.Add(material.Specular(mat, s, n, v, pl.Color))
		}
	}

	if !dl.Off() {
		shading.SunShadowed = rt.inShadow(objects, worldPoint, dl.ToLight(worldPoint), obj)
		if !shading.SunShadowed {
			s := inv.TransformVector(dl.ToLight(worldPoint))
			shading.Diffuse = shading.Diffuse.Add(material.Diffuse(mat, s, n, dl.Color))
			shading.Specular = shading.Specular.Add(material.Specular(mat, s, n, v, dl.Color))
		}
	}

	return shading
}

// inShadow casts a shadow ray with no upper bound: anything along the ray
// direction, even past a point light, blocks it
func (rt *Raytracer) inShadow(objects []*scene.Object, from core.Point3, toLight core.Vec3, self *scene.Object) bool {
	rt.stats.addShadow()
	blocked := AnyIntersection(core.NewRay(from, toLight), objects, self)
	if blocked {
		rt.stats.addOccluded()
	}
	return blocked
}

// Inspection describes what a single primary ray sees, for debugging
type Inspection struct {
	Column, Row int
	Hit         bool
	Object      string
	Kind        string
	T           float64
	WorldPoint  core.Point3
	LocalPoint  core.Point3 // Hit point in the object's canonical space
	Normal      core.Vec3   // Canonical-space surface normal
	Depth       float64     // Canonical view-volume depth
	Shading     Shading
	Color       core.Color
}

// InspectPixel traces sub-pixel (column, row) like TracePixel and reports the
// intermediate results
func (rt *Raytracer) InspectPixel(objects []*scene.Object, column, row int, pl lights.PointLight, dl lights.DirectionalLight) Inspection {
	superW, superH := rt.camera.SuperSampledSize()
	ray := core.NewRay(rt.camera.Position(), rt.camera.RayDirectionForPixel(column, row, superW, superH))

	result := Inspection{Column: column, Row: row, Color: core.Background}
	hit, ok := rt.nearestVisible(ray, objects)
	if !ok {
		return result
	}

	inv, _ := hit.Object.WorldToCanonical()
	world := ray.At(hit.T)
	local := inv.TransformPoint(world)

	result.Hit = true
	result.Object = hit.Object.Name
	result.Kind = hit.Object.Kind.String()
	result.T = hit.T
	result.WorldPoint = world
	result.LocalPoint = local
	result.Normal = geometry.Normal(hit.Object.Kind, local)
	result.Depth = rt.camera.CanonicalDepth(world)
	result.Shading = rt.shade(objects, ray, hit, pl, dl)
	result.Color = result.Shading.Color()
	return result
}
