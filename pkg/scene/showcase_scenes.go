package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// showcaseCamera looks down at the origin from the +x side, slightly raised
func showcaseCamera(cameraOverrides []geometry.CameraConfig) geometry.CameraConfig {
	defaultCameraConfig := geometry.CameraConfig{
		Eye:           core.NewPoint3(40, 12, 16),
		Gaze:          core.NewPoint3(0, 0, 3),
		Up:            core.NewVec3(0, 0, 1),
		Near:          10,
		Far:           120,
		VFov:          40,
		AspectRatio:   16.0 / 9.0,
		Width:         480,
		Height:        270,
		SuperSampling: 1,
	}
	if len(cameraOverrides) > 0 {
		return geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}
	return defaultCameraConfig
}

func groundPlane() *Object {
	ground := material.New(black, core.Gray(0.6), white, 0.45, 0.1, 0.45, 80)
	return must(NewObject("ground", geometry.Plane, core.Identity(), ground))
}

// NewSphereGridScene creates a 3x3 grid of spheres whose shininess grows along
// one axis and whose hue changes along the other
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New(showcaseCamera(cameraOverrides))
	s.Name = "spheres"
	s.ClipFar = true
	s.Add(groundPlane())

	hues := []core.Color{
		core.NewColor(0.9, 0.2, 0.2),
		core.NewColor(0.2, 0.9, 0.3),
		core.NewColor(0.2, 0.4, 0.9),
	}
	shininess := []float64{4, 20, 100}

	for i, hue := range hues {
		for j, f := range shininess {
			offset := core.NewPoint3(float64(j-1)*6, float64(i-1)*6, 2)
			s.Add(must(NewObject(
				fmt.Sprintf("sphere %d,%d", i, j),
				geometry.Sphere,
				Place(offset, Uniform(2)),
				material.Matte(hue, f),
			)))
		}
	}

	return s
}

// NewCylinderScene shows cylinders standing, leaning and lying down, so both
// caps and the side wall are visible
func NewCylinderScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New(showcaseCamera(cameraOverrides))
	s.Name = "cylinder"
	s.ClipFar = true
	s.Add(groundPlane())

	s.Add(
		must(NewObject("standing", geometry.Cylinder,
			Place(core.NewPoint3(0, 0, 4), core.NewVec3(3, 3, 4)),
			material.Matte(core.NewColor(0.9, 0.6, 0.2), 13))),
		must(NewObject("leaning", geometry.Cylinder,
			Place(core.NewPoint3(-2, 9, 5), core.NewVec3(1.5, 1.5, 4), core.RotateY(math.Pi/4)),
			material.Matte(core.NewColor(0.3, 0.7, 0.9), 30))),
		must(NewObject("lying", geometry.Cylinder,
			Place(core.NewPoint3(2, -9, 2), core.NewVec3(2, 2, 3), core.RotateX(math.Pi/2)),
			material.Matte(core.NewColor(0.6, 0.9, 0.4), 8))),
	)

	return s
}

// NewConeScene shows an upright cone, one balanced on its apex and one lying
// on its side with the cap facing the camera
func NewConeScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New(showcaseCamera(cameraOverrides))
	s.Name = "cone"
	s.ClipFar = true
	s.Add(groundPlane())

	s.Add(
		must(NewObject("upright", geometry.Cone,
			Place(core.NewPoint3(0, 0, 5), core.NewVec3(3, 3, 5)),
			material.Matte(core.NewColor(0.9, 0.3, 0.3), 13))),
		must(NewObject("inverted", geometry.Cone,
			Place(core.NewPoint3(0, 9, 4), core.NewVec3(2, 2, 3), core.RotateX(math.Pi)),
			material.Matte(core.NewColor(0.9, 0.8, 0.2), 40))),
		must(NewObject("on its side", geometry.Cone,
			Place(core.NewPoint3(4, -9, 2), core.NewVec3(2, 2, 3), core.RotateY(-math.Pi/2)),
			material.Matte(core.NewColor(0.3, 0.5, 0.9), 13))),
	)

	return s
}
