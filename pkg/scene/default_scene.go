package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

var (
	white      = core.ColorFromRGB8(255, 255, 255)
	whiteSmoke = core.ColorFromRGB8(245, 245, 245)
	cyan       = core.ColorFromRGB8(0, 255, 255)
	wheat      = core.ColorFromRGB8(245, 222, 179)
	lightBlue  = core.ColorFromRGB8(173, 216, 230)
	black      = core.Color{}
	faintGreen = core.ColorFromRGB8(0, 10, 0)
)

// snowmanMaterial is the shared look of the snowman's parts: a faint green
// base glow, white highlights and a 0.3/0.35/0.35 split
func snowmanMaterial(surface core.Color) material.Material {
	return material.New(faintGreen, surface, white, 0.35, 0.3, 0.35, 13)
}

// must unwraps object construction for hard-coded scenes, where a failure is a
// programming error
func must(obj *Object, err error) *Object {
	if err != nil {
		panic(err)
	}
	return obj
}

// NewDefaultScene creates the snowman scene: a head with eyes and a smile under
// a cone hat, standing on a ground plane
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Eye:           core.NewPoint3(50, 0, 10),
		Gaze:          core.NewPoint3(0, 0, 9),
		Up:            core.NewVec3(0, 0, 1),
		Near:          15,
		Far:           150,
		VFov:          45,
		AspectRatio:   1.0,
		Width:         400,
		Height:        400,
		SuperSampling: 1,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig)
	s.Name = "default"
	s.ClipFar = true

	ground := material.New(black, whiteSmoke, white, 0.45, 0.1, 0.45, 80)
	pupil := material.New(faintGreen, black, white, 0.45, 0.1, 0.45, 13)

	s.Add(
		must(NewObject("ground", geometry.Plane, core.Identity(), ground)),
		must(NewObject("hat", geometry.Cone,
			Place(core.NewPoint3(20, 0, 18), core.NewVec3(5, 5, 3)), snowmanMaterial(cyan))),
		must(NewObject("face", geometry.Sphere,
			Place(core.NewPoint3(20, 0, 8), Uniform(8)), snowmanMaterial(white))),

		must(NewObject("left eye", geometry.Sphere,
			Place(core.NewPoint3(26, -2, 11), Uniform(2)), snowmanMaterial(wheat))),
		must(NewObject("left pupil", geometry.Sphere,
			Place(core.NewPoint3(27.8, -1.5, 11.5), Uniform(0.3)), pupil)),
		must(NewObject("right eye", geometry.Sphere,
			Place(core.NewPoint3(26, 2, 11), Uniform(2)), snowmanMaterial(wheat))),
		must(NewObject("right pupil", geometry.Sphere,
			Place(core.NewPoint3(27.8, 2.8, 11.5), Uniform(0.3)), pupil)),

		// The mouth lies along y, so the canonical z axis is turned onto it
		must(NewObject("mouth", geometry.Cylinder,
			Place(core.NewPoint3(27, 0, 6), core.NewVec3(1, 1, 3), core.RotateX(math.Pi/2)),
			snowmanMaterial(lightBlue))),
		must(NewObject("mouth left", geometry.Sphere,
			Place(core.NewPoint3(27, -3, 6), Uniform(1)), snowmanMaterial(lightBlue))),
		must(NewObject("mouth right", geometry.Sphere,
			Place(core.NewPoint3(27, 3, 6), Uniform(1)), snowmanMaterial(lightBlue))),
	)

	return s
}
