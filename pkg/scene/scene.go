package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig geometry.CameraConfig
	PointLight   lights.PointLight
	Sun          lights.DirectionalLight
	ClipFar      bool // Discard visible hits beyond the camera's far plane

	objects []*Object
}

// New creates an empty scene with a white point light far above and to the
// side and a white sun shining straight down
func New(cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		CameraConfig: cameraConfig,
		PointLight:   lights.NewPointLight(core.NewPoint3(1000, 1000, 1000), core.Gray(1)),
		Sun:          lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.Gray(1)),
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...*Object) {
	s.objects = append(s.objects, objects...)
}

// Objects returns the scene's objects in insertion order. The slice is a copy;
// the objects are shared.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Lights returns the point light and the directional light
func (s *Scene) Lights() (lights.PointLight, lights.DirectionalLight) {
	return s.PointLight, s.Sun
}

// SetLights replaces both lights
func (s *Scene) SetLights(pl lights.PointLight, dl lights.DirectionalLight) {
	s.PointLight = pl
	s.Sun = dl
}

// Camera builds the camera described by the scene's configuration
func (s *Scene) Camera() (*geometry.Camera, error) {
	return geometry.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.objects)
}

// Validate checks the camera and every object before a render pass
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	for i, obj := range s.objects {
		if obj == nil {
			return fmt.Errorf("scene %q: object %d is nil", s.Name, i)
		}
		if err := obj.Validate(); err != nil {
			return fmt.Errorf("scene %q: %w", s.Name, err)
		}
	}
	return nil
}
