package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// PointLight emits from a single position in every direction
type PointLight struct {
	Position core.Point3
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point3, color core.Color) PointLight {
	return PointLight{Position: position, Color: color}
}

func (l PointLight) Type() LightType { return LightTypePoint }

// ToLight returns the unnormalized vector from p to the light
func (l PointLight) ToLight(p core.Point3) core.Vec3 {
	return l.Position.Subtract(p)
}

// DirectionalLight illuminates the whole scene along one direction, as if
// from an infinitely distant source
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels
	Color     core.Color
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, color core.Color) DirectionalLight {
	return DirectionalLight{Direction: direction, Color: color}
}

func (l DirectionalLight) Type() LightType { return LightTypeDirectional }

// ToLight returns the direction toward the source, the same at every point
func (l DirectionalLight) ToLight(core.Point3) core.Vec3 {
	return l.Direction.Negate()
}

// Off reports whether the light contributes nothing
func (l DirectionalLight) Off() bool {
	return l.Color.IsBlack() || l.Direction.IsZero()
}

// Off reports whether the light contributes nothing
func (l PointLight) Off() bool {
	return l.Color.IsBlack()
}
