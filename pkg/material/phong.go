package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// AmbientLight is the fixed scene-wide ambient illumination
var AmbientLight = core.Gray(0.08)

// DiffuseIntensity returns the light reflected diffusely toward every
// direction: lightColor · kd · max(0, cos θ), where θ is the angle between
// toLight and normal. Neither vector needs to be normalized.
func DiffuseIntensity(m Material, toLight, normal core.Vec3, lightColor core.Color) core.Color {
	return lightColor.Scale(m.DiffuseCoefficient * max(0, cosine(toLight, normal)))
}

// Diffuse is DiffuseIntensity tinted by the material's diffuse color
func Diffuse(m Material, toLight, normal core.Vec3, lightColor core.Color) core.Color {
	return DiffuseIntensity(m, toLight, normal, lightColor).Modulate(m.DiffuseColor)
}

// SpecularIntensity returns the Phong highlight: the light direction is
// mirrored about the normal and compared against the direction to the viewer,
// lightColor · ks · max(0, cos φ)^shininess.
func SpecularIntensity(m Material, toLight, normal, toCamera core.Vec3, lightColor core.Color) core.Color {
	nn := normal.LengthSquared()
	if nn == 0 {
		return core.Color{}
	}
	r := toLight.Negate().Add(normal.Multiply(2 * toLight.Dot(normal) / nn))
	return lightColor.Scale(m.SpecularCoefficient * math.Pow(max(0, cosine(r, toCamera)), m.Shininess))
}

// Specular is SpecularIntensity tinted by the material's specular color
func Specular(m Material, toLight, normal, toCamera core.Vec3, lightColor core.Color) core.Color {
	return SpecularIntensity(m, toLight, normal, toCamera, lightColor).Modulate(m.SpecularColor)
}

// Ambient returns the ambient contribution, independent of any light position
func Ambient(m Material) core.Color {
	return AmbientLight.Scale(m.AmbientCoefficient).Modulate(m.AmbientColor)
}

// cosine returns the cosine of the angle between a and b, or 0 if either has zero length
func cosine(a, b core.Vec3) float64 {
	l := a.Length() * b.Length()
	if l == 0 {
		return 0
	}
	return a.Dot(b) / l
}
