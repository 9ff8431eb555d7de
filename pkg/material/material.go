package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material describes how a surface responds to light under the Phong model.
// Colors are nominally in [0,1] and coefficients conventionally sum to at
// most 1; neither is enforced.
type Material struct {
	Color         core.Color // Base color, added to every shaded sample
	DiffuseColor  core.Color
	SpecularColor core.Color
	AmbientColor  core.Color

	DiffuseCoefficient  float64
	SpecularCoefficient float64
	AmbientCoefficient  float64

	Shininess float64 // Specular exponent, ≥ 0
}

// New creates a material whose diffuse and ambient colors are the same, which
// is how most scene objects are authored
func New(base, surface, specular core.Color, kd, ks, ka, shininess float64) Material {
	return Material{
		Color:               base,
		DiffuseColor:        surface,
		SpecularColor:       specular,
		AmbientColor:        surface,
		DiffuseCoefficient:  kd,
		SpecularCoefficient: ks,
		AmbientCoefficient:  ka,
		Shininess:           shininess,
	}
}

// Matte returns a material with white specular highlights and the common
// 0.3/0.35/0.35 specular/diffuse/ambient split
func Matte(surface core.Color, shininess float64) Material {
	return New(core.Color{}, surface, core.Gray(1), 0.35, 0.3, 0.35, shininess)
}

// Validate rejects negative shininess and non-finite fields
func (m Material) Validate() error {
	if m.Shininess < 0 {
		return fmt.Errorf("%w: shininess must be non-negative, got %f", core.ErrInvalidMaterial, m.Shininess)
	}

	scalars := map[string]float64{
		"diffuse coefficient":  m.DiffuseCoefficient,
		"specular coefficient": m.SpecularCoefficient,
		"ambient coefficient":  m.AmbientCoefficient,
		"shininess":            m.Shininess,
	}
	for name, v := range scalars {
		if !finite(v) {
			return fmt.Errorf("%w: %s is not finite", core.ErrInvalidMaterial, name)
		}
	}

	colors := map[string]core.Color{
		"color":          m.Color,
		"diffuse color":  m.DiffuseColor,
		"specular color": m.SpecularColor,
		"ambient color":  m.AmbientColor,
	}
	for name, c := range colors {
		if !finite(c.R) || !finite(c.G) || !finite(c.B) {
			return fmt.Errorf("%w: %s %v is not finite", core.ErrInvalidMaterial, name, c)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
