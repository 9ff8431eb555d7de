package material

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	. "github.com/smartystreets/goconvey/convey"
)

func testMaterial() Material {
	return Material{
		Color:               core.Color{},
		DiffuseColor:        core.NewColor(1, 0.5, 0.25),
		SpecularColor:       core.Gray(1),
		AmbientColor:        core.NewColor(0.5, 1, 1),
		DiffuseCoefficient:  0.5,
		SpecularCoefficient: 0.4,
		AmbientCoefficient:  0.25,
		Shininess:           10,
	}
}

func shouldBeColor(actual any, expected ...any) string {
	got := actual.(core.Color)
	want := expected[0].(core.Color)
	const tolerance = 1e-9
	if math.Abs(got.R-want.R) > tolerance || math.Abs(got.G-want.G) > tolerance || math.Abs(got.B-want.B) > tolerance {
		return fmt.Sprintf("Expected color %v, got %v", want, got)
	}
	return ""
}

func TestDiffuse(t *testing.T) {
	Convey("Diffuse reflection", t, func() {
		m := testMaterial()
		normal := core.NewVec3(0, 0, 2)
		white := core.Gray(1)

		Convey("is strongest for light along the normal", func() {
			got := DiffuseIntensity(m, core.NewVec3(0, 0, 5), normal, white)
			So(got, shouldBeColor, core.Gray(0.5))
		})

		Convey("falls off with the cosine of the incidence angle", func() {
			got := DiffuseIntensity(m, core.NewVec3(1, 0, 1), normal, white)
			So(got, shouldBeColor, core.Gray(0.5*math.Sqrt2/2))
		})

		Convey("is zero for light behind the surface", func() {
			got := DiffuseIntensity(m, core.NewVec3(0, 0, -1), normal, white)
			So(got.IsBlack(), ShouldBeTrue)
		})

		Convey("is zero for a degenerate light direction", func() {
			got := DiffuseIntensity(m, core.Vec3{}, normal, white)
			So(got.IsBlack(), ShouldBeTrue)
		})

		Convey("is tinted by the light and the diffuse color", func() {
			got := Diffuse(m, core.NewVec3(0, 0, 1), normal, core.NewColor(1, 1, 0))
			So(got, shouldBeColor, core.NewColor(0.5, 0.25, 0))
		})
	})
}

func TestSpecular(t *testing.T) {
	Convey("Specular reflection", t, func() {
		m := testMaterial()
		normal := core.NewVec3(0, 0, 1)
		white := core.Gray(1)

		Convey("peaks when the viewer sits on the mirror direction", func() {
			got := SpecularIntensity(m, core.NewVec3(1, 0, 1), normal, core.NewVec3(-1, 0, 1), white)
			So(got, shouldBeColor, core.Gray(0.4))
		})

		Convey("decays with the shininess exponent", func() {
			toCamera := core.NewVec3(0, 0, 1)
			got := SpecularIntensity(m, core.NewVec3(1, 0, 1), normal, toCamera, white)
			So(got, shouldBeColor, core.Gray(0.4*math.Pow(math.Sqrt2/2, 10)))
		})

		Convey("ignores the normal's length", func() {
			a := SpecularIntensity(m, core.NewVec3(1, 0, 2), normal, core.NewVec3(0, 1, 1), white)
			b := SpecularIntensity(m, core.NewVec3(1, 0, 2), normal.Multiply(7), core.NewVec3(0, 1, 1), white)
			So(a, shouldBeColor, b)
		})

		Convey("is zero for a zero normal", func() {
			got := SpecularIntensity(m, core.NewVec3(1, 0, 1), core.Vec3{}, core.NewVec3(0, 0, 1), white)
			So(got.IsBlack(), ShouldBeTrue)
		})

		Convey("is tinted by the specular color", func() {
			m.SpecularColor = core.NewColor(0, 1, 0)
			got := Specular(m, core.NewVec3(0, 0, 1), normal, core.NewVec3(0, 0, 1), white)
			So(got, shouldBeColor, core.NewColor(0, 0.4, 0))
		})
	})
}

func TestAmbient(t *testing.T) {
	Convey("Ambient term", t, func() {
		m := testMaterial()
		So(Ambient(m), shouldBeColor, core.NewColor(0.08*0.25*0.5, 0.08*0.25, 0.08*0.25))

		m.AmbientCoefficient = 0
		So(Ambient(m).IsBlack(), ShouldBeTrue)
	})
}

func TestMaterial_Validate(t *testing.T) {
	Convey("Material validation", t, func() {
		Convey("accepts an ordinary material", func() {
			So(Matte(core.Gray(0.9), 13).Validate(), ShouldBeNil)
		})

		Convey("rejects negative shininess", func() {
			m := testMaterial()
			m.Shininess = -1
			err := m.Validate()
			So(err, ShouldNotBeNil)
			So(errors.Is(err, core.ErrInvalidMaterial), ShouldBeTrue)
		})

		Convey("rejects NaN coefficients", func() {
			m := testMaterial()
			m.DiffuseCoefficient = math.NaN()
			So(errors.Is(m.Validate(), core.ErrInvalidMaterial), ShouldBeTrue)
		})

		Convey("rejects infinite colors", func() {
			m := testMaterial()
			m.Color = core.NewColor(math.Inf(1), 0, 0)
			So(errors.Is(m.Validate(), core.ErrInvalidMaterial), ShouldBeTrue)
		})

		Convey("does not clamp out-of-range colors", func() {
			m := testMaterial()
			m.DiffuseColor = core.Gray(3)
			So(m.Validate(), ShouldBeNil)
		})
	})
}
