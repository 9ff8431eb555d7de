package lights

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPointLight_ToLight(t *testing.T) {
	light := NewPointLight(core.NewPoint3(0, 0, 10), core.Gray(1))

	got := light.ToLight(core.NewPoint3(0, 3, 2))
	if !got.Equals(core.NewVec3(0, -3, 8)) {
		t.Errorf("Expected (0,-3,8), got %v", got)
	}
	if light.Type() != LightTypePoint {
		t.Errorf("Expected point light type, got %s", light.Type())
	}
}

func TestDirectionalLight_ToLight(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, 0, -1), core.Gray(1))

	for _, p := range []core.Point3{core.Origin, core.NewPoint3(100, -5, 3)} {
		if got := light.ToLight(p); !got.Equals(core.NewVec3(0, 0, 1)) {
			t.Errorf("Expected (0,0,1) at %v, got %v", p, got)
		}
	}
}

func TestLights_Off(t *testing.T) {
	tests := []struct {
		name  string
		light interface{ Off() bool }
		want  bool
	}{
		{"white point", NewPointLight(core.Origin, core.Gray(1)), false},
		{"black point", NewPointLight(core.Origin, core.Color{}), true},
		{"white sun", NewDirectionalLight(core.NewVec3(0, 0, -1), core.Gray(1)), false},
		{"black sun", NewDirectionalLight(core.NewVec3(0, 0, -1), core.Color{}), true},
		{"sun without direction", NewDirectionalLight(core.Vec3{}, core.Gray(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.light.Off(); got != tt.want {
				t.Errorf("Expected Off()=%t, got %t", tt.want, got)
			}
		})
	}
}
