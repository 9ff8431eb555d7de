package geometry

import (
	"math"
	"testing"
)

func TestTessellate_EdgeCounts(t *testing.T) {
	tests := []struct {
		kind     ShapeKind
		segments int
		want     int
	}{
		{Plane, 4, 10},
		{Cylinder, 8, 24},
		{Cone, 8, 16},
		{Sphere, 8, 8*3 + 8*4},
		{Cone, 1, 6}, // clamped to 3 segments
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := len(Tessellate(tt.kind, tt.segments)); got != tt.want {
				t.Errorf("Expected %d edges, got %d", tt.want, got)
			}
		})
	}
}

func TestTessellate_VerticesOnSurface(t *testing.T) {
	for _, e := range Tessellate(Sphere, 12) {
		for _, p := range e {
			if r := p.ToVec3().Length(); math.Abs(r-1) > 1e-9 {
				t.Fatalf("Sphere vertex %v at radius %f", p, r)
			}
		}
	}
	for _, e := range Tessellate(Cylinder, 12) {
		for _, p := range e {
			if r := math.Hypot(p.X, p.Y); math.Abs(r-1) > 1e-9 || math.Abs(p.Z) != 1 {
				t.Fatalf("Cylinder vertex %v is not on a rim", p)
			}
		}
	}
}

func TestTessellate_UnknownKind(t *testing.T) {
	if edges := Tessellate(ShapeKind(-1), 8); edges != nil {
		t.Errorf("Expected no edges, got %d", len(edges))
	}
}
