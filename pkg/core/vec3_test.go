package core

import (
	"math"
	"testing"
)

func TestMat4_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		rotation Mat4
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			rotation: Identity(),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			rotation: RotateZ(math.Pi / 2),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: RotateY(math.Pi / 2),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			rotation: RotateX(math.Pi / 2),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: RotateY(math.Pi),
			expected: NewVec3(-1, 0, 0),
		},
		{
			name:     "Combined rotations",
			vector:   NewVec3(1, 0, 0),
			rotation: RotateZ(math.Pi / 2).Mul(RotateY(math.Pi / 2)), // 90° Y then 90° Z
			expected: NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.rotation.TransformVector(tt.vector)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Expected x × y = z, got %v", got)
	}
	if got := y.Cross(x); !got.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected y × x = -z, got %v", got)
	}
	if got := x.Cross(x); !got.IsZero() {
		t.Errorf("Expected parallel cross product to be zero, got %v", got)
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("Expected zero vector to normalize to zero, got %v", got)
	}
}

func TestPoint3_AffineArithmetic(t *testing.T) {
	p := NewPoint3(1, 2, 3)
	q := NewPoint3(4, 6, 3)

	d := q.Subtract(p)
	if !d.Equals(NewVec3(3, 4, 0)) {
		t.Errorf("Expected displacement (3,4,0), got %v", d)
	}
	if d.Length() != 5 {
		t.Errorf("Expected length 5, got %f", d.Length())
	}
	if got := p.Add(d); !got.Equals(q) {
		t.Errorf("Expected p + (q - p) = q, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint3(0, 0, 2), NewVec3(0, 0, -1))
	if got := ray.At(1.5); !got.Equals(NewPoint3(0, 0, 0.5)) {
		t.Errorf("Expected (0,0,0.5), got %v", got)
	}
}
