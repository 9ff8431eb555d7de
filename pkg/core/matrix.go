package core

import (
	"fmt"
	"math"
)

// singularEpsilon is the pivot magnitude below which a matrix is treated as singular
const singularEpsilon = 1e-12

// Mat4 is a 4×4 homogeneous transform stored row-major. Points are column
// vectors, so M·p applies M to p and A.Mul(B) applies B first.
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// NewMat4 builds a matrix from 16 values given row by row
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
) Mat4 {
	return Mat4{M: [4][4]float64{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}}
}

// Translate returns a translation by (x, y, z)
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m.M[0][3] = x
	m.M[1][3] = y
	m.M[2][3] = z
	return m
}

// Scale returns a non-uniform scale about the origin
func Scale(x, y, z float64) Mat4 {
	m := Identity()
	m.M[0][0] = x
	m.M[1][1] = y
	m.M[2][2] = z
	return m
}

// RotateX returns a rotation of radians about the X axis
func RotateX(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotateY returns a rotation of radians about the Y axis
func RotateY(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotateZ returns a rotation of radians about the Z axis
func RotateZ(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return math.Pi * degrees / 180.0
}

// Mul returns the product m·other (other is applied first)
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[row][k] * other.M[k][col]
			}
			r.M[row][col] = sum
		}
	}
	return r
}

// Inverse returns the inverse of m using Gauss-Jordan elimination with partial
// pivoting. It fails with ErrSingularMatrix when no usable pivot exists.
func (m Mat4) Inverse() (Mat4, error) {
	a := m.M
	inv := Identity().M

	for col := 0; col < 4; col++ {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < singularEpsilon || math.IsNaN(a[pivot][col]) {
			return Mat4{}, fmt.Errorf("%w: no pivot in column %d", ErrSingularMatrix, col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		p := a[col][col]
		for k := 0; k < 4; k++ {
			a[col][k] /= p
			inv[col][k] /= p
		}

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			f := a[row][col]
			if f == 0 {
				continue
			}
			for k := 0; k < 4; k++ {
				a[row][k] -= f * a[col][k]
				inv[row][k] -= f * inv[col][k]
			}
		}
	}

	return Mat4{M: inv}, nil
}

// IsInvertible reports whether Inverse would succeed
func (m Mat4) IsInvertible() bool {
	_, err := m.Inverse()
	return err == nil
}

// TransformPoint applies the full affine transform (including translation).
// The homogeneous coordinate is assumed to stay 1; see TransformHomogeneous
// for projective matrices.
func (m Mat4) TransformPoint(p Point3) Point3 {
	return Point3{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3],
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3],
		Z: m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3],
	}
}

// TransformVector applies only the linear part of the transform
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// TransformHomogeneous applies m to p with w=1 and performs the perspective divide.
// A zero w leaves the coordinates undivided.
func (m Mat4) TransformHomogeneous(p Point3) Point3 {
	q := m.TransformPoint(p)
	w := m.M[3][0]*p.X + m.M[3][1]*p.Y + m.M[3][2]*p.Z + m.M[3][3]
	if w == 0 || w == 1 {
		return q
	}
	return Point3{q.X / w, q.Y / w, q.Z / w}
}

// Equals compares two matrices element-wise within tolerance
func (m Mat4) Equals(other Mat4, tolerance float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m.M[row][col]-other.M[row][col]) > tolerance {
				return false
			}
		}
	}
	return true
}
