package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Object places one canonical primitive in the world. The transform maps
// canonical space to world space; the inverse is derived whenever a ray needs
// to be expressed in canonical space. Objects must not be modified while a
// render pass is running.
type Object struct {
	Name      string
	Kind      geometry.ShapeKind
	Transform core.Mat4
	Material  material.Material
}

// NewObject creates an object, rejecting unknown shapes, singular transforms
// and invalid materials
func NewObject(name string, kind geometry.ShapeKind, transform core.Mat4, mat material.Material) (*Object, error) {
	obj := &Object{
		Name:      name,
		Kind:      kind,
		Transform: transform,
		Material:  mat,
	}
	if err := obj.Validate(); err != nil {
		return nil, err
	}
	return obj, nil
}

// Validate checks the invariants NewObject enforces
func (o *Object) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("object %q: unknown shape %v", o.Name, o.Kind)
	}
	if _, err := o.Transform.Inverse(); err != nil {
		return fmt.Errorf("object %q: transform is not invertible: %w", o.Name, err)
	}
	if err := o.Material.Validate(); err != nil {
		return fmt.Errorf("object %q: %w", o.Name, err)
	}
	return nil
}

// WorldToCanonical returns the inverse of the object's transform
func (o *Object) WorldToCanonical() (core.Mat4, error) {
	return o.Transform.Inverse()
}

// String returns a short description for logs
func (o *Object) String() string {
	if o.Name == "" {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s (%s)", o.Name, o.Kind)
}

// Place composes the usual authoring transform: scale the canonical shape,
// then apply the rotations in order, then move it to offset
func Place(offset core.Point3, scale core.Vec3, rotations ...core.Mat4) core.Mat4 {
	m := core.Scale(scale.X, scale.Y, scale.Z)
	for _, r := range rotations {
		m = r.Mul(m)
	}
	return core.Translate(offset.X, offset.Y, offset.Z).Mul(m)
}

// Uniform returns a vector with every component set to s, for uniform scales
func Uniform(s float64) core.Vec3 {
	return core.NewVec3(s, s, s)
}
