package core

import "errors"

var (
	// ErrInvalidCamera reports a camera configuration that cannot produce a view basis
	ErrInvalidCamera = errors.New("invalid camera configuration")

	// ErrSingularMatrix reports a transform that cannot be inverted
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrInvalidMaterial reports material parameters outside their domain
	ErrInvalidMaterial = errors.New("invalid material")

	// ErrUnknownScene reports a scene name that is not registered
	ErrUnknownScene = errors.New("unknown scene")
)
