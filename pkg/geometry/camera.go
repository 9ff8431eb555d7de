package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig contains the extrinsic and intrinsic camera parameters
type CameraConfig struct {
	Eye           core.Point3 // Camera position E
	Gaze          core.Point3 // Point the camera looks at, G
	Up            core.Vec3   // Up hint P; must not be parallel to E-G
	Near          float64     // Distance to the near plane
	Far           float64     // Distance to the far plane
	VFov          float64     // Vertical field of view in degrees
	AspectRatio   float64     // Width / height of the near plane
	Width         int         // Raster width in pixels
	Height        int         // Raster height in pixels
	SuperSampling int         // Sub-pixels per pixel along each axis (1 = none)
}

// DefaultCameraConfig returns the default intrinsic parameters. Eye and gaze
// are left at the origin and must be supplied by the caller.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Up:            core.NewVec3(0, 0, 1),
		Near:          10,
		Far:           70,
		VFov:          45,
		AspectRatio:   1.0,
		Width:         512,
		Height:        512,
		SuperSampling: 1,
	}
}

// NewCameraConfig returns the default configuration looking from eye at gaze
func NewCameraConfig(eye, gaze core.Point3, up core.Vec3) CameraConfig {
	cfg := DefaultCameraConfig()
	cfg.Eye = eye
	cfg.Gaze = gaze
	cfg.Up = up
	return cfg
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Eye != (core.Point3{}) {
		result.Eye = override.Eye
	}
	if override.Gaze != (core.Point3{}) {
		result.Gaze = override.Gaze
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.Near != 0 {
		result.Near = override.Near
	}
	if override.Far != 0 {
		result.Far = override.Far
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SuperSampling != 0 {
		result.SuperSampling = override.SuperSampling
	}
	return result
}

// Validate checks that the configuration yields a well-defined view basis and frustum
func (cfg CameraConfig) Validate() error {
	n := cfg.Eye.Subtract(cfg.Gaze)
	switch {
	case n.IsZero():
		return fmt.Errorf("%w: eye and gaze point coincide at %v", core.ErrInvalidCamera, cfg.Eye)
	case cfg.Up.Normalize().Cross(n.Normalize()).Length() < 1e-9:
		return fmt.Errorf("%w: up vector %v is parallel to the gaze direction", core.ErrInvalidCamera, cfg.Up)
	case cfg.Near <= 0:
		return fmt.Errorf("%w: near distance must be positive, got %f", core.ErrInvalidCamera, cfg.Near)
	case cfg.Far <= cfg.Near:
		return fmt.Errorf("%w: far distance %f must exceed near distance %f", core.ErrInvalidCamera, cfg.Far, cfg.Near)
	case cfg.VFov <= 0 || cfg.VFov >= 180:
		return fmt.Errorf("%w: field of view must be in (0, 180) degrees, got %f", core.ErrInvalidCamera, cfg.VFov)
	case cfg.AspectRatio <= 0:
		return fmt.Errorf("%w: aspect ratio must be positive, got %f", core.ErrInvalidCamera, cfg.AspectRatio)
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: raster size must be positive, got %dx%d", core.ErrInvalidCamera, cfg.Width, cfg.Height)
	case cfg.SuperSampling < 1:
		return fmt.Errorf("%w: super-sampling factor must be at least 1, got %d", core.ErrInvalidCamera, cfg.SuperSampling)
	}
	return nil
}

// Camera is a synthetic pinhole camera. It is immutable once constructed.
type Camera struct {
	config  CameraConfig
	u, v, n core.Vec3 // right, true up, and backward (E-G) unit vectors
}

// NewCamera validates the configuration and derives the view basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	n := config.Eye.Subtract(config.Gaze).Normalize()
	u := config.Up.Normalize().Cross(n).Normalize()
	v := n.Cross(u)

	return &Camera{
		config: config,
		u:      u,
		v:      v,
		n:      n,
	}, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Position returns the camera origin E in world space
func (c *Camera) Position() core.Point3 {
	return c.config.Eye
}

// Basis returns the right (U), up (V) and backward (N) unit vectors
func (c *Camera) Basis() (u, v, n core.Vec3) {
	return c.u, c.v, c.n
}

// SuperSampledSize returns the raster size multiplied by the super-sampling factor
func (c *Camera) SuperSampledSize() (width, height int) {
	return c.config.Width * c.config.SuperSampling, c.config.Height * c.config.SuperSampling
}

// FrustumHalfExtents returns the half-width and half-height of the near plane
func (c *Camera) FrustumHalfExtents() (halfWidth, halfHeight float64) {
	halfHeight = c.config.Near * math.Tan(core.Radians(c.config.VFov)/2.0)
	halfWidth = c.config.AspectRatio * halfHeight
	return halfWidth, halfHeight
}

// ViewMatrix returns the world-to-camera transform. Its rows are the basis
// vectors and the translation expresses world points relative to E.
func (c *Camera) ViewMatrix() core.Mat4 {
	e := c.config.Eye.ToVec3()
	u, v, n := c.u, c.v, c.n
	return core.NewMat4(
		u.X, u.Y, u.Z, -e.Dot(u),
		v.X, v.Y, v.Z, -e.Dot(v),
		n.X, n.Y, n.Z, -e.Dot(n),
		0, 0, 0, 1,
	)
}

// perspectiveAB returns the depth terms a = -(f+n)/(f-n) and b = -2fn/(f-n)
func (c *Camera) perspectiveAB() (a, b float64) {
	near, far := c.config.Near, c.config.Far
	a = -(far + near) / (far - near)
	b = -2.0 * far * near / (far - near)
	return a, b
}

// ProjectionMatrix returns the perspective transform for camera space. With
// canonical set, the frustum is additionally translated and scaled so that
// after the homogeneous divide it fills the canonical view volume [-1,1]³.
func (c *Camera) ProjectionMatrix(canonical bool) core.Mat4 {
	near := c.config.Near
	a, b := c.perspectiveAB()
	if !canonical {
		return core.NewMat4(
			near, 0, 0, 0,
			0, near, 0, 0,
			0, 0, a, b,
			0, 0, -1, 0,
		)
	}

	right, top := c.FrustumHalfExtents()
	left, bottom := -right, -top
	return core.NewMat4(
		2*near/(right-left), 0, (right+left)/(right-left), 0,
		0, 2*near/(top-bottom), (top+bottom)/(top-bottom), 0,
		0, 0, a, b,
		0, 0, -1, 0,
	)
}

// ScreenMatrix maps [-1,1]×[-1,1] to [0,width]×[0,height] with y pointing down
func (c *Camera) ScreenMatrix() core.Mat4 {
	w, h := float64(c.config.Width), float64(c.config.Height)
	return core.NewMat4(
		w/2, 0, 0, w/2,
		0, -h/2, 0, h/2,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Project maps a world point into the canonical view volume. ok is false for
// points at or behind the camera plane, where the divide is meaningless.
func (c *Camera) Project(p core.Point3) (canonical core.Point3, ok bool) {
	cam := c.ViewMatrix().TransformPoint(p)
	if cam.Z >= 0 {
		return core.Point3{}, false
	}
	return c.ProjectionMatrix(true).TransformHomogeneous(cam), true
}

// WorldToScreen runs the full view, projection and screen pipeline on a world
// point. Points behind the camera are projected without a meaningful result;
// use Project to detect them.
func (c *Camera) WorldToScreen(p core.Point3) (x, y float64) {
	cam := c.ViewMatrix().TransformPoint(p)
	canonical := c.ProjectionMatrix(true).TransformHomogeneous(cam)
	s := c.ScreenMatrix().TransformPoint(canonical)
	return s.X, s.Y
}

// CanonicalDepth returns the depth of a world point in the canonical view
// volume: -1 on the near plane, 1 on the far plane. Points behind the camera
// report +Inf.
func (c *Camera) CanonicalDepth(p core.Point3) float64 {
	q, ok := c.Project(p)
	if !ok {
		return math.Inf(1)
	}
	return q.Z
}

// InViewVolume reports whether any of the points projects inside the
// canonical x and y range [-1, 1] in front of the camera
func (c *Camera) InViewVolume(points ...core.Point3) bool {
	for _, p := range points {
		q, ok := c.Project(p)
		if !ok {
			continue
		}
		if q.X >= -1 && q.X <= 1 && q.Y >= -1 && q.Y <= 1 {
			return true
		}
	}
	return false
}

// RayDirectionForPixel returns the world-space direction from the camera
// origin through sub-pixel (column, row) of a superWidth×superHeight raster.
// Rows grow downward while V points up, so the row term is inverted; columns
// grow to the right along U.
func (c *Camera) RayDirectionForPixel(column, row, superWidth, superHeight int) core.Vec3 {
	halfW, halfH := c.FrustumHalfExtents()
	sx := 2.0*float64(column)/float64(superWidth) - 1.0
	sy := 1.0 - 2.0*float64(row)/float64(superHeight)

	return c.n.Multiply(-c.config.Near).
		Add(c.u.Multiply(halfW * sx)).
		Add(c.v.Multiply(halfH * sy))
}

// minPolarAngle keeps orbiting eyes away from the up axis
const minPolarAngle = 1e-2

// Orbit moves the eye around the gaze point: yaw turns about the up vector,
// positive pitch raises the eye toward it. The distance to the gaze point is kept.
// A pitch that would bring the eye within minPolarAngle of the up axis is
// ignored.
func (cfg CameraConfig) Orbit(yaw, pitch float64) CameraConfig {
	up := cfg.Up.Normalize()
	offset := rotateAbout(cfg.Eye.Subtract(cfg.Gaze), up, yaw)

	if pitch != 0 {
		axis := offset.Cross(up).Normalize()
		tilted := rotateAbout(offset, axis, pitch)
		polar := math.Acos(max(-1, min(1, tilted.Normalize().Dot(up))))
		if polar > minPolarAngle && polar < math.Pi-minPolarAngle {
			offset = tilted
		}
	}

	cfg.Eye = cfg.Gaze.Add(offset)
	return cfg
}

// rotateAbout rotates v by angle radians about the unit axis k (Rodrigues)
func rotateAbout(v, k core.Vec3, angle float64) core.Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return v.Multiply(cos).
		Add(k.Cross(v).Multiply(sin)).
		Add(k.Multiply(k.Dot(v) * (1 - cos)))
}
