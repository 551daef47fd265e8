// Package camera implements the pinhole camera model and pixel sampler,
// grounded on original_source/src/camera.rs's ProjectiveCamera/
// PinholeCamera composition.
package camera

import (
	"math"

	"github.com/mirstar13/march-render/internal/vecmath"
)

// CanvasInfo describes the output image's pixel dimensions.
type CanvasInfo struct {
	Width, Height int
}

func (c CanvasInfo) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Sample is a raster-space sub-pixel sample point.
type Sample struct {
	FilmX, FilmY float64
}

// PinholeCamera generates primary rays from raster-space samples, per
// spec §4.6.
type PinholeCamera struct {
	info          CanvasInfo
	cameraToWorld vecmath.Matrix4
	rasterToCamera vecmath.Matrix4
}

// NewPinholeCamera builds a camera looking from the frame defined by
// cameraToWorld, with the given vertical field of view in radians.
// raster_to_camera = (raster_to_screen) ∘ (screen_to_camera), matching
// ProjectiveCamera::new in the original source.
func NewPinholeCamera(info CanvasInfo, cameraToWorld vecmath.Matrix4, fovRadians float64) PinholeCamera {
	aspect := info.AspectRatio()
	cameraToScreen := perspective(aspect, fovRadians, 1.0, 1000.0)

	raster := rasterToScreenInverse(info)
	screenToCamera, err := cameraToScreen.Invert()
	if err != nil {
		screenToCamera = vecmath.Identity()
	}
	rasterToCamera := screenToCamera.Multiply(raster)

	return PinholeCamera{
		info:           info,
		cameraToWorld:  cameraToWorld,
		rasterToCamera: rasterToCamera,
	}
}

// rasterToScreenInverse builds screen_to_raster = scale(w,h,1) . scale(0.5,0.5,1) . translate(1,1,0),
// then inverts it to get raster_to_screen, matching ProjectiveCamera::new's
// screen_to_raster / raster_to_screen = screen_to_raster.inverse().
func rasterToScreenInverse(info CanvasInfo) vecmath.Matrix4 {
	screenToRaster := scaling(float64(info.Width), float64(info.Height), 1).
		Multiply(scaling(0.5, 0.5, 1)).
		Multiply(vecmath.Translation(vecmath.Vec3{X: 1, Y: 1, Z: 0}))

	rasterToScreen, err := screenToRaster.Invert()
	if err != nil {
		return vecmath.Identity()
	}
	return rasterToScreen
}

func scaling(x, y, z float64) vecmath.Matrix4 {
	m := vecmath.Identity()
	m.M[0], m.M[5], m.M[10] = x, y, z
	return m
}

// perspective builds a perspective projection matrix mapping camera space to
// screen space, with the given aspect ratio, vertical FOV (radians), near
// and far planes. The camera looks down -Z: z=-near maps to screen depth 0
// and z=-far to depth 1.
func perspective(aspect, fov, near, far float64) vecmath.Matrix4 {
	invTan := 1.0 / math.Tan(fov/2.0)
	m := vecmath.Matrix4{}
	m.M[0] = invTan / aspect
	m.M[5] = invTan
	m.M[10] = -far / (far - near)
	m.M[11] = -far * near / (far - near)
	m.M[14] = -1.0
	return m
}

// GenerateRay maps a raster-space sample to a world-space ray, per spec §4.6:
// raster->camera, normalize the direction from the camera origin, then apply
// camera_to_world.
func (c PinholeCamera) GenerateRay(s Sample) vecmath.Ray {
	canvasPoint := c.rasterToCamera.TransformPoint(vecmath.Point3{X: s.FilmX, Y: s.FilmY, Z: 0})
	origin := vecmath.Point3{}
	direction := canvasPoint.Sub(origin).Normalize()

	worldOrigin := c.cameraToWorld.TransformPoint(origin)
	worldDirection := c.cameraToWorld.TransformVec(direction)
	return vecmath.NewRay(worldOrigin, worldDirection)
}

// LookAt builds a camera_to_world matrix for a camera at eye looking toward
// target with the given up vector, using a standard right-handed basis.
func LookAt(eye, target vecmath.Point3, up vecmath.Vec3) vecmath.Matrix4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up.Normalize()).Normalize()
	newUp := right.Cross(forward)

	// Camera looks down -Z in its own space, so forward maps to -Z.
	m := vecmath.Identity()
	m.M[0], m.M[1], m.M[2] = right.X, newUp.X, -forward.X
	m.M[4], m.M[5], m.M[6] = right.Y, newUp.Y, -forward.Y
	m.M[8], m.M[9], m.M[10] = right.Z, newUp.Z, -forward.Z
	m.M[3], m.M[7], m.M[11] = eye.X, eye.Y, eye.Z
	return m
}
