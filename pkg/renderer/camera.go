package renderer

import (
	"github.com/softsphere/raytracer/pkg/core"
)

// Camera fixes the eye position. Orientation is the identity: the camera
// looks down +z with y up.
type Camera struct {
	Origin core.Vec3
}

// NewCamera creates a camera at the world origin
func NewCamera() Camera {
	return Camera{Origin: core.NewVec3(0, 0, 0)}
}

// Viewport describes the projection plane the raster is mapped onto: its
// extent in world units and its distance from the camera along +z.
type Viewport struct {
	Width    float64
	Height   float64
	Distance float64
}

// DefaultViewport returns the standard 1x1 plane one unit in front of the
// camera, roughly a 53 degree field of view for a square raster.
func DefaultViewport() Viewport {
	return Viewport{Width: 1, Height: 1, Distance: 1}
}

// CanvasToViewport maps a centered pixel coordinate (origin at the raster
// center, y up) to the direction from the camera through the matching point
// on the viewport plane. The result is not normalized; its magnitude varies
// across the raster, so callers must treat it strictly as a direction.
func (vp Viewport) CanvasToViewport(cx, cy, rasterW, rasterH int) core.Vec3 {
	return core.NewVec3(
		float64(cx)*vp.Width/float64(rasterW),
		float64(cy)*vp.Height/float64(rasterH),
		vp.Distance,
	)
}
