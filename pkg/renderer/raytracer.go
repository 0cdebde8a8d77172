package renderer

import (
	"math"
	"time"

	"github.com/softsphere/raytracer/pkg/core"
	"github.com/softsphere/raytracer/pkg/geometry"
	"github.com/softsphere/raytracer/pkg/lights"
	"github.com/softsphere/raytracer/pkg/scene"
)

// Raytracer renders a scene onto a raster of fixed dimensions. It is not
// safe for concurrent use: the render is a single synchronous sweep and
// statistics accumulate on the struct.
type Raytracer struct {
	scene    *scene.Scene
	camera   Camera
	viewport Viewport
	width    int
	height   int
	stats    RenderStats
}

// NewRaytracer creates a raytracer with the default camera and viewport
func NewRaytracer(s *scene.Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:    s,
		camera:   NewCamera(),
		viewport: DefaultViewport(),
		width:    width,
		height:   height,
	}
}

// closestHit scans every sphere for the smallest ray parameter in
// [tMin, tMax], considering both quadratic roots. Comparisons are strict so
// that on an exact tie the sphere listed first in the scene wins.
func (rt *Raytracer) closestHit(ray core.Ray, tMin, tMax float64) (*geometry.Sphere, float64) {
	closestT := math.Inf(1)
	var closest *geometry.Sphere

	for _, s := range rt.scene.Spheres {
		t1, t2 := s.Intersect(ray)
		if t1 >= tMin && t1 <= tMax && t1 < closestT {
			closestT = t1
			closest = s
		}
		if t2 >= tMin && t2 <= tMax && t2 < closestT {
			closestT = t2
			closest = s
		}
	}

	return closest, closestT
}

// TraceRay returns the color seen along the ray, considering only hits with
// parameter in [tMin, tMax]. Rays that hit nothing resolve to the scene
// background. The returned channels are not clamped; pathological light
// configurations can push them outside byte range and the pixel sink is the
// one place that corrects for it.
func (rt *Raytracer) TraceRay(ray core.Ray, tMin, tMax float64) core.Color {
	rt.stats.Rays++

	sphere, t := rt.closestHit(ray, tMin, tMax)
	if sphere == nil {
		rt.stats.Misses++
		return rt.scene.Background
	}
	rt.stats.Hits++

	p := ray.At(t)
	n := p.Subtract(sphere.Center).Normalize()
	v := ray.Direction.Negate()
	intensity := lights.ComputeLighting(rt.scene.Lights, p, n, v, sphere.Specular)

	return sphere.Color.Scale(intensity)
}

// Render sweeps every pixel once, tracing a single ray per pixel and writing
// the result through sink. Pixel coordinates run in centered space with y up;
// the write converts to top-left raster coordinates, flipping the vertical
// axis. Returns statistics for the pass.
func (rt *Raytracer) Render(sink PixelSink) RenderStats {
	start := time.Now()
	rt.stats = RenderStats{Width: rt.width, Height: rt.height}

	halfW, halfH := rt.width/2, rt.height/2
	for y := halfH - 1; y >= -halfH; y-- {
		for x := -halfW; x < halfW; x++ {
			direction := rt.viewport.CanvasToViewport(x, y, rt.width, rt.height)
			ray := core.NewRay(rt.camera.Origin, direction)
			c := rt.TraceRay(ray, 1, math.Inf(1))
			sink.PutPixel(halfW+x, halfH-y, c)
		}
	}

	rt.stats.Elapsed = time.Since(start)
	return rt.stats
}
