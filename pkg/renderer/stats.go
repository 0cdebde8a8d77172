package renderer

import "time"

// RenderStats summarizes a completed render pass
type RenderStats struct {
	Width   int           // Raster width in pixels
	Height  int           // Raster height in pixels
	Rays    int           // Primary rays cast
	Hits    int           // Rays that hit a sphere
	Misses  int           // Rays resolved to the background color
	Elapsed time.Duration // Wall-clock render time
}
