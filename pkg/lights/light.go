package lights

import (
	"math"

	"github.com/softsphere/raytracer/pkg/core"
)

// Light is a scene light source. ContributionAt returns the scalar intensity
// the light adds at point p, given the surface normal n, the view vector v
// (pointing from p toward the camera) and the surface shininess exponent.
// None of the vectors need to be normalized.
type Light interface {
	ContributionAt(p, n, v core.Vec3, specular float64) float64
}

// Ambient is a constant fill light with no direction
type Ambient struct {
	Intensity float64
}

// NewAmbient creates a new ambient light
func NewAmbient(intensity float64) Ambient {
	return Ambient{Intensity: intensity}
}

// ContributionAt returns the fixed ambient intensity regardless of geometry
func (l Ambient) ContributionAt(_, _, _ core.Vec3, _ float64) float64 {
	return l.Intensity
}

// Point is a light emitting from a position in the scene
type Point struct {
	Intensity float64
	Position  core.Vec3
}

// NewPoint creates a new point light
func NewPoint(intensity float64, position core.Vec3) Point {
	return Point{Intensity: intensity, Position: position}
}

// ContributionAt evaluates the Phong terms along the direction to the light
func (l Point) ContributionAt(p, n, v core.Vec3, specular float64) float64 {
	return phong(l.Intensity, l.Position.Subtract(p), n, v, specular)
}

// Directional is a light shining along a fixed direction from infinity
type Directional struct {
	Intensity float64
	Direction core.Vec3 // points toward the light, need not be normalized
}

// NewDirectional creates a new directional light
func NewDirectional(intensity float64, direction core.Vec3) Directional {
	return Directional{Intensity: intensity, Direction: direction}
}

// ContributionAt evaluates the Phong terms along the fixed light direction
func (l Directional) ContributionAt(p, n, v core.Vec3, specular float64) float64 {
	return phong(l.Intensity, l.Direction, n, v, specular)
}

// phong returns the diffuse plus specular contribution of one light of the
// given intensity arriving along l. The n·l and r·v gates also protect the
// divisions below: a positive dot product implies both operands have
// non-zero length.
func phong(intensity float64, l, n, v core.Vec3, specular float64) float64 {
	contribution := 0.0

	// Diffuse: cosine falloff, correct for non-unit l since |l| divides out
	if nl := n.Dot(l); nl > 0 {
		contribution += intensity * nl / (n.Length() * l.Length())
	}

	// Specular: skipped entirely for matte surfaces
	if specular != core.NoSpecular {
		r := l.Reflect(n)
		if rv := r.Dot(v); rv > 0 {
			contribution += intensity * math.Pow(rv/(r.Length()*v.Length()), specular)
		}
	}

	return contribution
}

// ComputeLighting sums the contribution of every light at point p. The
// result is a raw intensity with no upper clamp; scaling a surface color by
// it can leave byte range, which the output sink is responsible for.
func ComputeLighting(ls []Light, p, n, v core.Vec3, specular float64) float64 {
	intensity := 0.0
	for _, light := range ls {
		intensity += light.ContributionAt(p, n, v, specular)
	}
	return intensity
}
