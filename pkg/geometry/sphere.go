package geometry

import (
	"math"

	"github.com/softsphere/raytracer/pkg/core"
)

// Sphere is an immutable scene surface: a geometric sphere plus its flat
// shading attributes.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Color    core.Color
	Specular float64 // shininess exponent; core.NoSpecular disables the highlight
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color, specular float64) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Color:    color,
		Specular: specular,
	}
}

// Intersect solves the ray-sphere quadratic and returns both roots, t1
// carrying the + root. A miss is reported as (+Inf, +Inf); a tangent hit
// yields two equal roots. The ray direction must be non-degenerate.
func (s *Sphere) Intersect(ray core.Ray) (t1, t2 float64) {
	// Vector from sphere center to ray origin
	co := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * co.Dot(ray.Direction)
	c := co.Dot(co) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.Inf(1), math.Inf(1)
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-b + sqrtD) / (2 * a)
	t2 = (-b - sqrtD) / (2 * a)
	return t1, t2
}
