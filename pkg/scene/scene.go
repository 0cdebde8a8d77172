package scene

import (
	"github.com/softsphere/raytracer/pkg/core"
	"github.com/softsphere/raytracer/pkg/geometry"
	"github.com/softsphere/raytracer/pkg/lights"
)

// Scene is the immutable world consumed by the renderer: spheres and lights
// in declaration order plus a fixed background color for rays that miss
// everything. Nothing here is mutated after construction, so a Scene can be
// read freely for the whole render.
type Scene struct {
	Spheres    []*geometry.Sphere
	Lights     []lights.Light
	Background core.Color
}

// AddSphere appends a sphere to the scene. Order matters: when two surfaces
// sit at exactly the same ray parameter, the earlier sphere wins.
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Color, specular float64) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, color, specular))
}

// AddAmbientLight adds a constant fill light to the scene
func (s *Scene) AddAmbientLight(intensity float64) {
	s.Lights = append(s.Lights, lights.NewAmbient(intensity))
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(intensity float64, position core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPoint(intensity, position))
}

// AddDirectionalLight adds a directional light to the scene
func (s *Scene) AddDirectionalLight(intensity float64, direction core.Vec3) {
	s.Lights = append(s.Lights, lights.NewDirectional(intensity, direction))
}
