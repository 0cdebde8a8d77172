package scene

import (
	"github.com/softsphere/raytracer/pkg/core"
)

// NewDefaultScene creates the standard showcase scene: three shiny spheres
// resting on a huge yellow ground sphere, lit by an ambient fill, a point
// light and a directional light.
func NewDefaultScene() *Scene {
	s := &Scene{Background: core.NewColor(255, 255, 255)}

	s.AddSphere(core.NewVec3(0, -1, 3), 1, core.NewColor(255, 0, 0), 500)
	s.AddSphere(core.NewVec3(2, 0, 4), 1, core.NewColor(0, 0, 255), 500)
	s.AddSphere(core.NewVec3(-2, 0, 4), 1, core.NewColor(0, 255, 0), 10)
	// Ground: a sphere so large its top reads as a flat floor
	s.AddSphere(core.NewVec3(0, -5001, 0), 5000, core.NewColor(255, 255, 0), 1000)

	s.AddAmbientLight(0.2)
	s.AddPointLight(0.6, core.NewVec3(2, 1, 0))
	s.AddDirectionalLight(0.2, core.NewVec3(1, 4, 4))

	return s
}

// NewSingleSphereScene creates a minimal smoke-test scene: one matte red
// sphere straight ahead of the camera under full ambient light, on a black
// background.
func NewSingleSphereScene() *Scene {
	s := &Scene{Background: core.NewColor(0, 0, 0)}

	s.AddSphere(core.NewVec3(0, 0, 4), 1, core.NewColor(255, 0, 0), core.NoSpecular)
	s.AddAmbientLight(1.0)

	return s
}

// NewMatteScene creates the default sphere arrangement with every specular
// highlight disabled and only directional lighting, useful for inspecting
// pure diffuse shading.
func NewMatteScene() *Scene {
	s := &Scene{Background: core.NewColor(255, 255, 255)}

	s.AddSphere(core.NewVec3(0, -1, 3), 1, core.NewColor(255, 0, 0), core.NoSpecular)
	s.AddSphere(core.NewVec3(2, 0, 4), 1, core.NewColor(0, 0, 255), core.NoSpecular)
	s.AddSphere(core.NewVec3(-2, 0, 4), 1, core.NewColor(0, 255, 0), core.NoSpecular)
	s.AddSphere(core.NewVec3(0, -5001, 0), 5000, core.NewColor(255, 255, 0), core.NoSpecular)

	s.AddAmbientLight(0.2)
	s.AddDirectionalLight(0.8, core.NewVec3(1, 4, 4))

	return s
}
