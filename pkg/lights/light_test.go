package lights

import (
	"math"
	"testing"

	"github.com/softsphere/raytracer/pkg/core"
)

func TestAmbient_ContributionIsConstant(t *testing.T) {
	light := NewAmbient(0.7)

	// Geometry must not matter for ambient light
	positions := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(5, -3, 2),
		core.NewVec3(0, 0, 0), // zero vectors included
	}
	for _, p := range positions {
		if got := light.ContributionAt(p, p, p, 500); got != 0.7 {
			t.Errorf("Expected constant 0.7 at %v, got %v", p, got)
		}
	}
}

func TestPoint_DiffuseContribution(t *testing.T) {
	p := core.NewVec3(0, 0, 0)
	n := core.NewVec3(0, 1, 0)
	v := core.NewVec3(0, 0, -1)

	tests := []struct {
		name     string
		light    Point
		expected float64
	}{
		{
			name:     "light directly above gives full intensity",
			light:    NewPoint(0.6, core.NewVec3(0, 2, 0)),
			expected: 0.6,
		},
		{
			name:     "light at 45 degrees gives cos(45) falloff",
			light:    NewPoint(0.6, core.NewVec3(1, 1, 0)),
			expected: 0.6 / math.Sqrt2,
		},
		{
			name:     "light below the surface contributes nothing",
			light:    NewPoint(0.6, core.NewVec3(0, -2, 0)),
			expected: 0,
		},
		{
			name:     "light in the surface plane contributes nothing",
			light:    NewPoint(0.6, core.NewVec3(3, 0, 0)),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.light.ContributionAt(p, n, v, core.NoSpecular)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDirectional_LengthIndependence(t *testing.T) {
	// Cosine falloff divides |L| out, so scaling the direction vector must
	// not change the contribution.
	p := core.NewVec3(0, 0, 0)
	n := core.NewVec3(0, 1, 0)
	v := core.NewVec3(0, 0, -1)

	unit := NewDirectional(0.8, core.NewVec3(1, 4, 4))
	scaled := NewDirectional(0.8, core.NewVec3(10, 40, 40))

	a := unit.ContributionAt(p, n, v, core.NoSpecular)
	b := scaled.ContributionAt(p, n, v, core.NoSpecular)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Expected identical contributions, got %v and %v", a, b)
	}
}

func TestDirectional_SpecularContribution(t *testing.T) {
	// Light along the normal, viewer on the same axis: the reflection lines
	// up with the view vector, so the specular term is intensity * 1^exp.
	p := core.NewVec3(0, 0, 0)
	n := core.NewVec3(0, 0, 1)
	v := core.NewVec3(0, 0, 1)
	light := NewDirectional(0.5, core.NewVec3(0, 0, 1))

	tests := []struct {
		name     string
		specular float64
		expected float64
	}{
		{"shiny surface adds full specular", 10, 1.0},        // 0.5 diffuse + 0.5 specular
		{"sentinel disables specular", core.NoSpecular, 0.5}, // diffuse only
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.ContributionAt(p, n, v, tt.specular)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDirectional_SpecularGating(t *testing.T) {
	// Viewer behind the surface: r·v <= 0, specular must vanish even for a
	// shiny surface.
	p := core.NewVec3(0, 0, 0)
	n := core.NewVec3(0, 0, 1)
	v := core.NewVec3(0, 0, -1)
	light := NewDirectional(0.5, core.NewVec3(0, 0, 1))

	got := light.ContributionAt(p, n, v, 500)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected diffuse-only 0.5, got %v", got)
	}
}

func TestComputeLighting_SumsAllLights(t *testing.T) {
	p := core.NewVec3(0, 0, 0)
	n := core.NewVec3(0, 1, 0)
	v := core.NewVec3(0, 0, -1)

	ls := []Light{
		NewAmbient(0.2),
		NewPoint(0.6, core.NewVec3(0, 2, 0)),        // full diffuse: 0.6
		NewDirectional(0.3, core.NewVec3(0, -1, 0)), // below surface: 0
	}

	got := ComputeLighting(ls, p, n, v, core.NoSpecular)
	if math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Expected summed intensity 0.8, got %v", got)
	}
}

func TestComputeLighting_AmbientOnly(t *testing.T) {
	// With a lone ambient light the result is exactly its intensity, for any
	// geometry including a degenerate normal.
	ls := []Light{NewAmbient(1.0)}

	got := ComputeLighting(ls, core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 500)
	if got != 1.0 {
		t.Errorf("Expected exactly 1.0, got %v", got)
	}
}

func TestComputeLighting_DegenerateNormal(t *testing.T) {
	// A zero normal kills every direction-dependent term but leaves ambient
	// intact: the fragment shades ambient-only instead of crashing.
	ls := []Light{
		NewAmbient(0.2),
		NewPoint(0.6, core.NewVec3(0, 2, 0)),
		NewDirectional(0.2, core.NewVec3(1, 4, 4)),
	}

	got := ComputeLighting(ls, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 500)
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Expected ambient-only 0.2, got %v", got)
	}
}
