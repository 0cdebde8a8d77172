package core

import (
	"image/color"
	"testing"
)

func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected color.RGBA
	}{
		{
			name:     "in range",
			color:    NewColor(255, 0, 128),
			expected: color.RGBA{R: 255, G: 0, B: 128, A: 255},
		},
		{
			name:     "overbright channels clamp to 255",
			color:    NewColor(300, 256, 1000),
			expected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name:     "negative channels clamp to 0",
			color:    NewColor(-1, -300, 0),
			expected: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		},
		{
			name:     "fractional channels round",
			color:    NewColor(127.4, 127.5, 127.6),
			expected: color.RGBA{R: 127, G: 128, B: 128, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.RGBA(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_Scale(t *testing.T) {
	// Scaling must stay unclamped; only RGBA() brings values into byte range
	c := NewColor(200, 100, 50).Scale(2)
	if c.R != 400 || c.G != 200 || c.B != 100 {
		t.Errorf("Expected unclamped (400, 200, 100), got %v", c)
	}
}
