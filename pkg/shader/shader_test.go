package shader

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/lights"
)

// occluderFunc adapts a function to the Occluder interface
type occluderFunc func(ray core.Ray) bool

func (f occluderFunc) Occluded(ray core.Ray) bool { return f(ray) }

func hitAt(origin, direction core.Vec3, t float64, normal core.Vec3) Interaction {
	ray := core.NewRayWithLimit(origin, direction, t)
	return Interaction{Ray: ray, Normal: normal}
}

func TestFlat_Shade(t *testing.T) {
	color := core.NewVec3(0.2, 0.4, 0.6)
	flat := NewFlat(color)

	in := hitAt(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 1, core.NewVec3(0, 0, 1))
	if got := flat.Shade(in); got != color {
		t.Errorf("Expected %v, got %v", color, got)
	}
}

func TestEyeLight_Shade(t *testing.T) {
	eyeLight := NewEyeLight(core.NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  float64
	}{
		{"Head on", core.NewVec3(0, 0, -1), 1.0},
		{"From behind", core.NewVec3(0, 0, 1), 1.0},
		{"Unnormalized direction", core.NewVec3(0, 0, -5), 1.0},
		{"45 degrees", core.NewVec3(1, 0, -1), math.Sqrt2 / 2},
		{"Grazing", core.NewVec3(1, 0, 0), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := hitAt(core.NewVec3(0, 0, 1), tt.direction, 1, core.NewVec3(0, 0, 1))
			got := eyeLight.Shade(in)
			if math.Abs(got.X-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got.X)
			}
		})
	}
}

func TestInteraction_FacingNormal(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)

	front := hitAt(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 1, normal)
	if got := front.FacingNormal(); got != normal {
		t.Errorf("Expected front face normal %v, got %v", normal, got)
	}

	back := hitAt(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), 1, normal)
	if got := back.FacingNormal(); got != normal.Negate() {
		t.Errorf("Expected flipped normal %v, got %v", normal.Negate(), got)
	}
}

func TestPhong_Shade(t *testing.T) {
	color := core.NewVec3(1, 0.5, 0.25)
	// Light one unit above the hit point so inverse-square falloff is 1
	light := lights.NewPoint(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))
	in := hitAt(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 2, core.NewVec3(0, 0, 1))

	t.Run("Ambient only without lights", func(t *testing.T) {
		phong := NewPhong(color, 0.1, 0.9, 0, 1)
		got := phong.Shade(in)
		expected := color.Multiply(0.1)
		if got.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("Lit diffuse", func(t *testing.T) {
		phong := NewPhong(color, 0.1, 0.9, 0, 1)
		phong.Lights = []lights.Light{light}
		got := phong.Shade(in)
		expected := color.Multiply(1.0)
		if got.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("Specular highlight adds light intensity", func(t *testing.T) {
		phong := NewPhong(color, 0, 0, 0.5, 10)
		phong.Lights = []lights.Light{light}
		got := phong.Shade(in)
		expected := core.NewVec3(0.5, 0.5, 0.5)
		if got.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("Shadowed", func(t *testing.T) {
		var shadowRay core.Ray
		phong := NewPhong(color, 0.1, 0.9, 0.5, 10)
		phong.Lights = []lights.Light{light}
		phong.Scene = occluderFunc(func(ray core.Ray) bool {
			shadowRay = ray
			return true
		})

		got := phong.Shade(in)
		expected := color.Multiply(0.1)
		if got.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Expected ambient only %v, got %v", expected, got)
		}
		if math.Abs(shadowRay.T-1) > 1e-9 {
			t.Errorf("Expected shadow ray limited to light distance 1, got %f", shadowRay.T)
		}
	})

	t.Run("Light behind surface", func(t *testing.T) {
		below := lights.NewPoint(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1))
		phong := NewPhong(color, 0, 1, 1, 10)
		phong.Lights = []lights.Light{below}
		got := phong.Shade(in)
		if got.Length() != 0 {
			t.Errorf("Expected black, got %v", got)
		}
	})
}
