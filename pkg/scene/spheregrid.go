package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	// Convert hue from degrees to radians
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// Convert from OKLAB to linear RGB
	// Using simplified approximation for OKLAB to RGB conversion
	// This is not perfectly accurate but good enough for our purposes

	// First convert to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	// Clamp to [0, 1] range
	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 10

// NewSphereGridScene creates a scene with a grid of spheres on a disc stage.
// Hue varies along X and chroma along Z.
func NewSphereGridScene() *Scene {
	s := New("spheregrid", geometry.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	})
	s.Background = core.NewVec3(0.5, 0.7, 1.0)

	s.AddLight(
		lights.NewPoint(core.NewVec3(20, 25, 20), core.NewVec3(1500, 1450, 1400)),
		lights.NewDirectional(core.NewVec3(0, -1, -0.5), core.NewVec3(0.2, 0.2, 0.25)),
	)

	s.Add(geometry.NewPlane(
		core.NewVec3(0, -0.01, 0),
		core.NewVec3(0, 1, 0),
		shader.NewPhong(core.NewVec3(0.5, 0.5, 0.5), 0.15, 0.8, 0, 1),
	))
	s.Add(geometry.NewDisc(
		core.NewVec3(4.5, 0, 4.5),
		core.NewVec3(0, 1, 0),
		7.0,
		shader.NewPhong(core.NewVec3(0.85, 0.85, 0.8), 0.15, 0.8, 0.1, 5),
	))

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(sphereGridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(sphereGridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			// Shininess varies slightly across the grid
			exponent := 20.0 + 40.0*float64((i+j)%3)
			sh := shader.NewPhong(oklchToRGB(lightness, chroma, hue), 0.1, 0.7, 0.6, exponent)

			s.Add(geometry.NewSphere(position, sphereRadius, sh))
		}
	}

	s.BindShaders()
	return s
}
