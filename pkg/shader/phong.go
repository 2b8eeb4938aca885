package shader

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/lights"
)

// Phong implements the Phong reflection model with hard shadows
type Phong struct {
	Color    core.Vec3 // Base surface color
	Ambient  float64   // Ambient coefficient
	Diffuse  float64   // Diffuse coefficient
	Specular float64   // Specular coefficient
	Exponent float64   // Shininess exponent

	Lights []lights.Light
	Scene  Occluder // Used for shadow rays, nil disables shadows
}

// NewPhong creates a new Phong shader without lights. Lights and the
// occluder are attached once the scene is assembled.
func NewPhong(color core.Vec3, ambient, diffuse, specular, exponent float64) *Phong {
	return &Phong{
		Color:    color,
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
		Exponent: exponent,
	}
}

// Shade implements the Shader interface
func (p *Phong) Shade(in Interaction) core.Vec3 {
	normal := in.FacingNormal()
	point := in.Point()
	view := in.Ray.Direction.Normalize().Negate()

	result := p.Color.Multiply(p.Ambient)

	for _, light := range p.Lights {
		sample, ok := light.Illuminate(point)
		if !ok {
			continue
		}

		cosTheta := normal.Dot(sample.Direction)
		if cosTheta <= 0 {
			continue
		}

		if p.Scene != nil {
			shadow := core.NewRayWithLimit(point, sample.Direction, sample.Distance)
			if p.Scene.Occluded(shadow) {
				continue
			}
		}

		diffuse := p.Color.MultiplyVec(sample.Intensity).Multiply(p.Diffuse * cosTheta)
		result = result.Add(diffuse)

		if p.Specular > 0 {
			reflected := normal.Multiply(2 * cosTheta).Subtract(sample.Direction)
			if cosAlpha := reflected.Dot(view); cosAlpha > 0 {
				specular := sample.Intensity.Multiply(p.Specular * math.Pow(cosAlpha, p.Exponent))
				result = result.Add(specular)
			}
		}
	}

	return result
}
