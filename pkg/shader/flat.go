package shader

import "github.com/df07/go-raycaster/pkg/core"

// Flat returns the same color wherever it is hit
type Flat struct {
	Color core.Vec3
}

// NewFlat creates a new flat shader
func NewFlat(color core.Vec3) *Flat {
	return &Flat{Color: color}
}

// Shade implements the Shader interface
func (f *Flat) Shade(Interaction) core.Vec3 {
	return f.Color
}
