package lights

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestPoint_Illuminate(t *testing.T) {
	light := NewPoint(core.NewVec3(0, 2, 0), core.NewVec3(4, 4, 4))

	sample, ok := light.Illuminate(core.NewVec3(0, 0, 0))
	if !ok {
		t.Fatal("Expected point light to reach the origin")
	}
	if sample.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction (0,1,0), got %v", sample.Direction)
	}
	if math.Abs(sample.Distance-2) > 1e-12 {
		t.Errorf("Expected distance 2, got %f", sample.Distance)
	}
	// 4 / 2^2
	if math.Abs(sample.Intensity.X-1) > 1e-12 {
		t.Errorf("Expected intensity 1, got %f", sample.Intensity.X)
	}

	if _, ok := light.Illuminate(core.NewVec3(0, 2, 0)); ok {
		t.Error("Expected no illumination at the light position")
	}
}

func TestDirectional_Illuminate(t *testing.T) {
	light := NewDirectional(core.NewVec3(0, -3, 0), core.NewVec3(1, 1, 1))

	sample, ok := light.Illuminate(core.NewVec3(5, 5, 5))
	if !ok {
		t.Fatal("Expected directional light to reach any point")
	}
	if sample.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction toward light (0,1,0), got %v", sample.Direction)
	}
	if !math.IsInf(sample.Distance, 1) {
		t.Errorf("Expected infinite distance, got %f", sample.Distance)
	}
	if sample.Intensity != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected unattenuated intensity, got %v", sample.Intensity)
	}
}
