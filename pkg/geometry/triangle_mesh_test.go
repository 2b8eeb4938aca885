package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

func TestTriangleMesh_Creation(t *testing.T) {
	// Simple quad mesh (2 triangles)
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), // 0
		core.NewVec3(1, 0, 0), // 1
		core.NewVec3(1, 1, 0), // 2
		core.NewVec3(0, 1, 0), // 3
	}

	faces := []int{
		0, 1, 2, // first triangle
		0, 2, 3, // second triangle
	}

	sh := shader.NewFlat(core.NewVec3(1, 1, 1))
	mesh, err := NewTriangleMesh(vertices, faces, sh, nil)
	if err != nil {
		t.Fatalf("Failed to create mesh: %v", err)
	}

	if len(mesh) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(mesh))
	}
	for i, p := range mesh {
		if p.Shader() != sh {
			t.Errorf("Triangle %d does not share the mesh shader", i)
		}
	}

	ray := core.NewRay(core.NewVec3(0.25, 0.75, 1), core.NewVec3(0, 0, -1))
	if mesh[0].Intersect(&ray) {
		t.Error("Expected first triangle to miss a ray over the second")
	}
	if !mesh[1].Intersect(&ray) || math.Abs(ray.T-1) > 1e-9 {
		t.Errorf("Expected second triangle hit at t=1, got t=%v", ray.T)
	}
}

func TestTriangleMesh_DropsDegenerate(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0), // collinear with 0 and 1
		core.NewVec3(0, 1, 0),
	}
	faces := []int{0, 1, 2, 0, 1, 3}

	mesh, err := NewTriangleMesh(vertices, faces, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create mesh: %v", err)
	}
	if len(mesh) != 1 {
		t.Errorf("Expected 1 triangle after dropping the degenerate one, got %d", len(mesh))
	}
}

func TestTriangleMesh_Errors(t *testing.T) {
	vertices := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}

	tests := []struct {
		name  string
		faces []int
	}{
		{"Not a multiple of three", []int{0, 1}},
		{"Index out of range", []int{0, 1, 3}},
		{"Negative index", []int{0, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTriangleMesh(vertices, tt.faces, nil, nil); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestTriangleMesh_Rotation(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(1, 1, 0),
	}
	center := core.NewVec3(1, 0, 0)
	rotation := core.NewVec3(0, math.Pi/2, 0)

	mesh, err := NewTriangleMesh(vertices, []int{0, 1, 2}, nil, &TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
	})
	if err != nil {
		t.Fatalf("Failed to create mesh: %v", err)
	}

	// A quarter turn around Y through (1,0,0) takes (2,0,0) to (1,0,-1)
	a, b, c := mesh[0].(*Triangle).Vertices()
	expected := []core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(1, 0, -1), core.NewVec3(1, 1, 0)}
	for i, got := range []core.Vec3{a, b, c} {
		if got.Subtract(expected[i]).Length() > 1e-9 {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected[i], got)
		}
	}
}
