package scene

import "sort"

// builtin describes a scene constructed in code
type builtin struct {
	build       func() *Scene
	description string
}

// builtins maps scene names to their constructors
var builtins = map[string]builtin{
	"default":      {NewDefaultScene, "Triangle pyramid, sphere and ground plane with Phong shading"},
	"cornell":      {NewCornellScene, "Cornell box built from quads with a box and a glossy sphere"},
	"cylinder":     {NewCylinderScene, "Open and capped cylinders under a spot light"},
	"sdf":          {NewSDFScene, "CSG solid tessellated from a signed distance field"},
	"spheregrid":   {NewSphereGridScene, "Grid of colored spheres on a disc stage"},
	"trianglemesh": {NewTriangleMeshScene, "Indexed triangle meshes: box, pyramid and icosahedron"},
}

// Names returns the names of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named built-in scene
func Lookup(name string) (*Scene, bool) {
	b, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return b.build(), true
}
