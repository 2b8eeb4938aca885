package loaders

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/df07/go-raycaster/pkg/shader"
)

// SceneFile is the YAML representation of a scene
type SceneFile struct {
	Name       string                `yaml:"name"`
	Background []float64             `yaml:"background"`
	Camera     *CameraSpec           `yaml:"camera"`
	Shaders    map[string]ShaderSpec `yaml:"shaders"`
	Lights     []LightSpec           `yaml:"lights"`
	Primitives []PrimitiveSpec       `yaml:"primitives"`
}

// CameraSpec describes the scene camera
type CameraSpec struct {
	Center      []float64 `yaml:"center"`
	LookAt      []float64 `yaml:"look_at"`
	Up          []float64 `yaml:"up"`
	AspectRatio float64   `yaml:"aspect_ratio"`
	VFov        float64   `yaml:"vfov"`
}

// ShaderSpec describes a named shader. Primitives refer to shaders by name,
// and all primitives naming the same shader share one instance.
type ShaderSpec struct {
	Type     string    `yaml:"type"` // flat, eyelight or phong
	Color    []float64 `yaml:"color"`
	Ambient  float64   `yaml:"ambient"`
	Diffuse  float64   `yaml:"diffuse"`
	Specular float64   `yaml:"specular"`
	Exponent float64   `yaml:"exponent"`
}

// LightSpec describes a light
type LightSpec struct {
	Type      string    `yaml:"type"` // point, directional or spot
	Position  []float64 `yaml:"position"`
	Direction []float64 `yaml:"direction"`
	Intensity []float64 `yaml:"intensity"`
	LookAt    []float64 `yaml:"look_at"`    // spot
	ConeAngle float64   `yaml:"cone_angle"` // spot, degrees
	ConeDelta float64   `yaml:"cone_delta"` // spot, degrees of fade at the cone edge
}

// PrimitiveSpec describes a primitive. Which fields are used depends on Type.
type PrimitiveSpec struct {
	Type     string      `yaml:"type"` // triangle, sphere, plane, disc, cylinder, quad, box or mesh
	Shader   string      `yaml:"shader"`
	Vertices [][]float64 `yaml:"vertices"` // triangle
	Center   []float64   `yaml:"center"`   // sphere, disc
	Radius   float64     `yaml:"radius"`   // sphere, disc, cylinder
	Point    []float64   `yaml:"point"`    // plane
	Normal   []float64   `yaml:"normal"`   // plane, disc
	Corner   []float64   `yaml:"corner"`   // quad
	U        []float64   `yaml:"u"`        // quad
	V        []float64   `yaml:"v"`        // quad
	Base     []float64   `yaml:"base"`     // cylinder
	Top      []float64   `yaml:"top"`      // cylinder
	Min      []float64   `yaml:"min"`      // box
	Max      []float64   `yaml:"max"`      // box
	File     string      `yaml:"file"`     // mesh, PLY path relative to the scene file
}

// defaultCamera is used when the scene file has no camera section
var defaultCamera = geometry.CameraConfig{
	Center:      core.NewVec3(0, 0, 5),
	LookAt:      core.NewVec3(0, 0, 0),
	Up:          core.NewVec3(0, 1, 0),
	AspectRatio: 16.0 / 9.0,
	VFov:        45.0,
}

// LoadSceneFile loads a YAML scene description
func LoadSceneFile(filename string, logger core.Logger) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open scene file")
	}
	defer file.Close()

	s, err := ParseScene(file, filepath.Dir(filename), logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", filename)
	}
	return s, nil
}

// ParseScene builds a scene from a YAML stream. Mesh files are resolved
// relative to baseDir.
func ParseScene(r io.Reader, baseDir string, logger core.Logger) (*scene.Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	var spec SceneFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, errors.Wrap(err, "invalid scene YAML")
	}

	cameraConfig, err := spec.cameraConfig()
	if err != nil {
		return nil, errors.Wrap(err, "camera")
	}

	name := spec.Name
	if name == "" {
		name = "file"
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, errors.Errorf("invalid scene name %q: must not be a path", name)
	}
	s := scene.New(name, cameraConfig)

	if spec.Background != nil {
		if s.Background, err = toVec3(spec.Background); err != nil {
			return nil, errors.Wrap(err, "background")
		}
	}

	shaders, err := buildShaders(spec.Shaders)
	if err != nil {
		return nil, err
	}

	for i, ls := range spec.Lights {
		light, err := ls.build()
		if err != nil {
			return nil, errors.Wrapf(err, "light %d", i)
		}
		s.AddLight(light)
	}

	for i, ps := range spec.Primitives {
		sh, ok := shaders[ps.Shader]
		if !ok {
			return nil, errors.Errorf("primitive %d: unknown shader %q", i, ps.Shader)
		}

		prims, err := ps.build(sh, baseDir)
		if err != nil {
			return nil, errors.Wrapf(err, "primitive %d (%s)", i, ps.Type)
		}
		s.Add(prims...)
	}

	s.BindShaders()

	logger.Printf("Loaded scene %q: %d primitives, %d lights, %d shaders\n",
		s.Name, s.PrimitiveCount(), len(s.Lights), len(shaders))
	return s, nil
}

func (f *SceneFile) cameraConfig() (geometry.CameraConfig, error) {
	if f.Camera == nil {
		return defaultCamera, nil
	}

	config := defaultCamera
	var err error
	if f.Camera.Center != nil {
		if config.Center, err = toVec3(f.Camera.Center); err != nil {
			return config, errors.Wrap(err, "center")
		}
	}
	if f.Camera.LookAt != nil {
		if config.LookAt, err = toVec3(f.Camera.LookAt); err != nil {
			return config, errors.Wrap(err, "look_at")
		}
	}
	if f.Camera.Up != nil {
		if config.Up, err = toVec3(f.Camera.Up); err != nil {
			return config, errors.Wrap(err, "up")
		}
	}
	if f.Camera.AspectRatio != 0 {
		config.AspectRatio = f.Camera.AspectRatio
	}
	if f.Camera.VFov != 0 {
		config.VFov = f.Camera.VFov
	}

	if config.AspectRatio < 0 || config.VFov <= 0 || config.VFov >= 180 {
		return config, errors.Errorf("invalid aspect ratio %v or vfov %v", config.AspectRatio, config.VFov)
	}
	if config.Center == config.LookAt {
		return config, errors.New("center and look_at coincide")
	}
	view := config.LookAt.Subtract(config.Center)
	if config.Up.Cross(view).LengthSquared() <= 1e-12*config.Up.LengthSquared()*view.LengthSquared() {
		return config, errors.New("up is parallel to the view direction")
	}
	return config, nil
}

func buildShaders(specs map[string]ShaderSpec) (map[string]shader.Shader, error) {
	// Sorted so errors are reported deterministically
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	shaders := make(map[string]shader.Shader, len(specs))
	for _, name := range names {
		spec := specs[name]
		color, err := toVec3(spec.Color)
		if err != nil {
			return nil, errors.Wrapf(err, "shader %q color", name)
		}

		switch spec.Type {
		case "flat":
			shaders[name] = shader.NewFlat(color)
		case "eyelight":
			shaders[name] = shader.NewEyeLight(color)
		case "phong":
			shaders[name] = shader.NewPhong(color, spec.Ambient, spec.Diffuse, spec.Specular, spec.Exponent)
		default:
			return nil, errors.Errorf("shader %q: unknown type %q", name, spec.Type)
		}
	}
	return shaders, nil
}

func (ls LightSpec) build() (lights.Light, error) {
	intensity, err := toVec3(ls.Intensity)
	if err != nil {
		return nil, errors.Wrap(err, "intensity")
	}

	switch ls.Type {
	case "point":
		position, err := toVec3(ls.Position)
		if err != nil {
			return nil, errors.Wrap(err, "position")
		}
		return lights.NewPoint(position, intensity), nil
	case "directional":
		direction, err := toVec3(ls.Direction)
		if err != nil {
			return nil, errors.Wrap(err, "direction")
		}
		if direction.LengthSquared() == 0 {
			return nil, errors.New("zero direction")
		}
		return lights.NewDirectional(direction, intensity), nil
	case "spot":
		position, err := toVec3(ls.Position)
		if err != nil {
			return nil, errors.Wrap(err, "position")
		}
		lookAt, err := toVec3(ls.LookAt)
		if err != nil {
			return nil, errors.Wrap(err, "look_at")
		}
		if position == lookAt {
			return nil, errors.New("spot position and look_at coincide")
		}
		if ls.ConeAngle <= 0 || ls.ConeAngle >= 180 {
			return nil, errors.Errorf("cone_angle must be in (0, 180), got %v", ls.ConeAngle)
		}
		if ls.ConeDelta < 0 || ls.ConeDelta > ls.ConeAngle {
			return nil, errors.Errorf("cone_delta must be in [0, cone_angle], got %v", ls.ConeDelta)
		}
		return lights.NewSpot(position, lookAt, intensity, ls.ConeAngle, ls.ConeDelta), nil
	default:
		return nil, errors.Errorf("unknown light type %q", ls.Type)
	}
}

func (ps PrimitiveSpec) build(sh shader.Shader, baseDir string) ([]geometry.Primitive, error) {
	switch ps.Type {
	case "triangle":
		if len(ps.Vertices) != 3 {
			return nil, errors.Errorf("expected 3 vertices, got %d", len(ps.Vertices))
		}
		var v [3]core.Vec3
		for i := range v {
			var err error
			if v[i], err = toVec3(ps.Vertices[i]); err != nil {
				return nil, errors.Wrapf(err, "vertex %d", i)
			}
		}
		if geometry.IsDegenerate(v[0], v[1], v[2]) {
			return nil, errors.New("degenerate triangle")
		}
		return []geometry.Primitive{geometry.NewTriangle(v[0], v[1], v[2], sh)}, nil

	case "sphere":
		center, err := toVec3(ps.Center)
		if err != nil {
			return nil, errors.Wrap(err, "center")
		}
		if ps.Radius <= 0 {
			return nil, errors.Errorf("radius must be positive, got %v", ps.Radius)
		}
		return []geometry.Primitive{geometry.NewSphere(center, ps.Radius, sh)}, nil

	case "plane":
		point, err := toVec3(ps.Point)
		if err != nil {
			return nil, errors.Wrap(err, "point")
		}
		normal, err := toVec3(ps.Normal)
		if err != nil {
			return nil, errors.Wrap(err, "normal")
		}
		if normal.LengthSquared() == 0 {
			return nil, errors.New("zero normal")
		}
		return []geometry.Primitive{geometry.NewPlane(point, normal, sh)}, nil

	case "disc":
		center, err := toVec3(ps.Center)
		if err != nil {
			return nil, errors.Wrap(err, "center")
		}
		normal, err := toVec3(ps.Normal)
		if err != nil {
			return nil, errors.Wrap(err, "normal")
		}
		if normal.LengthSquared() == 0 {
			return nil, errors.New("zero normal")
		}
		if ps.Radius <= 0 {
			return nil, errors.Errorf("radius must be positive, got %v", ps.Radius)
		}
		return []geometry.Primitive{geometry.NewDisc(center, normal, ps.Radius, sh)}, nil

	case "cylinder":
		base, err := toVec3(ps.Base)
		if err != nil {
			return nil, errors.Wrap(err, "base")
		}
		top, err := toVec3(ps.Top)
		if err != nil {
			return nil, errors.Wrap(err, "top")
		}
		if base == top {
			return nil, errors.New("cylinder base and top coincide")
		}
		if ps.Radius <= 0 {
			return nil, errors.Errorf("radius must be positive, got %v", ps.Radius)
		}
		return []geometry.Primitive{geometry.NewCylinder(base, top, ps.Radius, sh)}, nil

	case "quad":
		corner, err := toVec3(ps.Corner)
		if err != nil {
			return nil, errors.Wrap(err, "corner")
		}
		u, err := toVec3(ps.U)
		if err != nil {
			return nil, errors.Wrap(err, "u")
		}
		v, err := toVec3(ps.V)
		if err != nil {
			return nil, errors.Wrap(err, "v")
		}
		if u.Cross(v).LengthSquared() == 0 {
			return nil, errors.New("degenerate quad")
		}
		return geometry.NewQuad(corner, u, v, sh), nil

	case "box":
		minCorner, err := toVec3(ps.Min)
		if err != nil {
			return nil, errors.Wrap(err, "min")
		}
		maxCorner, err := toVec3(ps.Max)
		if err != nil {
			return nil, errors.Wrap(err, "max")
		}
		if maxCorner.X <= minCorner.X || maxCorner.Y <= minCorner.Y || maxCorner.Z <= minCorner.Z {
			return nil, errors.Errorf("max %v must exceed min %v on every axis", maxCorner, minCorner)
		}
		return geometry.NewBox(minCorner, maxCorner, sh), nil

	case "mesh":
		if ps.File == "" {
			return nil, errors.New("missing file")
		}
		path := ps.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := LoadPLY(path)
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangleMesh(data.Vertices, data.Faces, sh, nil)

	default:
		return nil, errors.Errorf("unknown primitive type %q", ps.Type)
	}
}

func toVec3(values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, errors.Errorf("expected 3 components, got %d", len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
