package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/shader"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ShaderType   string                 `json:"shaderType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractShaderInfo extracts shader information with type assertions
func extractShaderInfo(sh shader.Shader) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := sh.(type) {
	case *shader.Flat:
		properties["color"] = toArray(m.Color)
		return "flat", properties

	case *shader.EyeLight:
		properties["color"] = toArray(m.Color)
		return "eyelight", properties

	case *shader.Phong:
		properties["color"] = toArray(m.Color)
		properties["ambient"] = m.Ambient
		properties["diffuse"] = m.Diffuse
		properties["specular"] = m.Specular
		properties["exponent"] = m.Exponent
		properties["lights"] = len(m.Lights)
		return "phong", properties

	case nil:
		return "none", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(p geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := p.(type) {
	case *geometry.Triangle:
		a, b, c := geom.Vertices()
		properties["vertices"] = [3][3]float64{toArray(a), toArray(b), toArray(c)}
		return "triangle", properties

	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center())
		properties["radius"] = geom.Radius()
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = toArray(geom.Point())
		return "plane", properties

	case *geometry.Disc:
		properties["center"] = toArray(geom.Center())
		properties["radius"] = geom.Radius()
		return "disc", properties

	case *geometry.Cylinder:
		properties["base"] = toArray(geom.BaseCenter())
		properties["top"] = toArray(geom.TopCenter())
		properties["radius"] = geom.Radius()
		return "cylinder", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts the primary ray through one pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSceneRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.resolveScene(req.Scene, s.logger)
	if err != nil {
		writeSceneError(w, req.Scene, err)
		return
	}

	ray := renderer.NewRaytracer(sceneObj, req.Width, req.Height).PixelRay(pixelX, pixelY)
	color := sceneObj.Trace(ray)

	hit, isHit := sceneObj.Intersect(&ray)
	if !isHit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: toArray(color)})
		return
	}

	shaderType, shaderProps := extractShaderInfo(hit.Shader())
	geometryType, geometryProps := extractGeometryInfo(hit)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		ShaderType:   shaderType,
		Point:        toArray(ray.HitPoint()),
		Normal:       toArray(hit.GetNormal(ray)),
		Distance:     ray.T,
		Color:        toArray(color),
		Properties: map[string]interface{}{
			"shader":   shaderProps,
			"geometry": geometryProps,
		},
	})
}
