package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Server handles web requests for the raycaster
type Server struct {
	config   *config.Config
	logger   core.Logger
	router   *mux.Router
	requests atomic.Int64 // Request counter used for log prefixes
}

// NewServer creates a new web server
func NewServer(cfg *config.Config, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NopLogger{}
	}

	s := &Server{
		config: cfg,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/scenes", s.handleScenes).Methods(http.MethodGet)
	api.HandleFunc("/scenes/{name}", s.handleSceneInfo).Methods(http.MethodGet)
	api.HandleFunc("/render", s.handleRender).Methods(http.MethodGet)
	api.HandleFunc("/inspect", s.handleInspect).Methods(http.MethodGet)
}

// Handler returns the HTTP handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Printf("Starting web server on http://localhost%s\n", addr)
	return srv.ListenAndServe()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and the scene files in the scene directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.config.Scene.Dir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list scenes: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// errUnknownScene marks a scene ID that is neither built in nor a scene file
var errUnknownScene = errors.New("unknown scene")

// resolveScene builds the scene for a built-in name or a "file:<name>" ID
func (s *Server) resolveScene(id string, logger core.Logger) (*scene.Scene, error) {
	if !strings.HasPrefix(id, scene.FileScenePrefix) {
		sceneObj, ok := scene.Lookup(id)
		if !ok {
			return nil, errUnknownScene
		}
		return sceneObj, nil
	}

	info, ok, err := scene.FindSceneFile(s.config.Scene.Dir, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errUnknownScene
	}
	return loaders.LoadSceneFile(info.FilePath, logger)
}

// writeSceneError reports a resolveScene failure
func writeSceneError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, errUnknownScene) {
		writeError(w, http.StatusNotFound, "Unknown scene: "+id)
		return
	}
	writeError(w, http.StatusInternalServerError, "Failed to load scene: "+err.Error())
}

// SceneInfo summarizes a scene
type SceneInfo struct {
	Name       string     `json:"name"`
	Primitives int        `json:"primitives"`
	Lights     int        `json:"lights"`
	Camera     [3]float64 `json:"camera"`
	LookAt     [3]float64 `json:"lookAt"`
	VFov       float64    `json:"vfov"`
}

// handleSceneInfo describes one scene
func (s *Server) handleSceneInfo(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	sceneObj, err := s.resolveScene(name, s.logger)
	if err != nil {
		writeSceneError(w, name, err)
		return
	}

	writeJSON(w, http.StatusOK, SceneInfo{
		Name:       sceneObj.Name,
		Primitives: sceneObj.PrimitiveCount(),
		Lights:     len(sceneObj.Lights),
		Camera:     toArray(sceneObj.CameraConfig.Center),
		LookAt:     toArray(sceneObj.CameraConfig.LookAt),
		VFov:       sceneObj.CameraConfig.VFov,
	})
}

// sceneRequest holds the parameters shared by render and inspect requests
type sceneRequest struct {
	Scene  string
	Width  int
	Height int
}

// parseSceneRequest parses and validates the scene, width and height parameters
func (s *Server) parseSceneRequest(values url.Values) (*sceneRequest, error) {
	req := &sceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = s.config.Scene.Name
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", s.config.Render.Width, 1, s.config.Server.MaxWidth); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", s.config.Render.Height, 1, s.config.Server.MaxHeight); err != nil {
		return nil, err
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, errors.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, errors.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// nextRequestID returns a short identifier for log lines of one request
func (s *Server) nextRequestID() string {
	return fmt.Sprintf("req-%d", s.requests.Add(1))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
