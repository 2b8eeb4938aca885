package server

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/pkg/errors"
)

// handleRender renders a scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSceneRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	logger := NewRequestLogger(s.nextRequestID(), s.logger)

	sceneObj, err := s.resolveScene(req.Scene, logger)
	if err != nil {
		writeSceneError(w, req.Scene, err)
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height)
	raytracer.SetWorkers(s.config.Render.Workers)
	raytracer.SetTileSize(s.config.Render.TileSize)
	raytracer.SetLogger(logger)

	// Request context cancels the render when the client disconnects
	img, stats, err := raytracer.Render(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Printf("Render cancelled by client\n")
			return
		}
		writeError(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode image: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Hits", strconv.Itoa(stats.Hits))
	w.Header().Set("X-Render-Pixels", strconv.Itoa(stats.Pixels))
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
