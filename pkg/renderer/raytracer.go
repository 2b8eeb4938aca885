package renderer

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// DefaultTileSize is the edge length of a square render tile in pixels
const DefaultTileSize = 32

// Raytracer handles the rendering process
type Raytracer struct {
	scene    *scene.Scene
	camera   *geometry.Camera
	width    int
	height   int
	workers  int
	tileSize int
	logger   core.Logger
}

// NewRaytracer creates a new raytracer. The scene camera is rebuilt with the
// aspect ratio of the output image.
func NewRaytracer(s *scene.Scene, width, height int) *Raytracer {
	cameraConfig := s.CameraConfig
	if width > 0 && height > 0 {
		cameraConfig.AspectRatio = float64(width) / float64(height)
	}

	return &Raytracer{
		scene:    s,
		camera:   geometry.NewCamera(cameraConfig),
		width:    width,
		height:   height,
		workers:  runtime.NumCPU(),
		tileSize: DefaultTileSize,
		logger:   core.NopLogger{},
	}
}

// SetWorkers sets the number of tiles rendered concurrently. Values below 1
// select one worker per CPU.
func (rt *Raytracer) SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	rt.workers = n
}

// SetTileSize sets the tile edge length in pixels
func (rt *Raytracer) SetTileSize(size int) {
	if size > 0 {
		rt.tileSize = size
	}
}

// SetLogger sets the logger used for progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt.logger = logger
}

// Render traces one ray through the center of every pixel. Tiles are
// rendered in parallel; cancelling ctx aborts the render with ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, RenderStats{}, errors.Errorf("invalid image size %dx%d", rt.width, rt.height)
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	tiles := NewTileGrid(rt.width, rt.height, rt.tileSize)

	rt.logger.Printf("Rendering %q at %dx%d: %d primitives, %d tiles, %d workers\n",
		rt.scene.Name, rt.width, rt.height, rt.scene.PrimitiveCount(), len(tiles), rt.workers)

	results, err := rt.renderTiles(ctx, tiles, img)
	if err != nil {
		return nil, RenderStats{}, errors.Wrap(err, "render aborted")
	}

	stats := summarizeTiles(results)
	stats.Width = rt.width
	stats.Height = rt.height
	stats.Tiles = len(tiles)
	stats.Workers = rt.workers
	stats.Elapsed = time.Since(start)

	rt.logger.Printf("Render complete: %s\n", stats)
	return img, stats, nil
}

// PixelRay returns the primary ray through the center of pixel (x, y), with
// y growing downwards as in image coordinates
func (rt *Raytracer) PixelRay(x, y int) core.Ray {
	s := (float64(x) + 0.5) / float64(rt.width)
	t := (float64(rt.height-1-y) + 0.5) / float64(rt.height)
	return rt.camera.GetRay(s, t)
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(c core.Vec3) color.RGBA {
	// Gamma 2.0
	c = core.NewVec3(
		math.Sqrt(math.Max(0, c.X)),
		math.Sqrt(math.Max(0, c.Y)),
		math.Sqrt(math.Max(0, c.Z)),
	).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}
