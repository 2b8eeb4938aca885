package renderer

import (
	"context"
	"image"
)

// Tile is a rectangular region of the image rendered as one task
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid splits a width x height image into tiles of at most
// tileSize x tileSize pixels, in row-major order
func NewTileGrid(width, height, tileSize int) []Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var tiles []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
		}
	}
	return tiles
}

// tileResult holds the per-pixel data a tile contributes to RenderStats
type tileResult struct {
	pixels    int
	hits      int
	luminance []float64
}

// renderTile traces every pixel within bounds and writes it to img. Tiles do
// not overlap, so concurrent calls write disjoint parts of img.
func (rt *Raytracer) renderTile(ctx context.Context, bounds image.Rectangle, img *image.RGBA) (tileResult, error) {
	result := tileResult{
		luminance: make([]float64, 0, bounds.Dx()*bounds.Dy()),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return tileResult{}, err
		}

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color, hit := rt.scene.TraceHit(rt.PixelRay(x, y))
			if hit {
				result.hits++
			}
			result.pixels++
			result.luminance = append(result.luminance, color.Clamp(0, 1).Luminance())
			img.SetRGBA(x, y, vec3ToColor(color))
		}
	}

	return result, nil
}
