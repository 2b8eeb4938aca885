package renderer

import (
	"context"
	"image"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// renderTiles renders all tiles with at most rt.workers running at once.
// The first failure, including cancellation of ctx, stops the remaining tiles.
func (rt *Raytracer) renderTiles(ctx context.Context, tiles []Tile, img *image.RGBA) ([]tileResult, error) {
	results := make([]tileResult, len(tiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.workers)

	for i, tile := range tiles {
		g.Go(func() error {
			result, err := rt.renderTile(ctx, tile.Bounds, img)
			if err != nil {
				return errors.Wrapf(err, "tile %d", tile.ID)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
