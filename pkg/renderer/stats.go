package renderer

import (
	"fmt"
	"image"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-raycaster/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	Pixels          int           // Total number of pixels rendered
	Hits            int           // Primary rays that hit a primitive
	HitRatio        float64       // Hits / Pixels
	MeanLuminance   float64       // Mean luminance of the clamped linear colors
	StdDevLuminance float64       // Standard deviation of the same
	Tiles           int           // Number of tiles rendered
	Workers         int           // Maximum concurrent tiles
	Elapsed         time.Duration // Wall-clock render time
}

// String formats the stats for log output
func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d hits (%.1f%%), luminance %.3f±%.3f, %d tiles, %v",
		s.Pixels, s.Hits, 100*s.HitRatio, s.MeanLuminance, s.StdDevLuminance, s.Tiles, s.Elapsed)
}

// summarizeTiles combines per-tile results
func summarizeTiles(results []tileResult) RenderStats {
	var stats RenderStats
	var luminance []float64
	for _, r := range results {
		stats.Pixels += r.pixels
		stats.Hits += r.hits
		luminance = append(luminance, r.luminance...)
	}

	if stats.Pixels > 0 {
		stats.HitRatio = float64(stats.Hits) / float64(stats.Pixels)
	}
	stats.MeanLuminance, stats.StdDevLuminance = luminanceStats(luminance)
	return stats
}

// luminanceStats returns the mean and sample standard deviation of values.
// Fewer than two values have zero spread.
func luminanceStats(values []float64) (mean, stdDev float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// CalculateAverageLuminance returns the mean luminance of an 8-bit image
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	values := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			values = append(values, c.Luminance())
		}
	}
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
