// Package render is the tiled, work-stealing parallel renderer of spec
// §4.9 and §5. Grounded on the teacher's renderer_parallel.go worker-pool
// pattern (a bounded tile queue drained by a fixed pool of goroutines, a
// sync.WaitGroup gating completion) but rebuilt around a pull-based channel
// of sphere-marched tiles instead of a push-based triangle rasterizer.
package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/mirstar13/march-render/internal/camera"
	"github.com/mirstar13/march-render/internal/canvas"
	"github.com/mirstar13/march-render/internal/config"
	"github.com/mirstar13/march-render/internal/integrator"
	"github.com/mirstar13/march-render/internal/renderlog"
	"github.com/mirstar13/march-render/internal/scene"
	"github.com/mirstar13/march-render/internal/vecmath"
)

// TileSize is the edge length of a render tile in pixels, per spec §4.9.
// The last tile in each row/column is a partial tile when the canvas
// dimension isn't a multiple of TileSize.
const TileSize = 16

// tile describes one rectangular region of the canvas to shade.
type tile struct {
	X, Y          int
	Width, Height int
}

// Render drives cam and integ over every pixel of a Width x Height canvas,
// using cfg.Jobs worker goroutines pulling tiles off a shared channel, per
// spec §4.9/§5. Jobs <= 0 is normalized to 1 by cfg.Validate(), per spec §7.
// Each tile touches a disjoint pixel rectangle, so workers write into out
// without locking.
func Render(cfg config.RenderConfig, s *scene.Scene, root scene.ShapeID, cam camera.PinholeCamera, integ integrator.Integrator, log *renderlog.Logger) (*canvas.Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("render: invalid configuration: %w", err)
	}

	out := canvas.New(cfg.Width, cfg.Height)
	sampler := camera.NewUniformSampler(cfg.SamplerW, cfg.SamplerH)

	tiles := tilesFor(cfg.Width, cfg.Height)
	tilesPerRow := (cfg.Width + TileSize - 1) / TileSize
	if tilesPerRow < 1 {
		tilesPerRow = 1
	}

	tileCh := make(chan tile, tilesPerRow)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	start := time.Now()

	for w := 0; w < cfg.Jobs; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := worker(id, s, root, cam, integ, sampler, out, tileCh, log); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(w)
	}

	for _, t := range tiles {
		tileCh <- t
	}
	close(tileCh)

	wg.Wait()

	if log != nil {
		log.RenderFinished(len(tiles), time.Since(start))
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func tilesFor(width, height int) []tile {
	var tiles []tile
	for y := 0; y < height; y += TileSize {
		h := TileSize
		if y+h > height {
			h = height - y
		}
		for x := 0; x < width; x += TileSize {
			w := TileSize
			if x+w > width {
				w = width - x
			}
			tiles = append(tiles, tile{X: x, Y: y, Width: w, Height: h})
		}
	}
	return tiles
}

// worker drains tile requests off in until it is closed, shading each tile
// in place. A non-nil return means a fatal error occurred and the caller
// should treat the whole render as failed, per spec §7.
func worker(id int, s *scene.Scene, root scene.ShapeID, cam camera.PinholeCamera, integ integrator.Integrator, sampler camera.UniformSampler, out *canvas.Canvas, in <-chan tile, log *renderlog.Logger) error {
	for t := range in {
		start := time.Now()
		if log != nil {
			log.TileStarted(id, t.X, t.Y)
		}

		shadeTile(s, root, cam, integ, sampler, out, t)

		if log != nil {
			log.TileFinished(id, t.X, t.Y, time.Since(start))
		}
	}
	return nil
}

func shadeTile(s *scene.Scene, root scene.ShapeID, cam camera.PinholeCamera, integ integrator.Integrator, sampler camera.UniformSampler, out *canvas.Canvas, t tile) {
	weight := sampler.Weight()

	for py := t.Y; py < t.Y+t.Height; py++ {
		for px := t.X; px < t.X+t.Width; px++ {
			color := vecmath.ColorBlack
			for _, samp := range sampler.Samples(px, py) {
				c := integ.Luminance(s, root, samp, cam)
				color = color.Add(c.Scale(weight))
			}
			out.Set(px, py, color)
		}
	}
}
