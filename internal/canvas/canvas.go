// Package canvas is the final pixel grid and its PPM serialization, per
// spec §6.2. Grounded on the teacher's draw.go pixel-buffer conventions,
// generalized from uint8 storage to the pipeline's clamp-free float color.
package canvas

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mirstar13/march-render/internal/vecmath"
)

// Canvas is a 2D grid of HDR colors, indexed with (0,0) at the bottom-left
// -- matching the camera's raster-space convention (spec §6.2) -- but
// serialized top-down per the PPM format.
type Canvas struct {
	Width, Height int
	pixels        []vecmath.Color
}

// New returns a black canvas of the given dimensions.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]vecmath.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int { return y*c.Width + x }

// Set writes the color at (x,y), x,y origin bottom-left.
func (c *Canvas) Set(x, y int, color vecmath.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[c.index(x, y)] = color
}

// At returns the color at (x,y), x,y origin bottom-left.
func (c *Canvas) At(x, y int) vecmath.Color {
	return c.pixels[c.index(x, y)]
}

// WritePPM serializes the canvas as ASCII PPM (P3, max value 255),
// top-down per spec §6.2: row 0 of the file is the canvas's topmost row,
// i.e. y = Height-1 down to y = 0.
func (c *Canvas) WritePPM(w io.Writer) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := c.Height - 1; y >= 0; y-- {
		for x := 0; x < c.Width; x++ {
			color := c.At(x, y).Clamped()
			r := vecmath.ByteChannel(color.R)
			g := vecmath.ByteChannel(color.G)
			b := vecmath.ByteChannel(color.B)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return buf.Flush()
}

// ReadPPM parses an ASCII PPM (P3) stream back into a Canvas, the inverse
// of WritePPM, for the spec §8 round-trip property.
func ReadPPM(r io.Reader) (*Canvas, error) {
	var magic string
	var width, height, maxVal int

	if _, err := fmt.Fscan(r, &magic, &width, &height, &maxVal); err != nil {
		return nil, fmt.Errorf("canvas: reading PPM header: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("canvas: unsupported PPM magic %q", magic)
	}
	if maxVal <= 0 {
		return nil, fmt.Errorf("canvas: invalid PPM max value %d", maxVal)
	}

	c := New(width, height)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			var r8, g8, b8 int
			if _, err := fmt.Fscan(r, &r8, &g8, &b8); err != nil {
				return nil, fmt.Errorf("canvas: reading pixel (%d,%d): %w", x, y, err)
			}
			c.Set(x, y, vecmath.Color{
				R: float64(r8) / float64(maxVal),
				G: float64(g8) / float64(maxVal),
				B: float64(b8) / float64(maxVal),
			})
		}
	}
	return c, nil
}
