package vecmath

import "math"

// Color is an HDR RGB triple. Unlike the teacher's uint8-based Color in
// color.go, values are unclamped float64 so reflection/refraction chains can
// legitimately exceed 1.0 before the canvas clamps on write.
type Color struct {
	R, G, B float64
}

var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{1, 1, 1}
)

func NewColor(r, g, b float64) Color { return Color{r, g, b} }

// HexColor builds a Color from a packed 0xRRGGBB integer, used for the
// integrator's debug-magenta miss color per spec §4.8 step 4.
func HexColor(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255.0,
		G: float64((hex>>8)&0xff) / 255.0,
		B: float64(hex&0xff) / 255.0,
	}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Lerp blends two colors the way the teacher's color.go Lerp does, using
// float64 math throughout to avoid uint8 wraparound -- the teacher guards
// against wraparound by converting before subtracting; here there is no
// integer representation to wrap in the first place.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: Mix(c.R, o.R, t),
		G: Mix(c.G, o.G, t),
		B: Mix(c.B, o.B, t),
	}
}

// Clamped returns c with each channel restricted to [0,1]. Only the canvas
// writer should call this -- all other color math in the pipeline stays
// clamp-free per spec §4.8.
func (c Color) Clamped() Color {
	return Color{
		R: Clamp(c.R, 0, 1),
		G: Clamp(c.G, 0, 1),
		B: Clamp(c.B, 0, 1),
	}
}

// ByteChannel converts one HDR channel to a [0,255] byte, clamping and
// rounding toward zero per spec §6.2.
func ByteChannel(v float64) uint8 {
	scaled := Clamp(v*255.0, 0, 255)
	return uint8(math.Trunc(scaled))
}
