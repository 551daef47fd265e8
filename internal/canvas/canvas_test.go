package canvas

import (
	"bytes"
	"math"
	"testing"

	"github.com/mirstar13/march-render/internal/vecmath"
)

func TestPPMRoundTrip(t *testing.T) {
	c := New(4, 3)
	c.Set(0, 0, vecmath.Color{R: 1, G: 0, B: 0})
	c.Set(3, 2, vecmath.Color{R: 0, G: 0.5, B: 1})
	c.Set(1, 1, vecmath.Color{R: 0.25, G: 0.25, B: 0.25})

	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatal(err)
	}

	parsed, err := ReadPPM(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Width != c.Width || parsed.Height != c.Height {
		t.Fatalf("expected %dx%d, got %dx%d", c.Width, c.Height, parsed.Width, parsed.Height)
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			want := c.At(x, y)
			got := parsed.At(x, y)
			if math.Abs(want.R-got.R) > 1.0/255 || math.Abs(want.G-got.G) > 1.0/255 || math.Abs(want.B-got.B) > 1.0/255 {
				t.Errorf("pixel (%d,%d): want %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestWritePPMTopDownOrder(t *testing.T) {
	c := New(1, 2)
	c.Set(0, 0, vecmath.ColorBlack)
	c.Set(0, 1, vecmath.ColorWhite)

	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatal(err)
	}
	if want := "P3\n1 2\n255\n255 255 255\n0 0 0\n"; buf.String() != want {
		t.Errorf("expected the top row (white) written first, got %q", buf.String())
	}

	parsed, err := ReadPPM(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if parsed.At(0, 1).R < 0.9 {
		t.Errorf("expected top row (y=1) to stay white after round trip, got %v", parsed.At(0, 1))
	}
	if parsed.At(0, 0).R > 0.1 {
		t.Errorf("expected bottom row (y=0) to stay black after round trip, got %v", parsed.At(0, 0))
	}
}

func TestByteChannelClampsAndTruncates(t *testing.T) {
	if v := vecmath.ByteChannel(-1); v != 0 {
		t.Errorf("expected negative channel to clamp to 0, got %d", v)
	}
	if v := vecmath.ByteChannel(2); v != 255 {
		t.Errorf("expected >1 channel to clamp to 255, got %d", v)
	}
	if v := vecmath.ByteChannel(0.5); v != 127 {
		t.Errorf("expected 0.5*255=127.5 to truncate to 127, got %d", v)
	}
}
