package camera

// UniformSampler produces W*H equally spaced sub-pixel samples centered in
// a regular grid within a pixel, per spec §4.6.
type UniformSampler struct {
	W, H int
}

// NewUniformSampler returns a sampler; a 0 or negative dimension is
// normalized to 1 (a single centered sample), matching the render
// configuration's own jobs=0 normalization policy (spec §7).
func NewUniformSampler(w, h int) UniformSampler {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return UniformSampler{W: w, H: h}
}

// Count returns the total number of samples per pixel.
func (s UniformSampler) Count() int { return s.W * s.H }

// Weight is the contribution factor each sample makes to the final pixel
// color: 1/N.
func (s UniformSampler) Weight() float64 {
	return 1.0 / float64(s.Count())
}

// Samples returns the W*H sub-pixel sample points for the pixel at (px,py),
// in raster space.
func (s UniformSampler) Samples(px, py int) []Sample {
	samples := make([]Sample, 0, s.Count())
	for sy := 0; sy < s.H; sy++ {
		for sx := 0; sx < s.W; sx++ {
			fx := float64(px) + (float64(sx)+0.5)/float64(s.W)
			fy := float64(py) + (float64(sy)+0.5)/float64(s.H)
			samples = append(samples, Sample{FilmX: fx, FilmY: fy})
		}
	}
	return samples
}
