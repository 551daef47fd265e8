// Package config defines the render configuration struct of spec §6.3 and
// its normalization/validation rules (spec §7 configuration errors).
package config

import (
	"runtime"

	"github.com/mirstar13/march-render/internal/march"
)

// RenderConfig bundles everything a render invocation needs beyond the
// scene itself: worker count, canvas size, sampling, and the marcher's
// numerical guards.
type RenderConfig struct {
	Jobs     int
	Width    int
	Height   int
	SamplerW int
	SamplerH int

	MaxSteps       int
	MinDist        float64
	MaxDist        float64
	MaxReflections int
}

// DefaultRenderConfig returns the spec §6.3 defaults: a single 2x2
// supersampled 800x600 render with march.DefaultConfig()'s numerical
// guards, and one worker per available CPU (runtime.NumCPU()).
func DefaultRenderConfig() RenderConfig {
	m := march.DefaultConfig()
	return RenderConfig{
		Jobs:           runtime.NumCPU(),
		Width:          800,
		Height:         600,
		SamplerW:       2,
		SamplerH:       2,
		MaxSteps:       m.MaxSteps,
		MinDist:        m.MinDist,
		MaxDist:        m.MaxDist,
		MaxReflections: m.MaxReflections,
	}
}

// Validate normalizes a configuration in place and reports whether it is
// now renderable. Per spec §7, Jobs==0 is not an error -- it normalizes to
// 1, rather than the caller interpreting "no workers" as "no render".
func (c *RenderConfig) Validate() error {
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.SamplerW <= 0 {
		c.SamplerW = 1
	}
	if c.SamplerH <= 0 {
		c.SamplerH = 1
	}
	return nil
}

// MarchConfig projects the numerical guard fields into a march.Config.
func (c RenderConfig) MarchConfig() march.Config {
	return march.Config{
		MaxSteps:       c.MaxSteps,
		MinDist:        c.MinDist,
		MaxDist:        c.MaxDist,
		MaxReflections: c.MaxReflections,
	}
}
