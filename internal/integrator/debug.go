package integrator

import (
	"github.com/mirstar13/march-render/internal/camera"
	"github.com/mirstar13/march-render/internal/march"
	"github.com/mirstar13/march-render/internal/scene"
	"github.com/mirstar13/march-render/internal/vecmath"
)

// DebugNormals visualizes the surface normal at each hit as a color, per
// spec §6.4: miss maps to black, a hit's normal (x,y,z) in [-1,1] maps to
// (0.5+x/2, 0.5+y/2, 0.5+z/2).
type DebugNormals struct {
	Config march.Config
}

func NewDebugNormals(cfg march.Config) *DebugNormals {
	return &DebugNormals{Config: cfg}
}

func (d *DebugNormals) Luminance(s *scene.Scene, root scene.ShapeID, sample camera.Sample, cam camera.PinholeCamera) vecmath.Color {
	ray := cam.GenerateRay(sample)
	hit, ok := march.March(d.Config, s, root, 1, ray)
	if !ok {
		return vecmath.ColorBlack
	}

	n := march.Normal(s, root, hit)
	return vecmath.Color{
		R: 0.5 + n.X/2,
		G: 0.5 + n.Y/2,
		B: 0.5 + n.Z/2,
	}
}

// DebugSteps visualizes march step cost, per spec §6.4: miss maps to black,
// a hit maps to (s, 0, s) where s = 1 - steps/max_steps, so shapes that took
// fewer steps to resolve glow brighter magenta.
type DebugSteps struct {
	Config march.Config
}

func NewDebugSteps(cfg march.Config) *DebugSteps {
	return &DebugSteps{Config: cfg}
}

func (d *DebugSteps) Luminance(s *scene.Scene, root scene.ShapeID, sample camera.Sample, cam camera.PinholeCamera) vecmath.Color {
	ray := cam.GenerateRay(sample)
	hit, ok := march.March(d.Config, s, root, 1, ray)
	if !ok {
		return vecmath.ColorBlack
	}

	frac := 1.0 - float64(hit.Steps)/float64(d.Config.MaxSteps)
	return vecmath.Color{R: frac, G: 0, B: frac}
}
