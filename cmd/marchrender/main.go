// Command marchrender is the CLI entry point wiring scene construction,
// the renderer, and PPM output together (spec §6.5, SPEC_FULL.md §4.11).
// Flag handling and the cpuprofile/memprofile hooks are carried over from
// the teacher's main.go almost verbatim -- the teacher profiles a terminal
// demo loop, this profiles a render pass, but the pattern (flag.String,
// pprof.StartCPUProfile/WriteHeapProfile) is unchanged.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/mirstar13/march-render/internal/config"
	"github.com/mirstar13/march-render/internal/integrator"
	"github.com/mirstar13/march-render/internal/march"
	"github.com/mirstar13/march-render/internal/render"
	"github.com/mirstar13/march-render/internal/renderlog"
	"github.com/mirstar13/march-render/internal/scenefile"
)

func main() {
	jobs := flag.Int("jobs", 0, "number of render worker goroutines (0 = normalize to 1)")
	width := flag.Int("width", 0, "canvas width in pixels (0 = use scene file / default)")
	height := flag.Int("height", 0, "canvas height in pixels (0 = use scene file / default)")
	samples := flag.Int("samples", 2, "supersampling grid edge length (NxN samples per pixel)")
	output := flag.String("o", "out.ppm", "output PPM file path")
	debugMode := flag.String("debug", "", "debug integrator: \"normals\", \"steps\", or empty for full shading")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
		fmt.Printf("CPU profiling enabled, writing to %s\n", *cpuprofile)
	}

	if *memprofile != "" {
		defer func() {
			f, err := os.Create(*memprofile)
			if err != nil {
				fmt.Printf("could not create memory profile: %v\n", err)
				return
			}
			defer f.Close()
			if err := pprof.WriteHeapProfile(f); err != nil {
				fmt.Printf("could not write memory profile: %v\n", err)
			}
			fmt.Printf("Memory profile written to %s\n", *memprofile)
		}()
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("usage: marchrender [flags] <scene.json>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	s, root, cam, sf, err := scenefile.Load(args[0])
	if err != nil {
		fmt.Printf("failed to load scene: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultRenderConfig()
	cfg.Width, cfg.Height = sf.Width, sf.Height
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	cfg.Jobs = sf.Jobs
	if *jobs > 0 {
		cfg.Jobs = *jobs
	}
	cfg.SamplerW, cfg.SamplerH = *samples, *samples
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid configuration: %v\n", err)
		os.Exit(1)
	}

	var integ integrator.Integrator
	switch *debugMode {
	case "normals":
		integ = integrator.NewDebugNormals(cfg.MarchConfig())
	case "steps":
		integ = integrator.NewDebugSteps(cfg.MarchConfig())
	case "":
		integ = integrator.NewWhitted(march.Config{
			MaxSteps:       cfg.MaxSteps,
			MinDist:        cfg.MinDist,
			MaxDist:        cfg.MaxDist,
			MaxReflections: cfg.MaxReflections,
		})
	default:
		fmt.Printf("unknown debug mode %q\n", *debugMode)
		os.Exit(2)
	}

	log := renderlog.New(nil)
	canvas, err := render.Render(cfg, s, root, cam, integ, log)
	if err != nil {
		fmt.Printf("render failed: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(*output)
	if err != nil {
		fmt.Printf("could not create output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := canvas.WritePPM(out); err != nil {
		fmt.Printf("could not write PPM: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%dx%d)\n", *output, cfg.Width, cfg.Height)
}
