// Package scenefile parses scene description files. Scene file parsing is
// explicitly out of core scope (spec §1) -- this is thin demo glue over
// the scene builder API (spec §6.1), not a real S-expression/YAML parser.
// It understands a minimal JSON shape tree just deep enough to drive the
// examples shipped with this repo, and is shared by cmd/marchrender and
// cmd/marchpreview so the two binaries don't duplicate it.
package scenefile

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/mirstar13/march-render/internal/camera"
	"github.com/mirstar13/march-render/internal/scene"
	"github.com/mirstar13/march-render/internal/sdf"
	"github.com/mirstar13/march-render/internal/vecmath"
)

// File is the parsed top-level scene description.
type File struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Jobs   int `json:"jobs"`

	Camera struct {
		Eye        [3]float64 `json:"eye"`
		Target     [3]float64 `json:"target"`
		Up         [3]float64 `json:"up"`
		FOVDegrees float64    `json:"fov_degrees"`
	} `json:"camera"`

	Lights []lightFile `json:"lights"`
	Shapes []shapeFile `json:"shapes"`
}

type lightFile struct {
	Type     string     `json:"type"` // "point" or "diffuse"
	Position [3]float64 `json:"position"`
	Color    [3]float64 `json:"color"`
}

type shapeFile struct {
	Type string `json:"type"` // "sphere", "box", "plane", "torus"

	Box struct {
		W float64 `json:"w"`
		H float64 `json:"h"`
		D float64 `json:"d"`
	} `json:"box"`
	Torus struct {
		Radius float64 `json:"radius"`
		Hole   float64 `json:"hole"`
	} `json:"torus"`

	Translate [3]float64 `json:"translate"`
	Scale     float64    `json:"scale"`

	Material materialFile `json:"material"`
}

type materialFile struct {
	Color           [3]float64 `json:"color"`
	Ambient         float64    `json:"ambient"`
	Diffuse         float64    `json:"diffuse"`
	Specular        float64    `json:"specular"`
	Shininess       float64    `json:"shininess"`
	Reflective      float64    `json:"reflective"`
	Transparent     float64    `json:"transparent"`
	RefractiveIndex float64    `json:"refractive_index"`
}

// Load reads a JSON scene description from path and builds the equivalent
// scene.Scene plus a ready-to-use camera.
func Load(path string) (*scene.Scene, scene.ShapeID, camera.PinholeCamera, File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, camera.PinholeCamera{}, File{}, fmt.Errorf("reading scene file: %w", err)
	}

	var sf File
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, 0, camera.PinholeCamera{}, File{}, fmt.Errorf("parsing scene file: %w", err)
	}
	if sf.Width <= 0 {
		sf.Width = 800
	}
	if sf.Height <= 0 {
		sf.Height = 600
	}
	if sf.Camera.FOVDegrees <= 0 {
		sf.Camera.FOVDegrees = 60
	}

	s := scene.New()
	var roots []scene.ShapeID

	for _, lf := range sf.Lights {
		color := vecmath.Color{R: lf.Color[0], G: lf.Color[1], B: lf.Color[2]}
		switch lf.Type {
		case "diffuse":
			s.AddLight(scene.NewDiffuseLight(color))
		default:
			pos := vecmath.Point3{X: lf.Position[0], Y: lf.Position[1], Z: lf.Position[2]}
			s.AddLight(scene.NewPointLight(pos, color))
		}
	}

	for _, shf := range sf.Shapes {
		id, err := buildShape(s, shf)
		if err != nil {
			return nil, 0, camera.PinholeCamera{}, File{}, err
		}
		roots = append(roots, id)
	}

	if len(roots) == 0 {
		return nil, 0, camera.PinholeCamera{}, File{}, fmt.Errorf("scene file %s defines no shapes", path)
	}

	var root scene.ShapeID
	if len(roots) == 1 {
		root = roots[0]
	} else {
		grouped, err := s.AddUnion(roots)
		if err != nil {
			return nil, 0, camera.PinholeCamera{}, File{}, fmt.Errorf("grouping scene roots: %w", err)
		}
		root = grouped
	}
	s.AddRoot(root)

	eye := vecmath.Point3{X: sf.Camera.Eye[0], Y: sf.Camera.Eye[1], Z: sf.Camera.Eye[2]}
	target := vecmath.Point3{X: sf.Camera.Target[0], Y: sf.Camera.Target[1], Z: sf.Camera.Target[2]}
	up := vecmath.Vec3{X: sf.Camera.Up[0], Y: sf.Camera.Up[1], Z: sf.Camera.Up[2]}
	if up == (vecmath.Vec3{}) {
		up = vecmath.Vec3{Y: 1}
	}

	cameraToWorld := camera.LookAt(eye, target, up)
	cam := camera.NewPinholeCamera(
		camera.CanvasInfo{Width: sf.Width, Height: sf.Height},
		cameraToWorld,
		sf.Camera.FOVDegrees*math.Pi/180.0,
	)

	return s, root, cam, sf, nil
}

func buildShape(s *scene.Scene, shf shapeFile) (scene.ShapeID, error) {
	var prim sdf.Prim
	switch shf.Type {
	case "box":
		w, h, d := shf.Box.W, shf.Box.H, shf.Box.D
		if w == 0 && h == 0 && d == 0 {
			w, h, d = 1, 1, 1
		}
		prim = sdf.RectangularPrism{W: w, H: h, D: d}
	case "plane":
		prim = sdf.XZPlane{}
	case "torus":
		radius, hole := shf.Torus.Radius, shf.Torus.Hole
		if radius == 0 {
			radius = 0.3
		}
		if hole == 0 {
			hole = 1.0
		}
		prim = sdf.Torus{Radius: radius, Hole: hole}
	default:
		prim = sdf.Sphere{}
	}

	id := s.AddPrim(prim)

	scaleFactor := shf.Scale
	if scaleFactor == 0 {
		scaleFactor = 1
	}
	translate := vecmath.Vec3{X: shf.Translate[0], Y: shf.Translate[1], Z: shf.Translate[2]}

	scaled, err := s.AddUniformScale(scaleFactor, id)
	if err != nil {
		return 0, fmt.Errorf("scaling shape: %w", err)
	}
	positioned, err := s.AddTranslation(translate, scaled)
	if err != nil {
		return 0, fmt.Errorf("translating shape: %w", err)
	}

	mf := shf.Material
	if mf.Diffuse == 0 && mf.Specular == 0 && mf.Ambient == 0 {
		mf = materialFile{Color: shf.Material.Color, Ambient: 0.1, Diffuse: 0.9, Specular: 0.9, Shininess: 200, RefractiveIndex: 1.0}
	}

	pattern := s.AddPattern(scene.SolidPattern(vecmath.Color{R: mf.Color[0], G: mf.Color[1], B: mf.Color[2]}))
	mat := s.AddMaterial(scene.Material{
		Kind:            scene.MaterialPhong,
		Pattern:         pattern,
		Ambient:         mf.Ambient,
		Diffuse:         mf.Diffuse,
		Specular:        mf.Specular,
		Shininess:       mf.Shininess,
		Reflective:      mf.Reflective,
		Transparent:     mf.Transparent,
		RefractiveIndex: orOne(mf.RefractiveIndex),
	})

	return s.AddMaterialNode(pattern, mat, positioned), nil
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1.0
	}
	return v
}
