// Command marchpreview opens a window, renders a scene file once, and
// blits the resulting canvas to the screen as a texture -- a thin
// consumer of internal/render and internal/canvas, not a new render path.
// Grounded on the teacher's renderer_opengl.go window/GL/shader setup (the
// same runtime.LockOSThread/glfw.Init/gl.Init sequence and compileShader
// pattern) and win_input.go's keyboard-based quit handling, wiring the
// teacher's windowing stack (go-gl/gl, go-gl/glfw, eiannone/keyboard) into
// the new domain.
//
// github.com/vulkan-go/vulkan has no analogous use here; see DESIGN.md.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mirstar13/march-render/internal/canvas"
	"github.com/mirstar13/march-render/internal/config"
	"github.com/mirstar13/march-render/internal/integrator"
	"github.com/mirstar13/march-render/internal/march"
	"github.com/mirstar13/march-render/internal/render"
	"github.com/mirstar13/march-render/internal/renderlog"
	"github.com/mirstar13/march-render/internal/scenefile"
)

func init() {
	// OpenGL contexts are bound to the OS thread that created them.
	runtime.LockOSThread()
}

const (
	blitVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aUV;
}
` + "\x00"

	blitFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D screenTexture;

void main() {
    FragColor = texture(screenTexture, TexCoord);
}
` + "\x00"
)

func main() {
	jobs := flag.Int("jobs", 0, "render worker goroutines (0 = normalize to 1)")
	samples := flag.Int("samples", 2, "supersampling grid edge length")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("usage: marchpreview [flags] <scene.json>")
		os.Exit(2)
	}

	s, root, cam, sf, err := scenefile.Load(args[0])
	if err != nil {
		fmt.Printf("failed to load scene: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultRenderConfig()
	cfg.Width, cfg.Height = sf.Width, sf.Height
	cfg.Jobs = *jobs
	cfg.SamplerW, cfg.SamplerH = *samples, *samples
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid configuration: %v\n", err)
		os.Exit(1)
	}

	integ := integrator.NewWhitted(march.Config{
		MaxSteps:       cfg.MaxSteps,
		MinDist:        cfg.MinDist,
		MaxDist:        cfg.MaxDist,
		MaxReflections: cfg.MaxReflections,
	})

	log := renderlog.New(nil)
	fmt.Println("[marchpreview] rendering...")
	start := time.Now()
	img, err := render.Render(cfg, s, root, cam, integ, log)
	if err != nil {
		fmt.Printf("render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[marchpreview] rendered in %s\n", time.Since(start))

	if err := showWindow(img); err != nil {
		fmt.Printf("preview window failed: %v\n", err)
		os.Exit(1)
	}
}

func showWindow(img *canvas.Canvas) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(img.Width, img.Height, "march-render preview", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	program, err := newBlitProgram()
	if err != nil {
		return err
	}
	defer gl.DeleteProgram(program)

	vao, vbo := newFullscreenQuad()
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.DeleteBuffers(1, &vbo)

	texture := uploadTexture(img)
	defer gl.DeleteTextures(1, &texture)

	if err := keyboard.Open(); err != nil {
		fmt.Printf("keyboard input unavailable, close the window to quit: %v\n", err)
	} else {
		defer keyboard.Close()
		go pollQuitKey(window)
	}

	gl.UseProgram(program)
	textureLoc := gl.GetUniformLocation(program, gl.Str("screenTexture\x00"))
	gl.Uniform1i(textureLoc, 0)

	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.UseProgram(program)
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// pollQuitKey watches the keyboard for Esc/Ctrl-C and closes the window,
// mirroring the teacher's SilentInputManager quit-key handling.
func pollQuitKey(window *glfw.Window) {
	for {
		_, key, err := keyboard.GetKey()
		if err != nil {
			return
		}
		if key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
			window.SetShouldClose(true)
			return
		}
	}
}

// uploadTexture converts the canvas to a tightly packed RGB byte buffer
// and uploads it as a GL_TEXTURE_2D.
func uploadTexture(img *canvas.Canvas) uint32 {
	pixels := make([]byte, 0, img.Width*img.Height*3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			pixels = append(pixels, clampByte(c.R), clampByte(c.G), clampByte(c.B))
		}
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(img.Width), int32(img.Height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return texture
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return byte(v * 255)
}

// newFullscreenQuad builds a VAO/VBO for a two-triangle strip covering the
// whole viewport, with UVs matching the canvas's bottom-left pixel origin.
func newFullscreenQuad() (vao, vbo uint32) {
	vertices := []float32{
		// pos.x, pos.y, uv.x, uv.y
		-1, -1, 0, 0,
		1, -1, 1, 0,
		-1, 1, 0, 1,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	return vao, vbo
}

func newBlitProgram() (uint32, error) {
	vertexShader, err := compileShader(blitVertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(blitFragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link blit program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}
