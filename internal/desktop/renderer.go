package desktop

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"invaders/internal/game"
)

type Config struct {
	Width, Height int // buffer size
	Scale         int // window pixels per buffer pixel
	Logger        *slog.Logger
}

// Frontend owns the window, the GL context and the texture the pixel buffer
// is streamed into. It must be used from the goroutine that created it,
// which must be locked to its OS thread.
type Frontend struct {
	window *glfw.Window
	log    *slog.Logger

	prog uint32
	vao  uint32
	tex  uint32

	width, height int

	// in receives key callbacks; only set while PollEvents runs.
	in *game.InputState
}

func New(cfg Config) (*Frontend, error) {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	window, err := initWindow(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	if err != nil {
		return nil, err
	}
	f := &Frontend{window: window, log: cfg.Logger, width: cfg.Width, height: cfg.Height}

	if err := gl.Init(); err != nil {
		f.Close()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	f.log.Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	f.prog, err = linkProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("blit program: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(1, 0, 0, 1)

	gl.GenTextures(1, &f.tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, f.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(f.width), int32(f.height), 0,
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenVertexArrays(1, &f.vao)

	gl.UseProgram(f.prog)
	gl.Uniform1i(gl.GetUniformLocation(f.prog, gl.Str("uBuffer\x00")), 0)

	if err := glError(); err != nil {
		f.Close()
		return nil, fmt.Errorf("gl setup: %w", err)
	}

	window.SetKeyCallback(f.onKey)
	return f, nil
}

// Present uploads buf into the texture and draws it over the whole window.
func (f *Frontend) Present(buf *game.Buffer) error {
	if buf.Width != f.width || buf.Height != f.height {
		return fmt.Errorf("buffer is %dx%d, texture is %dx%d", buf.Width, buf.Height, f.width, f.height)
	}
	fbW, fbH := f.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, f.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(buf.Width), int32(buf.Height),
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, gl.Ptr(buf.Pixels))

	gl.UseProgram(f.prog)
	gl.BindVertexArray(f.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	if err := glError(); err != nil {
		return err
	}
	f.window.SwapBuffers()
	return nil
}

// PollEvents dispatches pending GLFW events into in and ends the session
// when the window was asked to close.
func (f *Frontend) PollEvents(in *game.InputState) {
	f.in = in
	glfw.PollEvents()
	f.in = nil
	if f.window.ShouldClose() {
		in.Running = false
	}
}

func (f *Frontend) Close() {
	if f.tex != 0 {
		gl.DeleteTextures(1, &f.tex)
	}
	if f.vao != 0 {
		gl.DeleteVertexArrays(1, &f.vao)
	}
	if f.prog != 0 {
		gl.DeleteProgram(f.prog)
	}
	f.window.Destroy()
	glfw.Terminate()
}

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "INVALID_ENUM",
	gl.INVALID_VALUE:                 "INVALID_VALUE",
	gl.INVALID_OPERATION:             "INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
}

// glError drains the GL error queue and reports the first error seen.
func glError() error {
	var first error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first != nil {
			continue
		}
		name, ok := glErrorNames[code]
		if !ok {
			name = fmt.Sprintf("0x%04X", code)
		}
		first = fmt.Errorf("gl error %s", name)
	}
	return first
}
