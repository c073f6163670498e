package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Fullscreen triangle generated from gl_VertexID; no vertex buffer.
// The texture covers [0,1]^2 of it, which is the whole viewport.
const blitVertSrc = `#version 410 core

noperspective out vec2 vUV;

void main() {
    vUV.x = (gl_VertexID == 2) ? 2.0 : 0.0;
    vUV.y = (gl_VertexID == 1) ? 2.0 : 0.0;
    gl_Position = vec4(2.0 * vUV - 1.0, 0.0, 1.0);
}
` + "\x00"

const blitFragSrc = `#version 410 core

uniform sampler2D uBuffer;

noperspective in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = vec4(texture(uBuffer, vUV).rgb, 1.0);
}
` + "\x00"

// infoLog reads a shader or program log through the matching pair of GL
// getters.
func infoLog(obj uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	log := make([]byte, n)
	getLog(obj, n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

func compileShader(src string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	cs, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, cs, nil)
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.TRUE {
		return sh, nil
	}
	msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
	gl.DeleteShader(sh)
	return 0, fmt.Errorf("compile: %s", msg)
}

// linkProgram compiles both stages and links them. The shader objects are
// released whether or not linking succeeds.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.TRUE {
		return prog, nil
	}
	msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
	gl.DeleteProgram(prog)
	return 0, fmt.Errorf("link: %s", msg)
}
