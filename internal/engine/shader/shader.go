// Package shader provides OpenGL shader compilation and uniform
// handling.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program wraps a linked GL shader program and caches its uniform
// locations by name.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// New compiles the vertex and fragment sources and links them into a
// program. Compile and link failures carry the GL info log.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:       id,
		uniforms: make(map[string]int32),
	}, nil
}

// Use makes this program the active one.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Destroy deletes the GL program. Safe to call more than once.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// SetMat4 uploads a 4x4 matrix uniform. Unknown uniform names are
// silently ignored, matching GL semantics for location -1.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uniform(name), 1, false, &m[0])
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.uniform(name), v.X(), v.Y(), v.Z())
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.uniform(name), v)
}

// uniform returns the cached location for name, querying GL on the
// first lookup.
func (p *Program) uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// compileProgram compiles vertex and fragment shaders and links them.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := readInfoLog(logLen, func(bufSize int32, out *uint8) {
			gl.GetProgramInfoLog(program, bufSize, nil, out)
		})
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := readInfoLog(logLen, func(bufSize int32, out *uint8) {
			gl.GetShaderInfoLog(shader, bufSize, nil, out)
		})
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

// readInfoLog fetches a GL info log of the reported length. Some
// drivers report a zero-length log even for a failed compile or link,
// so the length is checked before any buffer is sized from it.
func readInfoLog(logLen int32, fetch func(bufSize int32, out *uint8)) string {
	if logLen <= 0 {
		return "(no info log)"
	}
	buf := make([]byte, logLen)
	fetch(logLen, &buf[0])
	if s := strings.TrimRight(string(buf), "\x00"); s != "" {
		return s
	}
	return "(no info log)"
}
