package renderer

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders
var shaderFiles embed.FS

// Program is a linked vertex + fragment shader pair. Uniform locations are looked up once and cached by name.
type Program struct {
	Name     string
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles the given embedded shader files and links them into a program. Both shader objects are
// deleted again once linked, the program keeps its own copy of the binaries.
func NewProgram(name string, vertPath string, fragPath string) (*Program, error) {
	vert, err := LoadVert(vertPath)
	if err != nil {
		return nil, fmt.Errorf("program '%s': %w", name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := LoadFrag(fragPath)
	if err != nil {
		return nil, fmt.Errorf("program '%s': %w", name, err)
	}
	defer gl.DeleteShader(frag)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("failed to link program '%s': %s", name, strings.TrimRight(infoLog, "\x00"))
	}
	gl.DetachShader(handle, vert)
	gl.DetachShader(handle, frag)

	slog.Info("Linked shader program", "name", name, "handle", handle, "vert", vertPath, "frag", fragPath)
	return &Program{
		Name:     name,
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

// LoadVert reads an embedded GLSL file expected to contain a vertex shader and compiles it.
func LoadVert(path string) (uint32, error) {
	return compileShaderFile(gl.VERTEX_SHADER, path)
}

// LoadFrag reads an embedded GLSL file expected to contain a fragment shader and compiles it.
func LoadFrag(path string) (uint32, error) {
	return compileShaderFile(gl.FRAGMENT_SHADER, path)
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// location resolves a uniform name. Unknown names resolve to -1, which GL silently ignores on upload.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Warn("Uniform not found in program", "program", p.Name, "uniform", name)
	}
	p.uniforms[name] = loc
	return loc
}

func readShaderCode(path string) (string, error) {
	code, err := shaderFiles.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader file '%s': %w", path, err)
	}
	slog.Debug("Read shader file", "path", path, "bytes", len(code))
	return string(code), nil
}

func compileShaderFile(shaderType uint32, path string) (uint32, error) {
	source, err := readShaderCode(path)
	if err != nil {
		return 0, err
	}
	shader, err := compileShader(shaderType, source)
	if err != nil {
		return 0, fmt.Errorf("shader '%s': %w", path, err)
	}
	return shader, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}
