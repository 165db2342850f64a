// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ShaderError is returned by CreateProgram when a stage fails to compile
// or the program fails to link.
type ShaderError struct {
	// Stage is "vertex", "fragment" or "link".
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("program link failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// CreateProgram compiles and links a program from vertex and fragment
// sources. The shader stages are detached and deleted once linked.
// Attribute i of attribs is bound to location i before linking. When
// check is false, compile and link status are not queried.
func CreateProgram(ctx API, vsSrc, fsSrc string, attribs []string, check bool) (Program, error) {
	vs, err := createShader(ctx, VERTEX_SHADER, vsSrc, check)
	if err != nil {
		return Program{}, err
	}
	defer ctx.DeleteShader(vs)
	fs, err := createShader(ctx, FRAGMENT_SHADER, fsSrc, check)
	if err != nil {
		return Program{}, err
	}
	defer ctx.DeleteShader(fs)
	prog := ctx.CreateProgram()
	if !prog.Valid() {
		return Program{}, &ShaderError{Stage: "link", Log: "glCreateProgram failed"}
	}
	ctx.AttachShader(prog, vs)
	ctx.AttachShader(prog, fs)
	for i, a := range attribs {
		if a != "" {
			ctx.BindAttribLocation(prog, Attrib(i), a)
		}
	}
	ctx.LinkProgram(prog)
	ctx.DetachShader(prog, vs)
	ctx.DetachShader(prog, fs)
	if check && ctx.GetProgrami(prog, LINK_STATUS) == 0 {
		log := ctx.GetProgramInfoLog(prog)
		ctx.DeleteProgram(prog)
		return Program{}, &ShaderError{Stage: "link", Log: strings.TrimSpace(log)}
	}
	return prog, nil
}

func createShader(ctx API, typ Enum, src string, check bool) (Shader, error) {
	stage := "vertex"
	if typ == FRAGMENT_SHADER {
		stage = "fragment"
	}
	sh := ctx.CreateShader(typ)
	if !sh.Valid() {
		return Shader{}, &ShaderError{Stage: stage, Log: "glCreateShader failed"}
	}
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if check && ctx.GetShaderi(sh, COMPILE_STATUS) == 0 {
		log := ctx.GetShaderInfoLog(sh)
		ctx.DeleteShader(sh)
		return Shader{}, &ShaderError{Stage: stage, Log: strings.TrimSpace(log)}
	}
	return sh, nil
}
