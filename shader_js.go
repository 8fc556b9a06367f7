package main

import (
	"errors"
	"fmt"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

var errContextLost = errors.New("WebGL context lost")

func initShader(gl *webgl.WebGL, typ webgl.ShaderType, name, src string) (webgl.Shader, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		return webgl.Shader(js.Null()), fmt.Errorf("compile failed (%s)", name)
	}
	return s, nil
}

// program is a linked shader program with its model and projection uniforms.
type program struct {
	webgl.Program
	model, projection webgl.Location
}

func newProgram(gl *webgl.WebGL, vsSrc, fsSrc string) (*program, error) {
	vs, err := initShader(gl, gl.VERTEX_SHADER, "VERTEX_SHADER", vsSrc)
	if err != nil {
		return nil, err
	}
	fs, err := initShader(gl, gl.FRAGMENT_SHADER, "FRAGMENT_SHADER", fsSrc)
	if err != nil {
		return nil, err
	}

	p := gl.CreateProgram()
	gl.AttachShader(p, vs)
	gl.AttachShader(p, fs)
	gl.LinkProgram(p)
	if !gl.GetProgramParameter(p, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return nil, errContextLost
		}
		return nil, errors.New("link failed: " + gl.GetProgramInfoLog(p))
	}
	return &program{
		Program:    p,
		model:      gl.GetUniformLocation(p, "uModel"),
		projection: gl.GetUniformLocation(p, "uProjection"),
	}, nil
}
