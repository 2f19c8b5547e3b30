package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var vertexShader = `
#version 330 core

uniform mat4 projection;  //in
uniform mat4 view;        //in
uniform mat4 model;       //in

layout (location = 0) in vec3 vert;      //in
layout (location = 1) in vec3 vertColor; //in

out vec3 fragColor;   //out

void main() {
	fragColor = vertColor;
	gl_Position = projection * view * model * vec4(vert, 1);
}
` + "\x00"

var fragmentShader = `
#version 330 core

in vec3 fragColor;    //in
out vec4 outputColor; //out

void main() {
	outputColor = vec4(fragColor, 1);
}
` + "\x00"

// newProgram compiles and links both shaders. On failure every object created
// so far is deleted, so a bad shader leaks nothing.
func newProgram(vertexSource, fragmentSource string) (uint32, error) {

	vert, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vert) // flagged only, freed once the program lets go

	frag, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", msg)
	}

	// the linked program keeps its own copy of the binaries
	gl.DetachShader(program, vert)
	gl.DetachShader(program, frag)

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
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %v", msg)
	}

	return shader, nil

}

// infoLog reads the compile or link log of a shader or program object.
func infoLog(object uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {

	var logLength int32
	param(object, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "(no log)"
	}

	buf := strings.Repeat("\x00", int(logLength+1))
	read(object, logLength, nil, gl.Str(buf))

	return strings.TrimRight(buf, "\x00\n")

}

var glErrorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

func checkGLError() {
	for {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		if name, ok := glErrorNames[glerr]; ok {
			panic(fmt.Sprintf("GL_ERROR: %s", name))
		}
		panic(fmt.Sprintf("GL_ERROR UNKNOWN: %v", glerr))
	}
}
