package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/curves/curve"
	"github.com/paperboard/curves/frame"
	"github.com/paperboard/curves/vertex"
)

const (
	windowWidth      = 800
	windowHeight     = 600
	floatSizeInBytes = 4 // float is 4 bytes
	vertexDataFile   = "VertexData.txt"
	nearPlane        = 0.1
	farPlane         = 100.0
)

// sample indices -200..29 at 1/100 = parameters -2.00 .. 0.29
var domain = vertex.Domain{Start: -200, Step: 100, Count: 230}

// input collected by callbacks between two frames
type pending struct {
	cursorMoved bool
	cursorX     float64
	cursorY     float64
	scrollY     float64
}

// scene is everything the render loop needs; nothing lives in globals
type scene struct {
	program uint32
	vao     uint32
	vbo     uint32
	ranges  []vertex.Range
	state   frame.State
	events  pending
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	// sample both curves and dump them before anything touches the GPU
	lists := make([][]vertex.Vertex, 0, len(curve.All()))
	for i, c := range curve.All() {
		vertices := vertex.FromFunc(c.Eval, domain)
		if err := vertex.WriteFile(vertexDataFile, vertices, i > 0); err != nil {
			log.Fatalln("failed to write vertex data:", err)
		}
		fmt.Printf("CURVE -- %v: %v vertices written to %v\n", c, len(vertices), vertexDataFile)
		lists = append(lists, vertices)
	}

	// initalize glfw
	err := glfw.Init()
	if err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	// use OpenGL v3.3 core
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// create window handle
	window, err := glfw.CreateWindow(windowWidth, windowHeight, "Compulsory 1", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	// initialize OpenGL
	err = gl.Init()
	if err != nil {
		panic(err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	s := &scene{
		state: frame.NewState(mgl32.Vec3{0, 0, 3}, windowWidth, windowHeight),
	}

	// window events feed the next frame's input
	window.SetFramebufferSizeCallback(fboSizeCallback)
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		s.events.cursorMoved = true
		s.events.cursorX, s.events.cursorY = x, y
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, y float64) {
		s.events.scrollY += y
	})

	// tell glfw to capture our mouse
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	// cleared background color = teal
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)

	// make program with shaders and vao/vbo
	s.setup(lists)
	defer s.release()

	// game loop
	for !window.ShouldClose() {

		// advance camera and selection
		s.state = s.state.Update(s.input(window))
		s.events = pending{}

		// draw into buffer
		s.draw()

		// render buffer to screen
		window.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

}

// on window size change (by OS or user resize) this callback executes
func fboSizeCallback(_ *glfw.Window, width int, height int) {
	// make sure the viewport matches the new window dimensions; note that width and
	// height will be significantly larger than specified on retina displays.
	gl.Viewport(0, 0, int32(width), int32(height))
	fmt.Printf("RESIZE -- width %v height %v\n", width, height)
}

// poll keys and drain callback events into one frame of input
func (s *scene) input(window *glfw.Window) frame.Input {

	pressed := func(key glfw.Key) bool {
		return window.GetKey(key) == glfw.Press
	}

	if pressed(glfw.KeyEscape) {
		window.SetShouldClose(true)
	}

	in := frame.Input{
		Now:         glfw.GetTime(),
		Forward:     pressed(glfw.KeyW),
		Backward:    pressed(glfw.KeyS),
		Left:        pressed(glfw.KeyA),
		Right:       pressed(glfw.KeyD),
		CursorMoved: s.events.cursorMoved,
		CursorX:     s.events.cursorX,
		CursorY:     s.events.cursorY,
		ScrollY:     s.events.scrollY,
	}

	switch {
	case pressed(glfw.Key1):
		in.Select = curve.Quadratic
	case pressed(glfw.Key2):
		in.Select = curve.Cubic
	}

	return in
}

// https://www.songho.ca/opengl/gl_vbo.html#create
func (s *scene) setup(lists [][]vertex.Vertex) {

	var err error

	// configure the vertex and fragment shaders
	s.program, err = newProgram(vertexShader, fragmentShader)
	if err != nil {
		panic(err)
	}
	gl.UseProgram(s.program)

	// one buffer holding every curve, one after the other
	vertices := vertex.Concat(lists...)
	s.ranges = vertex.Ranges(lists...)

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)

	// bind vao first, then the vbo, then describe the attributes
	gl.BindVertexArray(s.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSizeInBytes, gl.Ptr(vertices), gl.STATIC_DRAW)

	// position attribute
	gl.VertexAttribPointer(0, vertex.PositionCount, gl.FLOAT, false, vertex.Size*floatSizeInBytes, gl.PtrOffset(vertex.PositionOffset*floatSizeInBytes)) // PtrOffset = 0
	gl.EnableVertexAttribArray(0)

	// color attribute
	gl.VertexAttribPointer(1, vertex.ColorCount, gl.FLOAT, false, vertex.Size*floatSizeInBytes, gl.PtrOffset(vertex.ColorOffset*floatSizeInBytes)) // PtrOffset = 12
	gl.EnableVertexAttribArray(1)

	// the vao remembers the vbo, so both can be unbound
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	fmt.Printf("RAW_LENGTH -- Floats %v (%v-per-vertex) Ranges %v\n", len(vertices), vertex.Size, s.ranges)

}

func (s *scene) draw() {

	gl.Clear(gl.COLOR_BUFFER_BIT)

	// load program with shaders
	gl.UseProgram(s.program)
	gl.BindVertexArray(s.vao)

	// camera projection
	s.setupCamera()

	// draw the active curve only
	r := s.ranges[s.state.Active.Index()]
	gl.DrawArrays(gl.LINE_STRIP, r.Offset, r.Count)

	gl.BindVertexArray(0)

	// check for accumulated OpenGL errors
	checkGLError()

}

func (s *scene) setupCamera() {

	// generate perspective matrix from camera zoom
	projection := s.state.Camera.Projection(float32(windowWidth)/windowHeight, nearPlane, farPlane)
	projectionUniform := gl.GetUniformLocation(s.program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionUniform, 1, false, &projection[0])

	// from world space to eye space
	view := s.state.Camera.ViewMatrix()
	viewUniform := gl.GetUniformLocation(s.program, gl.Str("view\x00"))
	gl.UniformMatrix4fv(viewUniform, 1, false, &view[0])

	// model view
	model := mgl32.Ident4()
	modelUniform := gl.GetUniformLocation(s.program, gl.Str("model\x00"))
	gl.UniformMatrix4fv(modelUniform, 1, false, &model[0])

}

func (s *scene) release() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteProgram(s.program)
}
