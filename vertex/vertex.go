package vertex

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// layout of one vertex in a flat float buffer
const (
	PositionCount  = 3 // x,y,z
	ColorCount     = 3 // r,g,b
	PositionOffset = 0 // position begins at the start of a vertex
	ColorOffset    = 3 // color begins after position
	Size           = 6 // PositionCount + ColorCount
)

// White is the color every sampled vertex gets.
var White = mgl32.Vec3{1, 1, 1}

// Vertex is a point in 3D space and its color.
type Vertex struct {
	Pos mgl32.Vec3
	RGB mgl32.Vec3
}

// Default returns a white vertex at the origin.
func Default() Vertex {
	return Vertex{Pos: mgl32.Vec3{0, 0, 0}, RGB: White}
}

func New(pos, rgb mgl32.Vec3) Vertex {
	return Vertex{Pos: pos, RGB: rgb}
}

// Domain selects the sample indices [Start, Start+Count), each mapped to the
// parameter index/Step.
type Domain struct {
	Start int
	Step  int
	Count int
}

// Param returns the function parameter for sample index i.
func (d Domain) Param(i int) float32 {
	return float32(i) / float32(d.Step)
}

// FromFunc samples f over d and returns one white vertex per index, positioned
// at (param, f(param), 0).
func FromFunc(f func(float32) float32, d Domain) []Vertex {

	if d.Count <= 0 {
		return []Vertex{}
	}

	vertices := make([]Vertex, 0, d.Count)
	for i := d.Start; i < d.Start+d.Count; i++ {
		param := d.Param(i)
		vertices = append(vertices, New(mgl32.Vec3{param, f(param), 0}, White))
	}

	return vertices
}

// ToFloats flattens vertices into x,y,z,r,g,b groups, in order.
func ToFloats(vertices []Vertex) []float32 {
	floats := make([]float32, 0, len(vertices)*Size)
	for _, v := range vertices {
		floats = append(floats,
			v.Pos[0], v.Pos[1], v.Pos[2], // position
			v.RGB[0], v.RGB[1], v.RGB[2], // color
		)
	}
	return floats
}

// FromFloats regroups a flat buffer produced by ToFloats.
func FromFloats(floats []float32) ([]Vertex, error) {

	if len(floats)%Size != 0 {
		return nil, fmt.Errorf("vertex buffer length %d is not a multiple of %d", len(floats), Size)
	}

	vertices := make([]Vertex, 0, len(floats)/Size)
	for i := 0; i < len(floats); i += Size {
		p := floats[i+PositionOffset : i+PositionOffset+PositionCount]
		c := floats[i+ColorOffset : i+ColorOffset+ColorCount]
		vertices = append(vertices, New(mgl32.Vec3{p[0], p[1], p[2]}, mgl32.Vec3{c[0], c[1], c[2]}))
	}

	return vertices, nil
}

// Concat flattens several vertex lists into the one buffer uploaded to the GPU.
func Concat(lists ...[]Vertex) []float32 {
	var floats []float32
	for _, l := range lists {
		floats = append(floats, ToFloats(l)...)
	}
	return floats
}

// Range is a draw range in vertices, not floats.
type Range struct {
	Offset int32
	Count  int32
}

// Ranges returns the draw range of each list inside the buffer built by Concat.
func Ranges(lists ...[]Vertex) []Range {
	ranges := make([]Range, 0, len(lists))
	var offset int32
	for _, l := range lists {
		count := int32(len(l))
		ranges = append(ranges, Range{Offset: offset, Count: count})
		offset += count
	}
	return ranges
}
