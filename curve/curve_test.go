package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paperboard/curves/vertex"
)

func TestEval(t *testing.T) {
	tests := []struct {
		curve Curve
		param float32
		want  float32
	}{
		{Quadratic, 0, -0.4835875541},
		{Quadratic, 1, 24.5210653286 - 2.0635480065 - 0.4835875541},
		{Quadratic, -2, 24.5210653286*4 + 2.0635480065*2 - 0.4835875541},
		{Cubic, 0, 16},
		{Cubic, 1, 1.9992 + 4.00025 + 8.00368 + 16},
		{Cubic, -2, -1.9992*8 + 4.00025*4 - 8.00368*2 + 16},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.curve.Eval(tt.param), 1e-3, "%v(%v)", tt.curve, tt.param)
	}
}

func TestEvalSampledValues(t *testing.T) {
	vertices := map[Curve][]vertex.Vertex{}
	for _, c := range All() {
		vertices[c] = vertex.FromFunc(c.Eval, vertex.Domain{Start: -200, Step: 100, Count: 230})
	}

	tests := []struct {
		curve Curve
		index int // offset from the first sample
		want  float32
	}{
		{Quadratic, 1, 100.72874450683594},   // p = -1.99
		{Quadratic, 50, 57.78412628173828},   // p = -1.5
		{Quadratic, 229, 0.9802049994468689}, // p = 0.29
		{Cubic, 0, 3.910064697265625e-05},    // p = -2
		{Cubic, 1, 0.1591726541519165},       // p = -1.99
		{Cubic, 3, 0.47268980741500854},      // p = -1.97
		{Cubic, 50, 6.247742176055908},       // p = -1.5
		{Cubic, 100, 9.997369766235352},      // p = -1
		{Cubic, 229, 18.706247329711914},     // p = 0.29
	}
	for _, tt := range tests {
		got := vertices[tt.curve][tt.index]
		assert.Equal(t, tt.want, got.Pos[1], "%v at %v", tt.curve, got.Pos[0])
	}
}

func TestQuadraticSampleStart(t *testing.T) {
	vertices := vertex.FromFunc(Quadratic.Eval, vertex.Domain{Start: -200, Step: 100, Count: 30})
	assert.Len(t, vertices, 30)
	assert.Equal(t, float32(-2.0), vertices[0].Pos[0])
	assert.Equal(t, Quadratic.Eval(-2.0), vertices[0].Pos[1])
}

func TestValidAndString(t *testing.T) {
	assert.Equal(t, []Curve{Quadratic, Cubic}, All())
	for _, c := range All() {
		assert.True(t, c.Valid())
	}
	assert.False(t, None.Valid())
	assert.False(t, Curve(3).Valid())
	assert.Equal(t, 0, Quadratic.Index())
	assert.Equal(t, 1, Cubic.Index())

	assert.Equal(t, "quadratic", Quadratic.String())
	assert.Equal(t, "cubic", Cubic.String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "curve(7)", Curve(7).String())

	assert.Panics(t, func() { None.Eval(0) })
}
