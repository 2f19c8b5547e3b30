// Package curve holds the functions the application samples and draws.
package curve

import (
	"fmt"
	"math"
)

// coefficients as float32, the precision they are declared in
var (
	quadA float32 = 24.5210653286
	quadB float32 = 2.0635480065
	quadC float32 = 0.4835875541

	cubicA float32 = 1.9992
	cubicB float32 = 4.00025
	cubicC float32 = 8.00368
	cubicD float32 = 16
)

// Curve selects one of the sampled functions.
type Curve int

const (
	None Curve = iota

	// 24.5210653286p² - 2.0635480065p - 0.4835875541
	Quadratic

	// 1.9992p³ + 4.00025p² + 8.00368p + 16
	Cubic
)

// All returns every curve in draw buffer order.
func All() []Curve {
	return []Curve{Quadratic, Cubic}
}

// Index is the curve's position in All, and in the draw buffer.
func (c Curve) Index() int {
	return int(c) - 1
}

func (c Curve) Valid() bool {
	return c == Quadratic || c == Cubic
}

func (c Curve) String() string {
	switch c {
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	case None:
		return "none"
	}
	return fmt.Sprintf("curve(%d)", int(c))
}

// Eval returns the curve's value at p. It panics on an invalid curve.
//
// The quadratic is evaluated in float32. The cubic raises p in float64, so
// its sum is carried in float64 and rounded to float32 once at the end. The
// explicit conversions keep every product rounded on its own (no fused
// multiply-add), so samples are identical on every platform.
func (c Curve) Eval(p float32) float32 {
	switch c {
	case Quadratic:
		return float32(float32(quadA*p)*p) - float32(quadB*p) - quadC
	case Cubic:
		x := float64(p)
		return float32(float64(cubicA)*math.Pow(x, 3) +
			float64(cubicB)*math.Pow(x, 2) +
			float64(float32(cubicC*p)) +
			float64(cubicD))
	}
	panic(fmt.Sprintf("curve: Eval on %v", c))
}
