// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package bezier evaluates the cubic Bézier curve MMD uses for keyframe
// interpolation: control points P1=(x1,y1), P2=(x2,y2), with implicit
// P0=(0,0) and P3=(1,1).
package bezier

// iterations is the fixed Newton-iteration budget. MMD's reference
// implementation uses exactly this many iterations and does not check for
// convergence; matching it exactly is required to reproduce reference
// output numerically (spec.md §4.2).
const iterations = 8

// Curve is a cubic Bézier on the unit square, parameterised by two control
// points. The zero value has all four coordinates at 0; the default wire
// curve (20, 107, 20, 107) / 127 is the separate Default value.
type Curve struct {
	X1, Y1, X2, Y2 float32
}

// Default is MMD's default wire interpolation curve, already normalized.
var Default = Curve{X1: 20.0 / 127.0, Y1: 107.0 / 127.0, X2: 20.0 / 127.0, Y2: 107.0 / 127.0}

// Eval returns y for the given x in [0,1] by solving B_x(t) = x for t via
// Newton iteration, then returning B_y(t). The result is not clamped; the
// caller is responsible for clamping x into [0,1] and for clamping or
// accepting whatever y comes out (spec.md §4.2).
func (c Curve) Eval(x float32) float32 {
	t := 0.8*x + 0.1 // offset avoids a zero-derivative start at x=0, x1=0.
	for i := 0; i < iterations; i++ {
		ft := component(t, c.X1, c.X2) - x
		ft1 := derivative(t, c.X1, c.X2)
		t -= ft / ft1
	}
	return component(t, c.Y1, c.Y2)
}

// component evaluates B_u(t) = (3(p1-p2)+1)t^3 + 3(-2p1+p2)t^2 + 3p1*t.
func component(t, p1, p2 float32) float32 {
	t2 := t * t
	t3 := t2 * t
	return (3*(p1-p2)+1)*t3 + 3*(-2*p1+p2)*t2 + 3*p1*t
}

// derivative evaluates B_u'(t).
func derivative(t, p1, p2 float32) float32 {
	t2 := t * t
	return 3*(3*(p1-p2)+1)*t2 + 6*(-2*p1+p2)*t + 3*p1
}
