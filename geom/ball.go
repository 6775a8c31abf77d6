// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Ball is an input ball: a center plus a non-negative radius. Balls are
// addressed by the caller using a contiguous integer index; apollon never
// mutates a Ball once it has been handed to it.
type Ball struct {
	C Point
	R float64
}

// NewBall returns a new Ball.
func NewBall(x, y, z, r float64) Ball {
	return Ball{C: NewPoint(x, y, z), R: r}
}

// TangentSphere is a computed sphere (x,y,z,r); r may be zero but, unlike an
// intermediate root, is never negative once returned from a public function.
type TangentSphere struct {
	C Point
	R float64
}

// Expanded returns the ball inflated by delta (used for probe-expansion in
// the L4 contact construction: delta==probe).
func (b Ball) Expanded(delta float64) Ball {
	return Ball{C: b.C, R: b.R + delta}
}

// CenterDistance returns the distance between the centers of a and b.
func CenterDistance(a, b Ball) float64 {
	return Distance(a.C, b.C)
}

// MinimalDistance returns the additively-weighted (surface-to-surface)
// distance between a and b: ||ca-cb|| - ra - rb. This is the distance used
// to order a pair's neighbors before cutting its contact contour (spec.md
// §4.5); triangulator seeding orders by CenterDistance instead.
func MinimalDistance(a, b Ball) float64 {
	return CenterDistance(a, b) - a.R - b.R
}

// Tolerance bundles the single global numeric epsilon the spec requires to be
// used consistently across every "equal", "touches" and "intersects" test on
// both input balls and tangent spheres.
type Tolerance struct {
	Eps float64
}

// DefaultTolerance is the epsilon used when a caller has no special numeric
// requirements; 1e-8 matches the working precision of the closed-form roots
// in Tangent4/Tangent3ForRadius.
var DefaultTolerance = Tolerance{Eps: 1e-8}

// EqualF reports whether a and b are equal within the tolerance.
func (t Tolerance) EqualF(a, b float64) bool {
	return math.Abs(a-b) <= t.Eps
}

// TouchesBall reports whether tangent sphere s is tangent to ball b within
// the tolerance: ||C(s)-C(b)|| == R(s)+R(b).
func (t Tolerance) TouchesBall(s TangentSphere, b Ball) bool {
	return math.Abs(Distance(s.C, b.C)-(s.R+b.R)) <= t.Eps
}

// IntersectsBall reports whether tangent sphere s overlaps ball b by more
// than the tolerance (the "emptiness" check of spec.md §8 property 2).
func (t Tolerance) IntersectsBall(s TangentSphere, b Ball) bool {
	return Distance(s.C, b.C) < s.R+b.R-t.Eps
}

// IntersectsBallExpanded is IntersectsBall against b inflated by expansion.
func (t Tolerance) IntersectsBallExpanded(s TangentSphere, b Ball, expansion float64) bool {
	return Distance(s.C, b.C) < s.R+b.R+expansion-t.Eps
}

// BallsOverlap reports whether two input balls overlap by more than the
// tolerance.
func (t Tolerance) BallsOverlap(a, b Ball) bool {
	return CenterDistance(a, b) < a.R+b.R-t.Eps
}

// BallContains reports whether a fully contains b within the tolerance,
// i.e. b is "hidden" inside a (spec.md §4.3).
func (t Tolerance) BallContains(a, b Ball) bool {
	return CenterDistance(a, b)+b.R <= a.R+t.Eps
}

// EqualTangentSpheres reports whether two tangent spheres are numerically
// the same sphere (spec.md §3 invariant: a quadruple's 1-2 entry list never
// contains two equal spheres).
func (t Tolerance) EqualTangentSpheres(a, b TangentSphere) bool {
	return t.EqualF(a.C.X, b.C.X) && t.EqualF(a.C.Y, b.C.Y) && t.EqualF(a.C.Z, b.C.Z) && t.EqualF(a.R, b.R)
}

// TangentSpheresIntersect reports whether two tangent spheres overlap beyond
// the tolerance (used when rejecting a candidate that collides with an
// already-committed d/e tangent sphere).
func (t Tolerance) TangentSpheresIntersect(a, b TangentSphere) bool {
	return Distance(a.C, b.C) < a.R+b.R-t.Eps
}
