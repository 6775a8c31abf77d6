// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Plane is an oriented tangent plane: a point on the plane plus its outward
// unit normal.
type Plane struct {
	P Point
	N Point
}

// Halfspace returns +1, 0 or -1 according to which side of the plane p lies
// on: +1 in the direction of the normal, -1 opposite, 0 on the plane (within
// tolerance). It is used throughout L3 to classify candidate balls and
// tangent spheres against a Face's tangent/central planes.
func (pl Plane) Halfspace(p Point, tol Tolerance) int {
	v := pl.N.Dot(p.Sub(pl.P))
	if v > tol.Eps {
		return 1
	}
	if v < -tol.Eps {
		return -1
	}
	return 0
}

// HalfspaceOfBall classifies a ball by its center (spec.md's "halfspace(plane,d)").
func (pl Plane) HalfspaceOfBall(b Ball, tol Tolerance) int {
	return pl.Halfspace(b.C, tol)
}

// HalfspaceOfSphere classifies a tangent sphere by its center.
func (pl Plane) HalfspaceOfSphere(s TangentSphere, tol Tolerance) int {
	return pl.Halfspace(s.C, tol)
}

// TangentPlanes3 returns the 0 or 2 planes tangent to all three balls
// (spec.md §4.1). None exist when the three centers are collinear, or when
// no common external tangent plane exists (the unit-normal constraint
// leaves γ² = 1-α²-β² negative).
//
// Writing the frame ex,ey,ez built from the three centers (ez normal to
// their plane), a tangent plane's outward unit normal n=(α,β,γ) in that
// frame must satisfy n·(C2-C1)=r2-r1 and n·(C3-C1)=r3-r1 -- two linear
// equations fixing α and β -- plus |n|=1, giving γ=±sqrt(1-α²-β²): the two
// roots are exactly the two tangent planes.
func TangentPlanes3(a, b, c Ball) []Plane {
	f := buildTrilaterationFrame(a, b, c)
	if !f.ok {
		return nil
	}
	alpha := (b.R - a.R) / f.d
	beta := (c.R - a.R - alpha*f.i) / f.j
	g2 := 1 - alpha*alpha - beta*beta
	if g2 < -1e-9 {
		return nil
	}
	if g2 < 0 {
		g2 = 0
	}
	gamma := math.Sqrt(g2)
	n1 := f.ex.Scale(alpha).Add(f.ey.Scale(beta)).Add(f.ez.Scale(gamma))
	n2 := f.ex.Scale(alpha).Add(f.ey.Scale(beta)).Add(f.ez.Scale(-gamma))
	p1 := a.C.Sub(n1.Scale(a.R))
	p2 := a.C.Sub(n2.Scale(a.R))
	return []Plane{{P: p1, N: n1}, {P: p2, N: n2}}
}

// PlaneNormalFromThreePoints returns the unit normal of the plane through
// three ball centers (used by Face to build its "central planes", which
// orient the halfspace test for picking which of Tangent4's 1-2 roots
// belongs to which side of a Face).
func PlaneNormalFromThreePoints(a, b, c Ball) (Point, bool) {
	return b.C.Sub(a.C).Cross(c.C.Sub(a.C)).Unit()
}
