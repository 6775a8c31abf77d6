// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// trilaterationFrame is the local orthonormal frame built from three ball
// centers, used by both Tangent3ForRadius and Tangent3Minimal. ok is false
// when the three centers are (numerically) collinear, in which case no
// tangent sphere frame -- and no tangent plane either -- exists.
type trilaterationFrame struct {
	c1          Point
	ex, ey, ez  Point
	d, i, j     float64
	ok          bool
}

func buildTrilaterationFrame(a, b, c Ball) trilaterationFrame {
	var f trilaterationFrame
	f.c1 = a.C
	ex, ok := b.C.Sub(a.C).Unit()
	if !ok {
		return f
	}
	f.ex = ex
	f.d = Distance(a.C, b.C)
	ac := c.C.Sub(a.C)
	f.i = ex.Dot(ac)
	proj := ex.Scale(f.i)
	eyRaw := ac.Sub(proj)
	ey, ok := eyRaw.Unit()
	if !ok {
		return f
	}
	f.ey = ey
	f.j = ey.Dot(ac)
	f.ez = ex.Cross(ey)
	f.ok = true
	return f
}

// xy returns the (x,y) in-plane coordinates of the apex for target distances
// rho1,rho2,rho3 from the three centers (trilateration in the plane).
func (f trilaterationFrame) xy(rho1, rho2, rho3 float64) (x, y float64) {
	x = (rho1*rho1 - rho2*rho2 + f.d*f.d) / (2 * f.d)
	y = (rho1*rho1 - rho3*rho3 + f.i*f.i + f.j*f.j - 2*f.i*x) / (2 * f.j)
	return x, y
}

// Tangent3ForRadius returns every sphere of the given radius tangent to all
// three balls (spec.md §4.1, the probe-driven three-ball tangent). Returns 0,
// 1 or 2 spheres: the common locus of apex points at distance radius+r_i from
// each center is the intersection of the plane-projected trilateration point
// with the line orthogonal to the plane, i.e. z = ±sqrt(rho1^2-x^2-y^2).
func Tangent3ForRadius(a, b, c Ball, radius float64) []TangentSphere {
	f := buildTrilaterationFrame(a, b, c)
	if !f.ok {
		return nil
	}
	rho1, rho2, rho3 := a.R+radius, b.R+radius, c.R+radius
	x, y := f.xy(rho1, rho2, rho3)
	z2 := rho1*rho1 - x*x - y*y
	if z2 < -1e-9 {
		return nil
	}
	if z2 < 0 {
		z2 = 0
	}
	z := math.Sqrt(z2)
	base := f.c1.Add(f.ex.Scale(x)).Add(f.ey.Scale(y))
	if z < 1e-12 {
		return []TangentSphere{{C: base, R: radius}}
	}
	return []TangentSphere{
		{C: base.Add(f.ez.Scale(z)), R: radius},
		{C: base.Add(f.ez.Scale(-z)), R: radius},
	}
}

// Tangent3Minimal returns the single smallest sphere tangent to all three
// balls, with no prescribed radius. Writing rho_i(r) = r_i+r, the in-plane
// trilateration coordinates x(r), y(r) are affine in r, so the condition
// z(r)^2 = rho1(r)^2 - x(r)^2 - y(r)^2 = 0 (the apex sits exactly in the
// plane of the three centers, which is the smallest tangent sphere possible)
// reduces to one closed-form quadratic in r.
func Tangent3Minimal(a, b, c Ball) (TangentSphere, bool) {
	f := buildTrilaterationFrame(a, b, c)
	if !f.ok {
		return TangentSphere{}, false
	}

	// x(r) = x0 + x1*r, y(r) = y0 + y1*r; derive coefficients analytically by
	// evaluating xy() at r=0 and r=1 and differencing (xy is affine in the
	// rho^2's, which are themselves affine in r).
	x0, y0 := f.xy(a.R, b.R, c.R)
	x1v, y1v := f.xy(a.R+1, b.R+1, c.R+1)
	x1, y1 := x1v-x0, y1v-y0

	// z(r)^2 = (a.R+r)^2 - (x0+x1 r)^2 - (y0+y1 r)^2 = A r^2 + B r + C
	A := 1 - x1*x1 - y1*y1
	B := 2*a.R - 2*x0*x1 - 2*y0*y1
	C := a.R*a.R - x0*x0 - y0*y0

	roots, ok := safeQuadraticRoots(A, B, C)
	if !ok {
		return TangentSphere{}, false
	}
	best := math.Inf(1)
	found := false
	for _, r := range roots {
		if r >= 0 && r < best {
			best = r
			found = true
		}
	}
	if !found {
		return TangentSphere{}, false
	}
	x, y := f.xy(a.R+best, b.R+best, c.R+best)
	apex := f.c1.Add(f.ex.Scale(x)).Add(f.ey.Scale(y))
	return TangentSphere{C: apex, R: best}, true
}
