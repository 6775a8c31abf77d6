// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// hyperboloidFrame is the axis-aligned frame of the (a,b) additively-weighted
// separating surface: the locus of points X with |X-Ca|-ra = |X-Cb|-rb. In
// the frame centered at the midpoint M of the two centers, with e the unit
// axis from Ca to Cb, this locus is the hyperbola of revolution
// s²/a1² - ρ²/b1² = 1 (s = e·(X-M), ρ = |(X-M)-s*e|), restricted to the
// branch whose sign(s) matches sign(ra-rb).
type hyperboloidFrame struct {
	m       Point
	e       Point
	a1, b1  float64
	isPlane bool // equal radii: the surface degenerates to the plane s=0
	ok      bool
}

func buildHyperboloidFrame(a, b Ball) hyperboloidFrame {
	var hf hyperboloidFrame
	hf.m = a.C.Add(b.C).Scale(0.5)
	e, ok := b.C.Sub(a.C).Unit()
	if !ok {
		return hf
	}
	hf.e = e
	h := Distance(a.C, b.C) / 2
	delta := a.R - b.R
	hf.a1 = delta / 2
	if math.Abs(hf.a1) < 1e-12 {
		hf.isPlane = true
		hf.ok = true
		return hf
	}
	b2 := h*h - hf.a1*hf.a1
	if b2 <= 1e-12 {
		return hf // balls too close for a real hyperboloid branch
	}
	hf.b1 = math.Sqrt(b2)
	hf.ok = true
	return hf
}

// decompose returns the axial coordinate s and the perpendicular vector W of
// point x relative to the frame (x-M = s*e + W).
func (hf hyperboloidFrame) decompose(x Point) (s float64, w Point) {
	d := x.Sub(hf.m)
	s = hf.e.Dot(d)
	w = d.Sub(hf.e.Scale(s))
	return
}

// lineRoots solves the hyperbola equation for X(t)=p0+t*(p1-p0), returning
// the roots t that lie on the branch matching sign(ra-rb) (the physically
// meaningful sheet of the surface).
func (hf hyperboloidFrame) lineRoots(p0, p1 Point) []float64 {
	if !hf.ok {
		return nil
	}
	s0, w0 := hf.decompose(p0)
	s1, w1 := hf.decompose(p1)
	sd := s1 - s0

	if hf.isPlane {
		if math.Abs(sd) < 1e-14 {
			return nil
		}
		return []float64{-s0 / sd}
	}

	wd := w1.Sub(w0)
	a1sq, b1sq := hf.a1*hf.a1, hf.b1*hf.b1

	A := sd*sd/a1sq - wd.Dot(wd)/b1sq
	B := 2*s0*sd/a1sq - 2*w0.Dot(wd)/b1sq
	C := s0*s0/a1sq - w0.Dot(w0)/b1sq - 1

	roots, ok := safeQuadraticRoots(A, B, C)
	if !ok {
		return nil
	}
	branch := sign(hf.a1)
	var out []float64
	for _, t := range roots {
		s := s0 + t*sd
		if branch == 0 || sign(s) == branch {
			out = append(out, t)
		}
	}
	return out
}

func sign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// HyperboloidProject projects point p onto the (a,b) separating hyperboloid
// along the line from p to the midpoint of the two ball centers (spec.md
// §4.1). ok is false when no point of the correct branch lies on that line
// (e.g. the two radii are so different that the branch degenerates).
func HyperboloidProject(a, b Ball, p Point) (Point, bool) {
	hf := buildHyperboloidFrame(a, b)
	if !hf.ok {
		return Point{}, false
	}
	roots := hf.lineRoots(hf.m, p)
	if len(roots) == 0 {
		return Point{}, false
	}
	best, bestDist := roots[0], math.Abs(roots[0]-1)
	for _, t := range roots[1:] {
		if d := math.Abs(t - 1); d < bestDist {
			best, bestDist = t, d
		}
	}
	d := p.Sub(hf.m)
	return hf.m.Add(d.Scale(best)), true
}

// HyperboloidSegmentIntersect intersects segment p0p1 with the (a,b)
// hyperboloid, returning the signed distance along the segment (negative or
// beyond |p1-p0| when the intersection falls outside the segment) and the
// intersection point. ok is false when the line through p0,p1 never meets
// the branch of the surface selected by (a,b).
func HyperboloidSegmentIntersect(a, b Ball, p0, p1 Point) (dist float64, point Point, ok bool) {
	hf := buildHyperboloidFrame(a, b)
	if !hf.ok {
		return 0, Point{}, false
	}
	roots := hf.lineRoots(p0, p1)
	if len(roots) == 0 {
		return 0, Point{}, false
	}
	// prefer the root inside [0,1]; otherwise the one closest to the segment
	best := roots[0]
	bestScore := math.Abs(clampUnit(best) - best)
	for _, t := range roots[1:] {
		score := math.Abs(clampUnit(t) - t)
		if score < bestScore {
			best, bestScore = t, score
		}
	}
	segLen := Distance(p0, p1)
	d := p1.Sub(p0)
	return best * segLen, p0.Add(d.Scale(best)), true
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
