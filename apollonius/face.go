// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apollonius

import (
	"github.com/cpmech/apollon/geom"
)

// dRecord is a committed d-entry: the ball that closes the quadruple on one
// side of a Face's tangent planes, and the tangent sphere proving it.
type dRecord struct {
	Ball int
	TS   geom.TangentSphere
}

// eRecord is a committed e-entry, used when a Face cannot produce a valid d
// on either side.
type eRecord struct {
	Ball int
	TS   geom.TangentSphere
}

// face is the working object of spec.md §4.4: an oriented triple of balls
// plus its tangent planes (if any) and the d/e entries found so far.
type face struct {
	Triple geom.Triple
	A, B, C geom.Ball

	canHaveD bool
	planes   [2]geom.Plane // only valid when canHaveD
	central  geom.Point    // normal through the 3 centers, oriented to match planes[0]

	d [2]*dRecord

	canHaveE bool
	e        []eRecord
	middle   geom.TangentSphere
	hasMiddle bool
}

func newFace(triple geom.Triple, balls []geom.Ball, minRadius float64) *face {
	f := &face{Triple: triple}
	f.A, f.B, f.C = balls[triple[0]], balls[triple[1]], balls[triple[2]]

	planes := geom.TangentPlanes3(f.A, f.B, f.C)
	if len(planes) == 2 {
		f.canHaveD = true
		f.planes[0], f.planes[1] = planes[0], planes[1]
		if n, ok := geom.PlaneNormalFromThreePoints(f.A, f.B, f.C); ok {
			if n.Dot(planes[0].N) < 0 {
				n = n.Scale(-1)
			}
			f.central = n
		}
	}

	// can-have-e: at least one of the three balls has radius above the
	// global minimum, or there is no d-pair at all (spec.md §4.4)
	f.canHaveE = !f.canHaveD || f.A.R > minRadius || f.B.R > minRadius || f.C.R > minRadius

	if ts, ok := geom.Tangent3Minimal(f.A, f.B, f.C); ok {
		f.middle = ts
		f.hasMiddle = true
	}
	return f
}

// halfspaceOfCentral classifies a point against the central plane oriented
// to side k (k==0 matches f.central, k==1 the opposite orientation).
func (f *face) halfspaceOfCentral(p geom.Point, k int, tol geom.Tolerance) int {
	n := f.central
	if k == 1 {
		n = n.Scale(-1)
	}
	v := n.Dot(p.Sub(f.A.C))
	if v > tol.Eps {
		return 1
	}
	if v < -tol.Eps {
		return -1
	}
	return 0
}

// acceptD implements the candidate-for-d algorithm of spec.md §4.4 for side
// k: it returns the tangent sphere to record for candidate ball d, or ok=false
// if d must be rejected.
func (f *face) acceptD(d int, dBall geom.Ball, k int, balls []geom.Ball, tol geom.Tolerance) (geom.TangentSphere, bool) {
	if f.Triple.Contains(d) {
		return geom.TangentSphere{}, false
	}
	if f.d[k] != nil && f.d[k].Ball == d {
		return geom.TangentSphere{}, false
	}
	if f.planes[k].Halfspace(dBall.C, tol) < 0 {
		return geom.TangentSphere{}, false
	}

	cands := geom.Tangent4(f.A, f.B, f.C, dBall, tol)
	if len(cands) == 0 {
		return geom.TangentSphere{}, false
	}

	var chosen geom.TangentSphere
	found := false
	if len(cands) == 1 {
		chosen, found = cands[0], true
	} else {
		side0 := f.halfspaceOfCentral(cands[0].C, k, tol)
		side1 := f.halfspaceOfCentral(cands[1].C, k, tol)
		switch {
		case side0 >= 0 && side1 < 0:
			chosen, found = cands[0], true
		case side1 >= 0 && side0 < 0:
			chosen, found = cands[1], true
		case side0 >= 0 && side1 >= 0:
			// both on the positive side: keep the smaller radius
			if cands[0].R <= cands[1].R {
				chosen, found = cands[0], true
			} else {
				chosen, found = cands[1], true
			}
		default:
			// both negative: keep the larger radius
			if cands[0].R >= cands[1].R {
				chosen, found = cands[0], true
			} else {
				chosen, found = cands[1], true
			}
		}
	}
	if !found {
		return geom.TangentSphere{}, false
	}

	if f.collidesWithRecords(chosen, tol) {
		return geom.TangentSphere{}, false
	}
	return chosen, true
}

// acceptE implements the candidate-for-e test of spec.md §4.4.
func (f *face) acceptE(e int, eBall geom.Ball, balls []geom.Ball, tol geom.Tolerance) (geom.TangentSphere, bool) {
	if f.Triple.Contains(e) {
		return geom.TangentSphere{}, false
	}
	if f.canHaveD {
		if f.planes[0].Halfspace(eBall.C, tol) >= 0 || f.planes[1].Halfspace(eBall.C, tol) >= 0 {
			return geom.TangentSphere{}, false
		}
	}
	if f.hasMiddle && !tol.TangentSpheresIntersect(f.middle, geom.TangentSphere{C: eBall.C, R: eBall.R}) {
		return geom.TangentSphere{}, false
	}
	cands := geom.Tangent4(f.A, f.B, f.C, eBall, tol)
	for _, ts := range cands {
		if f.collidesWithRecords(ts, tol) {
			continue
		}
		return ts, true
	}
	return geom.TangentSphere{}, false
}

func (f *face) collidesWithRecords(ts geom.TangentSphere, tol geom.Tolerance) bool {
	for _, d := range f.d {
		if d != nil && tol.TangentSpheresIntersect(ts, d.TS) && !tol.EqualTangentSpheres(ts, d.TS) {
			return true
		}
	}
	for _, e := range f.e {
		if tol.TangentSpheresIntersect(ts, e.TS) && !tol.EqualTangentSpheres(ts, e.TS) {
			return true
		}
	}
	return false
}
