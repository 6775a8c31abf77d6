// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apollonius

import (
	"github.com/cpmech/apollon/bsh"
	"github.com/cpmech/apollon/geom"
)

// boundingOverlapsRegion reports whether bounding ball b can possibly contain
// a member close enough to matter for region (a tangent sphere being
// refined, or a constraint sphere from the opposite half-space).
func boundingOverlapsRegion(b geom.Ball, region geom.TangentSphere) bool {
	return geom.Distance(b.C, region.C) <= b.R+region.R
}

// searchAnyD implements spec.md §4.4's "find any d": a BSH search for the
// first ball accepted by f.acceptD on side k. When constraint is non-nil the
// search is first pruned to the region overlapping it (the other side's
// already-recorded tangent sphere); callers retry unconstrained on failure.
func searchAnyD(h *bsh.BSH, balls []geom.Ball, f *face, k int, tol geom.Tolerance, constraint *geom.TangentSphere) (ball int, ts geom.TangentSphere, ok bool) {
	found := false
	h.Search(
		func(b geom.Ball) bool {
			if constraint == nil {
				return true
			}
			return boundingOverlapsRegion(b, *constraint)
		},
		func(id int, b geom.Ball) (bool, bool) {
			if found {
				return false, true
			}
			cand, okc := f.acceptD(id, b, k, balls, tol)
			if okc {
				ball, ts, ok = id, cand, true
				found = true
				return true, true
			}
			return false, false
		},
	)
	return
}

// refineD implements spec.md §4.4's "refine d to a valid empty one": repeat
// BSH-querying the region around the current candidate's tangent sphere,
// replacing it with any strictly-smaller accepted candidate, until no
// replacement is found.
func refineD(h *bsh.BSH, balls []geom.Ball, f *face, k int, tol geom.Tolerance, ball int, ts geom.TangentSphere) (int, geom.TangentSphere) {
	for {
		region := ts
		replacedBall, replacedTS := ball, ts
		replaced := false
		h.Search(
			func(b geom.Ball) bool { return boundingOverlapsRegion(b, region) },
			func(id int, b geom.Ball) (bool, bool) {
				if id == ball {
					return false, false
				}
				cand, okc := f.acceptD(id, b, k, balls, tol)
				if okc && cand.R < replacedTS.R-tol.Eps {
					replacedBall, replacedTS = id, cand
					replaced = true
					return true, true
				}
				return false, false
			},
		)
		if !replaced {
			return ball, ts
		}
		ball, ts = replacedBall, replacedTS
	}
}

// searchAnyE implements spec.md §4.4's "find a valid e".
func searchAnyE(h *bsh.BSH, balls []geom.Ball, f *face, tol geom.Tolerance) (ball int, ts geom.TangentSphere, ok bool) {
	found := false
	h.Search(
		func(b geom.Ball) bool {
			if !f.hasMiddle {
				return true
			}
			return boundingOverlapsRegion(b, f.middle)
		},
		func(id int, b geom.Ball) (bool, bool) {
			if found {
				return false, true
			}
			cand, okc := f.acceptE(id, b, balls, tol)
			if okc {
				ball, ts, ok = id, cand, true
				found = true
				return true, true
			}
			return false, false
		},
	)
	return
}

// refineE mirrors refineD for e-candidates.
func refineE(h *bsh.BSH, balls []geom.Ball, f *face, tol geom.Tolerance, ball int, ts geom.TangentSphere) (int, geom.TangentSphere) {
	for {
		region := ts
		replacedBall, replacedTS := ball, ts
		replaced := false
		h.Search(
			func(b geom.Ball) bool { return boundingOverlapsRegion(b, region) },
			func(id int, b geom.Ball) (bool, bool) {
				if id == ball {
					return false, false
				}
				cand, okc := f.acceptE(id, b, balls, tol)
				if okc && cand.R < replacedTS.R-tol.Eps {
					replacedBall, replacedTS = id, cand
					replaced = true
					return true, true
				}
				return false, false
			},
		)
		if !replaced {
			return ball, ts
		}
		ball, ts = replacedBall, replacedTS
	}
}
