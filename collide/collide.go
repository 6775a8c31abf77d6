// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collide specializes the BSH's generic traversal (spec.md §4.3)
// into the three collision queries the triangulator and contact layers need:
// every overlapping ball, the first overlapping ball, and the set of balls
// hidden inside another.
package collide

import (
	"github.com/cpmech/apollon/bsh"
	"github.com/cpmech/apollon/geom"
)

// AllOverlapping returns every input ball id whose bounding ball intersects
// query beyond tol or touches it within tol.
func AllOverlapping(h *bsh.BSH, query geom.Ball, tol geom.Tolerance) []int {
	return h.Search(
		func(b geom.Ball) bool { return tol.BallsOverlap(b, query) || touching(b, query, tol) },
		func(id int, b geom.Ball) (bool, bool) {
			return tol.BallsOverlap(b, query) || touching(b, query, tol), false
		},
	)
}

// AnyOverlapping reports whether any input ball overlaps or touches query, stopping at
// the first hit (the fast-exit specialization of spec.md §4.3).
func AnyOverlapping(h *bsh.BSH, query geom.Ball, tol geom.Tolerance) (int, bool) {
	got := h.Search(
		func(b geom.Ball) bool { return tol.BallsOverlap(b, query) || touching(b, query, tol) },
		func(id int, b geom.Ball) (bool, bool) {
			ok := tol.BallsOverlap(b, query) || touching(b, query, tol)
			return ok, ok
		},
	)
	if len(got) == 0 {
		return 0, false
	}
	return got[0], true
}

// HiddenBalls returns, for each ball index i, whether some other ball fully
// contains it (spec.md §4.3): |centers(a,b)| + r_b <= r_a. The search is
// O(N) over the BSH per ball; run once before triangulation.
func HiddenBalls(h *bsh.BSH, tol geom.Tolerance) []bool {
	n := len(h.Balls)
	hidden := make([]bool, n)
	for id, b := range h.Balls {
		h.Search(
			func(cand geom.Ball) bool { return cand.R >= b.R },
			func(cid int, cand geom.Ball) (bool, bool) {
				if cid == id {
					return false, false
				}
				if tol.BallContains(cand, b) {
					hidden[id] = true
					return true, true
				}
				return false, false
			},
		)
	}
	return hidden
}

func touching(a, b geom.Ball, tol geom.Tolerance) bool {
	return geom.CenterDistance(a, b) <= a.R+b.R+tol.Eps
}
