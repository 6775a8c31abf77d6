// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apollonius

import (
	"sort"

	"github.com/cpmech/apollon/geom"
)

// seedNeighborhoodSize bounds how many nearby balls are combined into
// candidate quadruples during seeding, keeping the O(n^4) scan cheap.
const seedNeighborhoodSize = 20

// seedFirstFace implements spec.md §4.4's "find_first_faces": scan balls by
// distance from an arbitrary anchor (the first non-hidden, non-ignored ball)
// and try quadruples until one has an empty tangent sphere.
func seedFirstFace(balls []geom.Ball, excluded []bool, tol geom.Tolerance, allowTwo bool) (geom.Quadruple, geom.TangentSphere, bool) {
	anchor := -1
	for i, ex := range excluded {
		if !ex {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return geom.Quadruple{}, geom.TangentSphere{}, false
	}
	return seedFirstFaceFromAnchor(balls, excluded, tol, allowTwo, anchor)
}

// seedFirstFaceFromAnchor is seedFirstFace with a caller-chosen anchor, used
// both for the initial seed and for the restart-from-ignored-ball step.
func seedFirstFaceFromAnchor(balls []geom.Ball, excluded []bool, tol geom.Tolerance, allowTwo bool, anchor int) (geom.Quadruple, geom.TangentSphere, bool) {
	type distID struct {
		id int
		d  float64
	}
	var near []distID
	for i, b := range balls {
		if excluded[i] || i == anchor {
			continue
		}
		near = append(near, distID{i, geom.CenterDistance(b, balls[anchor])})
	}
	sort.Slice(near, func(i, j int) bool { return near[i].d < near[j].d })
	if len(near) > seedNeighborhoodSize-1 {
		near = near[:seedNeighborhoodSize-1]
	}
	ids := make([]int, 0, len(near)+1)
	ids = append(ids, anchor)
	for _, n := range near {
		ids = append(ids, n.id)
	}

	n := len(ids)
	var fallbackQ geom.Quadruple
	var fallbackTS geom.TangentSphere
	haveFallback := false
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					q := geom.NewQuadruple(ids[i], ids[j], ids[k], ids[l])
					cands := geom.Tangent4(balls[q[0]], balls[q[1]], balls[q[2]], balls[q[3]], tol)
					if len(cands) == 0 {
						continue
					}
					degenerate := len(cands) == 2
					for _, ts := range cands {
						if !isEmptyAgainst(ts, balls, excluded, q, tol) {
							continue
						}
						if degenerate && !allowTwo {
							if !haveFallback {
								fallbackQ, fallbackTS, haveFallback = q, ts, true
							}
							continue
						}
						return q, ts, true
					}
				}
			}
		}
	}
	if allowTwo && haveFallback {
		return fallbackQ, fallbackTS, true
	}
	return geom.Quadruple{}, geom.TangentSphere{}, false
}

func isEmptyAgainst(ts geom.TangentSphere, balls []geom.Ball, excluded []bool, q geom.Quadruple, tol geom.Tolerance) bool {
	for i, b := range balls {
		if excluded[i] || q.Contains(i) {
			continue
		}
		if tol.IntersectsBall(ts, b) {
			return false
		}
	}
	return true
}
