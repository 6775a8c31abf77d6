// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package area implements the L5 area summation of spec.md §6: integrating
// contact contours and solvent-accessible remainders, computed by package
// contact, into per-ball and pairwise scalar areas over a whole
// Triangulation.
package area

import (
	"sort"

	"github.com/cpmech/apollon/apollonius"
	"github.com/cpmech/apollon/contact"
	"github.com/cpmech/apollon/geom"
)

// PairContact is the contact area between two balls sharing at least one
// Voronoi vertex.
type PairContact struct {
	A, B int
	Area float64
}

// Summary bundles the per-ball solvent-accessible areas and the pairwise
// inter-ball contact areas for a whole triangulation.
type Summary struct {
	SolventArea []float64
	Contacts    []PairContact
}

// neighborsOf collects, for ball id, every other ball id sharing a Voronoi
// vertex with it (its Apollonius-diagram neighbors).
func neighborsOf(vertices []apollonius.VertexEntry, id int) []int {
	seen := map[int]bool{}
	for _, v := range vertices {
		if !v.Q.Contains(id) {
			continue
		}
		for _, bi := range v.Q {
			if bi != id && !seen[bi] {
				seen[bi] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for bi := range seen {
		out = append(out, bi)
	}
	sort.Ints(out)
	return out
}

// pairsOf collects every unordered pair of balls that co-occur in some
// Voronoi vertex, each pair reported once with the lower id first.
func pairsOf(vertices []apollonius.VertexEntry) [][2]int {
	seen := map[[2]int]bool{}
	var pairs [][2]int
	for _, v := range vertices {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				a, b := v.Q[i], v.Q[j]
				if a > b {
					a, b = b, a
				}
				key := [2]int{a, b}
				if !seen[key] {
					seen[key] = true
					pairs = append(pairs, key)
				}
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// Summarize computes the full area.Summary of a triangulation (spec.md §6
// entry points 3 and 4, integrated per spec.md §1's L5 layer): one
// solvent-accessible area per non-hidden ball, and one contact entry per
// Voronoi-adjacent pair of non-hidden balls whose total contour area is
// positive; pairs with zero area get no entry.
func Summarize(balls []geom.Ball, tri *apollonius.Triangulation, p contact.Params, sihDepth int) Summary {
	var out Summary
	out.SolventArea = make([]float64, len(balls))

	for id := range balls {
		if tri.Hidden[id] {
			continue
		}
		neighborIDs := neighborsOf(tri.Vertices, id)
		tris := contact.RemainderOf(balls, id, neighborIDs, p.Probe, sihDepth)
		area := 0.0
		for _, t := range tris {
			area += t.Area()
		}
		out.SolventArea[id] = area
	}

	for _, pr := range pairsOf(tri.Vertices) {
		aID, bID := pr[0], pr[1]
		if tri.Hidden[aID] || tri.Hidden[bID] {
			continue
		}
		around := contact.VerticesAroundPair(tri.Vertices, aID, bID)
		others := neighborsAroundPair(tri.Vertices, aID, bID)
		contours := contact.ContourOf(balls, aID, bID, others, around, p)
		total := 0.0
		for _, ct := range contours {
			_, a := contact.CentroidAndArea(ct, balls[aID], balls[bID])
			total += a
		}
		if total > 0 {
			out.Contacts = append(out.Contacts, PairContact{A: aID, B: bID, Area: total})
		}
	}

	return out
}

// neighborsAroundPair collects every ball id that shares a Voronoi vertex
// with both aID and bID's common quadruples, i.e. the third and fourth
// members of every quadruple containing the pair.
func neighborsAroundPair(vertices []apollonius.VertexEntry, aID, bID int) []int {
	seen := map[int]bool{}
	for _, v := range vertices {
		if !v.Q.Contains(aID) || !v.Q.Contains(bID) {
			continue
		}
		for _, bi := range v.Q {
			if bi != aID && bi != bID {
				seen[bi] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for bi := range seen {
		out = append(out, bi)
	}
	sort.Ints(out)
	return out
}
