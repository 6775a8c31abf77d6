// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bsh implements the bounding-sphere hierarchy (BSH): a multilevel
// bucket structure of bounding balls over a fixed set of input balls, plus a
// generic node/leaf-predicate depth-first traversal used by the collision
// search and triangulator layers above it.
package bsh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/apollon/geom"
)

// node is one bounding ball of the hierarchy at some level k>0. Children
// indexes into the previous level's nodes slice (or, for level 1, directly
// into the input balls).
type node struct {
	Bounding geom.Ball
	Children []int
}

// BSH is the forest-like multilevel bucket structure of spec.md §4.2. Level 0
// is implicit: the input balls themselves. Levels[0] holds the level-1
// buckets grouping the input balls, Levels[1] the level-2 buckets grouping
// Levels[0], and so on up to a single root bucket.
type BSH struct {
	Balls   []geom.Ball
	Levels  [][]node
	R0      float64
	ignored []bool

	// locality index over the input ball centers, built with Init/Append.
	// Nothing in this package reads it back, and the hierarchy's own
	// per-level grouping below does not depend on it.
	centerBins gm.Bins
}

// New builds a BSH over balls using r0 as the level-1 bucket edge length
// (level k uses r0 * 2^(k-1), doubling until a level collapses to one
// bucket). r0 must be positive.
func New(balls []geom.Ball, r0 float64) *BSH {
	if r0 <= 0 {
		chk.Panic("bsh: R0 must be positive, got %v", r0)
	}
	h := &BSH{
		Balls:   balls,
		R0:      r0,
		ignored: make([]bool, len(balls)),
	}
	h.initCenterBins()
	h.buildLevels()
	return h
}

func (h *BSH) initCenterBins() {
	if len(h.Balls) == 0 {
		return
	}
	xi := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	xf := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, b := range h.Balls {
		c := [3]float64{b.C.X, b.C.Y, b.C.Z}
		for d := 0; d < 3; d++ {
			if c[d] < xi[d] {
				xi[d] = c[d]
			}
			if c[d] > xf[d] {
				xf[d] = c[d]
			}
		}
	}
	for d := 0; d < 3; d++ {
		if xf[d]-xi[d] < h.R0 {
			xf[d] = xi[d] + h.R0
		}
	}
	ndiv := 20
	if err := h.centerBins.Init(xi, xf, ndiv); err != nil {
		chk.Panic("bsh: cannot initialise center bins: %v", err)
	}
	for id, b := range h.Balls {
		if err := h.centerBins.Append([]float64{b.C.X, b.C.Y, b.C.Z}, id); err != nil {
			chk.Panic("bsh: cannot append ball %d to center bins: %v", id, err)
		}
	}
}

// gridKey is the integer bucket coordinate of a center at edge length edge.
type gridKey struct{ i, j, k int }

func keyOf(c geom.Point, edge float64) gridKey {
	return gridKey{
		i: int(math.Floor(c.X / edge)),
		j: int(math.Floor(c.Y / edge)),
		k: int(math.Floor(c.Z / edge)),
	}
}

// buildLevels groups balls (then buckets) into progressively coarser
// buckets, each level's bounding ball set from its members' centroid and the
// farthest member surface (spec.md §4.2), stopping once a level has a single
// bucket.
func (h *BSH) buildLevels() {
	if len(h.Balls) == 0 {
		return
	}
	// level 1: group input balls directly
	level := h.groupLevel(func(i int) geom.Ball { return h.Balls[i] }, len(h.Balls), h.R0)
	h.Levels = append(h.Levels, level)

	edge := h.R0
	for len(level) > 1 {
		edge *= 2
		prev := level
		level = h.groupLevel(func(i int) geom.Ball { return prev[i].Bounding }, len(prev), edge)
		h.Levels = append(h.Levels, level)
	}
}

func (h *BSH) groupLevel(boundingOf func(i int) geom.Ball, n int, edge float64) []node {
	// keys are taken relative to the lowest corner of this level's centers,
	// so once edge exceeds their extent every center shares one bucket
	lo := boundingOf(0).C
	for i := 1; i < n; i++ {
		c := boundingOf(i).C
		lo = geom.Point{X: math.Min(lo.X, c.X), Y: math.Min(lo.Y, c.Y), Z: math.Min(lo.Z, c.Z)}
	}
	groups := map[gridKey][]int{}
	order := []gridKey{}
	for i := 0; i < n; i++ {
		k := keyOf(boundingOf(i).C.Sub(lo), edge)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}
	nodes := make([]node, 0, len(order))
	for _, k := range order {
		children := groups[k]
		nodes = append(nodes, node{Bounding: boundingBallOf(children, boundingOf), Children: children})
	}
	return nodes
}

// boundingBallOf returns the smallest ball (centroid center, max-reach
// radius) enclosing the members' bounding balls.
func boundingBallOf(members []int, boundingOf func(i int) geom.Ball) geom.Ball {
	var centroid geom.Point
	for _, m := range members {
		centroid = centroid.Add(boundingOf(m).C)
	}
	centroid = centroid.Scale(1.0 / float64(len(members)))
	radius := 0.0
	for _, m := range members {
		b := boundingOf(m)
		r := geom.Distance(centroid, b.C) + b.R
		if r > radius {
			radius = r
		}
	}
	return geom.Ball{C: centroid, R: radius}
}

// Ignore marks a leaf (input ball id) inert: it is skipped by every future
// traversal. Used once, at start, to exclude hidden balls (spec.md §4.3).
func (h *BSH) Ignore(id int) {
	h.ignored[id] = true
}

// IsIgnored reports whether id has been marked inert.
func (h *BSH) IsIgnored(id int) bool {
	return h.ignored[id]
}

// NodeChecker is invoked with every bounding ball visited during a search;
// returning false prunes that subtree.
type NodeChecker func(b geom.Ball) bool

// LeafChecker is invoked with every non-ignored leaf (input ball id and
// ball). consumed records the id in the result; stop ends the search
// immediately after this leaf.
type LeafChecker func(id int, b geom.Ball) (consumed, stop bool)

// Search performs the generic depth-first traversal of spec.md §4.2: prune
// subtrees with nodeOK, visit leaves with leafCheck, and return the ids the
// leaf checker consumed, in visiting order.
func (h *BSH) Search(nodeOK NodeChecker, leafCheck LeafChecker) []int {
	var out []int
	if len(h.Levels) == 0 {
		for id, b := range h.Balls {
			if h.ignored[id] {
				continue
			}
			if !nodeOK(b) {
				continue
			}
			consumed, stop := leafCheck(id, b)
			if consumed {
				out = append(out, id)
			}
			if stop {
				return out
			}
		}
		return out
	}
	top := len(h.Levels) - 1
	for i := range h.Levels[top] {
		if h.searchLevel(top, i, nodeOK, leafCheck, &out) {
			break
		}
	}
	return out
}

// searchLevel visits node i of h.Levels[level] (or, when level<0, ball i
// directly). It returns true when the search should stop entirely.
func (h *BSH) searchLevel(level, i int, nodeOK NodeChecker, leafCheck LeafChecker, out *[]int) bool {
	if level < 0 {
		id := i
		if h.ignored[id] {
			return false
		}
		b := h.Balls[id]
		if !nodeOK(b) {
			return false
		}
		consumed, stop := leafCheck(id, b)
		if consumed {
			*out = append(*out, id)
		}
		return stop
	}
	n := h.Levels[level][i]
	if !nodeOK(n.Bounding) {
		return false
	}
	for _, child := range n.Children {
		if h.searchLevel(level-1, child, nodeOK, leafCheck, out) {
			return true
		}
	}
	return false
}
