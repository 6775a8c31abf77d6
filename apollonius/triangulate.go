// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package apollonius implements the Apollonius triangulator (spec.md §4.4):
// the face-growing enumeration of every empty tangent sphere of a quadruple
// of input balls, built on the BSH-accelerated collision search of bsh and
// collide.
package apollonius

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/apollon/bsh"
	"github.com/cpmech/apollon/collide"
	"github.com/cpmech/apollon/geom"
)

// NoNeighbor is the sentinel vertex id marking the outer (unbounded) face in
// the vertices graph.
const NoNeighbor = -1

// Verbose gates the restart/seed-failure diagnostic tracing, mirroring
// fem.FEM.Verbose.
var Verbose = false

// VertexEntry is one Voronoi vertex: the quadruple and the tangent sphere
// that witnesses it.
type VertexEntry struct {
	Q  geom.Quadruple
	TS geom.TangentSphere
}

// Triangulation is the canonical output of Triangulate (spec.md §3).
type Triangulation struct {
	Quadruples map[geom.Quadruple][]geom.TangentSphere
	Vertices   []VertexEntry
	Graph      [][4]int
	Hidden     []bool
	Ignored    []bool
}

// driver holds the mutable state of one Triangulate call: the stack of
// pending faces, the in-flight/ done triple bookkeeping, and the emitted
// quadruples map.
type driver struct {
	balls     []geom.Ball
	tree      *bsh.BSH
	tol       geom.Tolerance
	minRadius float64

	quadruples   map[geom.Quadruple][]geom.TangentSphere
	faceIndex    map[geom.Triple]*face
	done         map[geom.Triple]bool
	stack        []*face
	participates []bool
}

// Triangulate is the core's primary entry point (spec.md §6, entry point 1),
// with ε fixed at geom.DefaultTolerance and two-tangent quadruples disabled
// unless seeding requires them.
func Triangulate(balls []geom.Ball, r0 float64, includeSurplus bool) (*Triangulation, error) {
	return TriangulateWithOptions(balls, r0, includeSurplus, false, geom.DefaultTolerance)
}

// TriangulateWithOptions is Triangulate with explicit control over the
// two-tangent-quadruple flag and the numeric tolerance (spec.md §4.4's
// "allow_two_tangents").
func TriangulateWithOptions(balls []geom.Ball, r0 float64, includeSurplus, allowTwoTangents bool, tol geom.Tolerance) (*Triangulation, error) {
	tree := bsh.New(balls, r0)
	hidden := collide.HiddenBalls(tree, tol)
	for id, isHidden := range hidden {
		if isHidden {
			tree.Ignore(id)
		}
	}

	minRadius := math.Inf(1)
	for i, b := range balls {
		if hidden[i] {
			continue
		}
		if b.R < minRadius {
			minRadius = b.R
		}
	}

	d := &driver{
		balls:        balls,
		tree:         tree,
		tol:          tol,
		minRadius:    minRadius,
		quadruples:   map[geom.Quadruple][]geom.TangentSphere{},
		faceIndex:    map[geom.Triple]*face{},
		done:         map[geom.Triple]bool{},
		participates: make([]bool, len(balls)),
	}

	if len(balls) >= 4 {
		if !d.seedAndRun(hidden, allowTwoTangents) {
			if allowTwoTangents || !d.seedAndRun(hidden, true) {
				if Verbose {
					io.Pfred("apollonius: seed failure among %d balls\n", len(balls))
				}
				return nil, chk.Err("apollonius: could not seed triangulation from any starting anchor")
			}
		}

		var restartIDs []int
		for i := range balls {
			if hidden[i] || d.participates[i] {
				continue
			}
			restartIDs = append(restartIDs, i)
		}
		for _, i := range utl.IntUnique(restartIDs) {
			if d.participates[i] {
				continue // a previous restart in this loop may have already reached it
			}
			if Verbose {
				io.Pfcyan("apollonius: restarting from disconnected ball %d\n", i)
			}
			d.restartFrom(i, hidden)
		}
	}

	if includeSurplus {
		d.surplusPass()
	}

	return d.finish(hidden), nil
}

func (d *driver) seedAndRun(excluded []bool, allowTwo bool) bool {
	q, ts, ok := seedFirstFace(d.balls, excluded, d.tol, allowTwo)
	if !ok {
		return false
	}
	d.seedQuadruple(q, ts)
	d.runStack()
	return true
}

func (d *driver) restartFrom(anchor int, excluded []bool) {
	q, ts, ok := seedFirstFaceFromAnchor(d.balls, excluded, d.tol, true, anchor)
	if !ok {
		return
	}
	d.seedQuadruple(q, ts)
	d.runStack()
}

func (d *driver) seedQuadruple(q geom.Quadruple, ts geom.TangentSphere) {
	d.emitQuadruple(q, ts)
	for i := 0; i < 4; i++ {
		d.mergeOrPush(q.Exclude(i), q[i], ts)
	}
}

func (d *driver) mergeOrPush(triple geom.Triple, ballID int, ts geom.TangentSphere) {
	if d.done[triple] {
		return
	}
	if f, ok := d.faceIndex[triple]; ok {
		d.assignToFace(f, ballID, ts)
		return
	}
	f := newFace(triple, d.balls, d.minRadius)
	d.assignToFace(f, ballID, ts)
	d.faceIndex[triple] = f
	d.stack = append(d.stack, f)
}

func (d *driver) assignToFace(f *face, ballID int, ts geom.TangentSphere) {
	if f.canHaveD {
		k := 0
		if f.halfspaceOfCentral(ts.C, 0, d.tol) < 0 {
			k = 1
		}
		if f.d[k] == nil {
			f.d[k] = &dRecord{Ball: ballID, TS: ts}
		}
		return
	}
	for _, e := range f.e {
		if e.Ball == ballID {
			return
		}
	}
	f.e = append(f.e, eRecord{Ball: ballID, TS: ts})
}

func (d *driver) runStack() {
	for len(d.stack) > 0 {
		f := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		if d.done[f.Triple] {
			continue
		}
		d.processFace(f)
		d.done[f.Triple] = true
		delete(d.faceIndex, f.Triple)
	}
}

func (d *driver) processFace(f *face) {
	for k := 0; k < 2; k++ {
		if !f.canHaveD {
			break
		}
		ball, ts, have := 0, geom.TangentSphere{}, false
		if f.d[k] != nil {
			ball, ts, have = f.d[k].Ball, f.d[k].TS, true
		}
		if !have {
			var constraint *geom.TangentSphere
			if f.d[1-k] != nil {
				constraint = &f.d[1-k].TS
			}
			if constraint != nil {
				if b, t, ok := searchAnyD(d.tree, d.balls, f, k, d.tol, constraint); ok {
					ball, ts, have = b, t, true
				}
			}
			if !have {
				if b, t, ok := searchAnyD(d.tree, d.balls, f, k, d.tol, nil); ok {
					ball, ts, have = b, t, true
				}
			}
		}
		if !have {
			continue
		}
		ball, ts = refineD(d.tree, d.balls, f, k, d.tol, ball, ts)
		f.d[k] = &dRecord{Ball: ball, TS: ts}
		d.recordAndPreface(f, ball, ts)
	}

	if f.d[0] == nil && f.d[1] == nil && f.canHaveE {
		ball, ts, have := 0, geom.TangentSphere{}, false
		if len(f.e) > 0 {
			ball, ts, have = f.e[0].Ball, f.e[0].TS, true
		}
		if !have {
			if b, t, ok := searchAnyE(d.tree, d.balls, f, d.tol); ok {
				ball, ts, have = b, t, true
			}
		}
		if have {
			ball, ts = refineE(d.tree, d.balls, f, d.tol, ball, ts)
			d.recordAndPreface(f, ball, ts)
		}
	}
}

// recordAndPreface emits the quadruple formed by f and ballID, then pushes
// the three prefaces obtained by excluding each of f's three members in turn
// and substituting ballID (spec.md §4.4 step 4).
func (d *driver) recordAndPreface(f *face, ballID int, ts geom.TangentSphere) {
	q := geom.QuadrupleFromTriple(f.Triple, ballID)
	d.emitQuadruple(q, ts)
	for _, member := range [3]int{f.Triple[0], f.Triple[1], f.Triple[2]} {
		d.mergeOrPush(q.Exclude(q.IndexOf(member)), member, ts)
	}
}

func (d *driver) emitQuadruple(q geom.Quadruple, ts geom.TangentSphere) {
	if q.HasRepetitions() {
		utl.Panic("emitQuadruple: repeated index in quadruple %v: algorithm invariant broken", q)
	}
	list := d.quadruples[q]
	for _, existing := range list {
		if d.tol.EqualTangentSpheres(existing, ts) {
			return
		}
	}
	if len(list) < 2 {
		d.quadruples[q] = append(list, ts)
	}
	for _, id := range q {
		d.participates[id] = true
	}
}

// surplusPass implements spec.md §4.4 step 6: for every recorded tangent
// sphere, look for co-spherical balls beyond the original four and add the
// missing quadruples they complete.
func (d *driver) surplusPass() {
	type work struct {
		q  geom.Quadruple
		ts geom.TangentSphere
	}
	var todo []work
	for q, list := range d.quadruples {
		for _, ts := range list {
			todo = append(todo, work{q, ts})
		}
	}
	inflation := 3 * d.tol.Eps
	for _, w := range todo {
		touching := d.tree.Search(
			func(b geom.Ball) bool { return boundingOverlapsRegion(b, geom.TangentSphere{C: w.ts.C, R: w.ts.R + inflation}) },
			func(id int, b geom.Ball) (bool, bool) {
				dist := geom.Distance(b.C, w.ts.C)
				return math.Abs(dist-(b.R+w.ts.R)) <= inflation, false
			},
		)
		if len(touching) <= 4 {
			continue
		}
		sort.Ints(touching)
		combos := combinations4(touching)
		for _, c := range combos {
			nq := geom.NewQuadruple(c[0], c[1], c[2], c[3])
			d.emitQuadruple(nq, w.ts)
		}
	}
}

func combinations4(ids []int) [][4]int {
	var out [][4]int
	n := len(ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					out = append(out, [4]int{ids[i], ids[j], ids[k], ids[l]})
				}
			}
		}
	}
	return out
}

// finish builds the sorted vertex vector, vertex-vertex graph, and the
// ignored-ball set from the driver's accumulated quadruples map.
func (d *driver) finish(hidden []bool) *Triangulation {
	keys := make([]geom.Quadruple, 0, len(d.quadruples))
	for q := range d.quadruples {
		keys = append(keys, q)
	}
	sort.Slice(keys, func(i, j int) bool { return quadrupleLess(keys[i], keys[j]) })

	var vertices []VertexEntry
	for _, q := range keys {
		for _, ts := range d.quadruples[q] {
			vertices = append(vertices, VertexEntry{Q: q, TS: ts})
		}
	}

	occurrences := map[geom.Triple][]int{}
	for idx, v := range vertices {
		for k := 0; k < 4; k++ {
			t := v.Q.Exclude(k)
			occurrences[t] = append(occurrences[t], idx)
		}
	}

	graph := make([][4]int, len(vertices))
	for idx, v := range vertices {
		for k := 0; k < 4; k++ {
			t := v.Q.Exclude(k)
			graph[idx][k] = NoNeighbor
			for _, other := range occurrences[t] {
				if other != idx {
					graph[idx][k] = other
					break
				}
			}
		}
	}

	ignored := make([]bool, len(d.balls))
	for i := range d.balls {
		ignored[i] = !hidden[i] && !d.participates[i]
	}

	return &Triangulation{
		Quadruples: d.quadruples,
		Vertices:   vertices,
		Graph:      graph,
		Hidden:     hidden,
		Ignored:    ignored,
	}
}

func quadrupleLess(a, b geom.Quadruple) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// VerticesVector implements spec.md §6 entry point 2: the positional
// flattening of a Triangulation's quadruples map.
func VerticesVector(t *Triangulation) []VertexEntry {
	return t.Vertices
}
