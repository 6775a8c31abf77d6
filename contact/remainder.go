// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/apollon/geom"
)

// Triangle is one facet of a Remainder mesh (spec.md §3).
type Triangle struct {
	V0, V1, V2 geom.Point
}

// Area returns the Euclidean area of the triangle.
func (t Triangle) Area() float64 {
	return triangleArea(t.V0, t.V1, t.V2)
}

// RemainderOf computes the solvent-accessible cap of ball a (spec.md §4.6,
// §6 entry point 4): a subdivided icosahedron inscribed in the
// probe-expanded sphere of a, clipped against every neighbor's
// probe-expanded sphere.
func RemainderOf(balls []geom.Ball, aID int, neighborIDs []int, probe float64, sihDepth int) []Triangle {
	a := balls[aID].Expanded(probe)
	tris := subdivide(icosahedron(), utl.Imax(sihDepth, 0))
	for i, t := range tris {
		tris[i] = Triangle{
			V0: a.C.Add(t.V0.Scale(a.R)),
			V1: a.C.Add(t.V1.Scale(a.R)),
			V2: a.C.Add(t.V2.Scale(a.R)),
		}
	}

	for _, cID := range neighborIDs {
		if cID == aID {
			continue
		}
		c := balls[cID].Expanded(probe)
		var next []Triangle
		for _, t := range tris {
			next = append(next, clipTriangle(t, c)...)
		}
		tris = next
	}
	return tris
}

// icosahedron returns the 20 unit-sphere triangles of a regular icosahedron.
func icosahedron() []Triangle {
	t := (1 + math.Sqrt(5)) / 2
	raw := [][3]float64{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	verts := make([]geom.Point, len(raw))
	for i, r := range raw {
		p := geom.Point{X: r[0], Y: r[1], Z: r[2]}
		u, _ := p.Unit()
		verts[i] = u
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	tris := make([]Triangle, len(faces))
	for i, f := range faces {
		tris[i] = Triangle{V0: verts[f[0]], V1: verts[f[1]], V2: verts[f[2]]}
	}
	return tris
}

// subdivide splits every triangle into 4 at edge midpoints, normalized back
// onto the unit sphere, depth times.
func subdivide(tris []Triangle, depth int) []Triangle {
	for d := 0; d < depth; d++ {
		next := make([]Triangle, 0, len(tris)*4)
		for _, t := range tris {
			m01 := midUnit(t.V0, t.V1)
			m12 := midUnit(t.V1, t.V2)
			m20 := midUnit(t.V2, t.V0)
			next = append(next,
				Triangle{t.V0, m01, m20},
				Triangle{t.V1, m12, m01},
				Triangle{t.V2, m20, m12},
				Triangle{m01, m12, m20},
			)
		}
		tris = next
	}
	return tris
}

func midUnit(a, b geom.Point) geom.Point {
	m := a.Add(b).Scale(0.5)
	u, ok := m.Unit()
	if !ok {
		return a
	}
	return u
}

// clipTriangle implements spec.md §4.6's marks-sum splitting against
// sphere's inside/outside test.
func clipTriangle(t Triangle, sphere geom.Ball) []Triangle {
	in0 := geom.Distance(t.V0, sphere.C) < sphere.R
	in1 := geom.Distance(t.V1, sphere.C) < sphere.R
	in2 := geom.Distance(t.V2, sphere.C) < sphere.R
	count := boolCount(in0) + boolCount(in1) + boolCount(in2)

	switch count {
	case 3:
		return nil
	case 0:
		return []Triangle{t}
	case 2:
		// exactly one outside vertex
		out, in1v, in2v := rotateToSingleOut(t, in0, in1, in2, false)
		x1, ok1 := segmentSphereIntersect(out, in1v, sphere)
		x2, ok2 := segmentSphereIntersect(out, in2v, sphere)
		if !ok1 || !ok2 {
			return []Triangle{t}
		}
		return []Triangle{{out, x1, x2}}
	default: // count == 1
		in, out1, out2 := rotateToSingleOut(t, in0, in1, in2, true)
		y1, ok1 := segmentSphereIntersect(in, out1, sphere)
		y2, ok2 := segmentSphereIntersect(in, out2, sphere)
		if !ok1 || !ok2 {
			return []Triangle{t}
		}
		return []Triangle{
			{out1, out2, y2},
			{out1, y2, y1},
		}
	}
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

// rotateToSingleOut returns (singled-out vertex, other, other) where the
// "singled out" vertex is the one whose inside-mark differs from the other
// two; wantInside selects whether the singled-out vertex should be the
// inside one (count==1 case) or the outside one (count==2 case).
func rotateToSingleOut(t Triangle, in0, in1, in2, wantInside bool) (geom.Point, geom.Point, geom.Point) {
	verts := [3]geom.Point{t.V0, t.V1, t.V2}
	marks := [3]bool{in0, in1, in2}
	for i := 0; i < 3; i++ {
		if marks[i] == wantInside {
			return verts[i], verts[(i+1)%3], verts[(i+2)%3]
		}
	}
	return t.V0, t.V1, t.V2
}

// segmentSphereIntersect returns the point where segment p0p1 crosses
// sphere's surface, assuming exactly one endpoint lies inside.
func segmentSphereIntersect(p0, p1 geom.Point, sphere geom.Ball) (geom.Point, bool) {
	d := p1.Sub(p0)
	o := p0.Sub(sphere.C)
	a := d.Dot(d)
	if a < 1e-18 {
		return p0, false
	}
	b := 2 * o.Dot(d)
	c := o.Dot(o) - sphere.R*sphere.R
	disc := b*b - 4*a*c
	if disc < 0 {
		if disc > -1e-9 {
			disc = 0
		} else {
			return p0, false
		}
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	for _, t := range []float64{t1, t2} {
		if t >= -1e-9 && t <= 1+1e-9 {
			return p0.Add(d.Scale(t)), true
		}
	}
	return p0, false
}
