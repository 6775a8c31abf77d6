// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contact implements the L4 constrained-contact construction of
// spec.md §4.5-§4.6: the per-pair contact contour on the separating
// hyperboloid of two balls, and the per-ball solvent-accessible remainder.
package contact

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/apollon/apollonius"
	"github.com/cpmech/apollon/geom"
)

// ContourPoint is one point of a contact contour: its 3-D position and the
// two balls it is closest to on either side along the contour (spec.md §3).
type ContourPoint struct {
	P                   geom.Point
	LeftBall, RightBall int
}

// Contour is an oriented, closed cyclic polygon on the (a,b) hyperboloid.
type Contour struct {
	Points []ContourPoint
}

// Params bundles the tunables of spec.md's contact_contour entry point.
type Params struct {
	Probe       float64
	Step        float64
	Projections int
	Tol         geom.Tolerance
}

// ContourOf computes the contact contour(s) between balls a and b, given the
// ids of their other Voronoi neighbors and the positions of the Voronoi
// vertices surrounding the pair (spec.md §6 entry point 3).
func ContourOf(balls []geom.Ball, aID, bID int, neighborIDs []int, vertexCentersAroundPair []geom.Point, p Params) []Contour {
	a, b := balls[aID], balls[bID]
	initial, ok := initialContour(a, b, aID, bID, vertexCentersAroundPair, p)
	if !ok {
		return nil
	}

	boundingCenter, boundingRadius := boundingSphereOf(vertexCentersAroundPair)

	order := append([]int(nil), neighborIDs...)
	sort.Slice(order, func(i, j int) bool {
		return geom.MinimalDistance(a, balls[order[i]]) < geom.MinimalDistance(a, balls[order[j]])
	})

	contours := []Contour{initial}
	for _, cID := range order {
		if cID == aID || cID == bID {
			continue
		}
		c := balls[cID]
		var next []Contour
		for _, ct := range contours {
			next = append(next, cutAgainst(ct, a, b, c, aID, bID, cID, p)...)
		}
		contours = next
	}

	contours = mendAll(contours, a, b, p)
	return filterByBoundingBall(contours, boundingCenter, boundingRadius, p.Step)
}

func awDistance(x geom.Point, ball geom.Ball) float64 {
	return geom.Distance(x, ball.C) - ball.R
}

// initialContour samples the intersection circle of the probe-expanded
// spheres of a,b (spec.md §4.5 step 1), falling back to sampling the
// bounding sphere of the surrounding vertex centers, projected onto the
// (a,b) hyperboloid, when no such circle exists.
func initialContour(a, b geom.Ball, aID, bID int, vertexCenters []geom.Point, p Params) (Contour, bool) {
	ea := a.Expanded(p.Probe)
	eb := b.Expanded(p.Probe)
	axis, ok := eb.C.Sub(ea.C).Unit()
	if !ok {
		return Contour{}, false
	}
	dist := geom.Distance(ea.C, eb.C)
	x := (dist*dist + ea.R*ea.R - eb.R*eb.R) / (2 * dist)
	r2 := ea.R*ea.R - x*x

	if r2 > 1e-12 {
		r := math.Sqrt(r2)
		center := ea.C.Add(axis.Scale(x))
		return sampleCircle(center, axis, r, aID, bID, p.Step), true
	}

	center, radius := boundingSphereOf(vertexCenters)
	if radius <= 0 {
		return Contour{}, false
	}
	ring := sampleCircle(center, axis, radius, aID, bID, p.Step)
	for i, pt := range ring.Points {
		if proj, ok := geom.HyperboloidProject(a, b, pt.P); ok {
			ring.Points[i].P = proj
		}
	}
	return ring, true
}

// sampleCircle uniformly samples a circle with the angular step of spec.md
// §4.5 step 1: max(min(360*h/(2*pi*r), 60), 5) degrees.
func sampleCircle(center, axis geom.Point, radius float64, aID, bID int, h float64) Contour {
	ex := geom.AnyNormal(axis)
	ey := axis.Cross(ex)
	stepDeg := math.Max(math.Min(360*h/(2*math.Pi*math.Max(radius, 1e-6)), 60), 5)
	n := int(math.Ceil(360 / stepDeg))
	if n < 6 {
		n = 6
	}
	angles := utl.LinSpace(0, 2*math.Pi, n+1) // n+1 points 0..2pi inclusive; drop the closing duplicate
	pts := make([]ContourPoint, n)
	for i := 0; i < n; i++ {
		dir := ex.Scale(math.Cos(angles[i])).Add(ey.Scale(math.Sin(angles[i])))
		pts[i] = ContourPoint{P: center.Add(dir.Scale(radius)), LeftBall: aID, RightBall: bID}
	}
	return Contour{Points: pts}
}

func boundingSphereOf(pts []geom.Point) (geom.Point, float64) {
	if len(pts) == 0 {
		return geom.Point{}, 0
	}
	var c geom.Point
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Scale(1.0 / float64(len(pts)))
	r := 0.0
	for _, p := range pts {
		if d := geom.Distance(c, p); d > r {
			r = d
		}
	}
	return c, r
}

// cutAgainst implements spec.md §4.5 step 2: mark outsiders relative to c,
// then all-out/none-out/some-out handling.
func cutAgainst(ct Contour, a, b, c geom.Ball, aID, bID, cID int, p Params) []Contour {
	n := len(ct.Points)
	if n == 0 {
		return nil
	}
	outsider := make([]bool, n)
	count := 0
	for i, pt := range ct.Points {
		if awDistance(pt.P, c) < awDistance(pt.P, a) {
			outsider[i] = true
			count++
		}
	}
	if count == n {
		return nil // all-out: contour is dead
	}
	if count == 0 {
		return []Contour{ct} // none-out
	}

	// some-out: walk the cyclic list and cut at every transition
	var cuts []cutT
	var kept []ContourPoint
	for i := 0; i < n; i++ {
		cur, next := i, (i+1)%n
		if outsider[cur] != outsider[next] {
			p0, p1 := ct.Points[cur].P, ct.Points[next].P
			if _, boundary, ok := geom.HyperboloidSegmentIntersect(a, c, p0, p1); ok {
				cuts = append(cuts, cutT{idx: len(kept), pt: ContourPoint{P: boundary, LeftBall: cID, RightBall: cID}})
			}
		}
		if !outsider[cur] {
			kept = append(kept, ct.Points[cur])
		}
	}

	if len(cuts)%2 != 0 {
		return nil // odd cut count: numerical failure, the contour is dropped
	}
	if len(cuts) == 0 {
		return []Contour{ct}
	}

	segments := splitAtCuts(kept, cuts)
	return segments
}

// splitAtCuts inserts boundary points and, when more than two cuts occur,
// picks the pairing with the smaller total Euclidean distance between
// consecutive cut points (spec.md §4.5 step 2d and §9's open question).
func splitAtCuts(kept []ContourPoint, cuts []cutT) []Contour {
	// simplest, always-valid case
	if len(cuts) == 2 {
		return []Contour{assembleLoop(kept, cuts[0], cuts[1])}
	}

	pairingA := pairBy(cuts, 0)
	pairingB := pairBy(cuts, 1)
	if totalDistance(pairingA) <= totalDistance(pairingB) {
		return assembleLoops(kept, pairingA)
	}
	return assembleLoops(kept, pairingB)
}

type cutT = struct {
	idx int
	pt  ContourPoint
}

func pairBy(cuts []cutT, offset int) [][2]cutT {
	var pairs [][2]cutT
	n := len(cuts)
	for i := offset; i+1 < n; i += 2 {
		pairs = append(pairs, [2]cutT{cuts[i], cuts[i+1]})
	}
	return pairs
}

func totalDistance(pairs [][2]cutT) float64 {
	total := 0.0
	for _, pr := range pairs {
		total += geom.Distance(pr[0].pt.P, pr[1].pt.P)
	}
	return total
}

func assembleLoop(kept []ContourPoint, c0, c1 cutT) Contour {
	lo, hi := c0.idx, c1.idx
	if lo > hi {
		lo, hi = hi, lo
		c0, c1 = c1, c0
	}
	var pts []ContourPoint
	pts = append(pts, c0.pt)
	pts = append(pts, kept[lo:hi]...)
	pts = append(pts, c1.pt)
	return Contour{Points: pts}
}

func assembleLoops(kept []ContourPoint, pairs [][2]cutT) []Contour {
	var out []Contour
	for _, pr := range pairs {
		out = append(out, assembleLoop(kept, pr[0], pr[1]))
	}
	return out
}

// mendAll densifies the arcs between adjacent cuts that share a cutting
// ball, snapping each interpolated point onto the (a,b) hyperboloid with
// projectThreeWay. The cut endpoints themselves are not moved, and no
// projection onto the (a,c) or (b,c) hyperboloids is done.
func mendAll(contours []Contour, a, b geom.Ball, p Params) []Contour {
	out := make([]Contour, len(contours))
	for ci, ct := range contours {
		out[ci] = mendOne(ct, a, b, p)
	}
	return out
}

func mendOne(ct Contour, a, b geom.Ball, p Params) Contour {
	n := len(ct.Points)
	if n < 2 {
		return ct
	}
	var out []ContourPoint
	for i := 0; i < n; i++ {
		cur, next := ct.Points[i], ct.Points[(i+1)%n]
		out = append(out, cur)
		if cur.LeftBall != cur.RightBall || next.LeftBall != next.RightBall || cur.RightBall != next.LeftBall {
			continue // not a matched cut-to-cut edge on the same cutting ball
		}
		dist := geom.Distance(cur.P, next.P)
		if dist <= p.Step {
			continue
		}
		segments := int(dist/p.Step+0.5) - 1
		for s := 1; s <= segments; s++ {
			t := float64(s) / float64(segments+1)
			mid := cur.P.Add(next.P.Sub(cur.P).Scale(t))
			out = append(out, ContourPoint{P: projectThreeWay(mid, a, b, cur.RightBall, p), LeftBall: cur.RightBall, RightBall: cur.RightBall})
		}
	}
	return Contour{Points: out}
}

// projectThreeWay snaps x onto the (a,b) hyperboloid p.Projections times.
// x is a linear interpolation between two cut points, so it lies on that
// surface beforehand only when a and b have equal radii. It does not
// project onto the (a,c) or (b,c) hyperboloids; cID is unused.
func projectThreeWay(x geom.Point, a, b geom.Ball, cID int, p Params) geom.Point {
	cur := x
	for i := 0; i < p.Projections; i++ {
		if proj, ok := geom.HyperboloidProject(a, b, cur); ok {
			cur = proj
		}
	}
	return cur
}

func filterByBoundingBall(contours []Contour, center geom.Point, radius float64, step float64) []Contour {
	if radius <= 0 {
		return contours
	}
	expanded := radius + step
	var out []Contour
	for _, ct := range contours {
		keep := false
		for _, pt := range ct.Points {
			if geom.Distance(pt.P, center) <= expanded {
				keep = true
				break
			}
		}
		if keep {
			out = append(out, ct)
		}
	}
	return out
}

// CentroidAndArea returns the hyperboloid-projected centroid and the fan
// area of a contour, per spec.md §4.5's area definition.
func CentroidAndArea(ct Contour, a, b geom.Ball) (geom.Point, float64) {
	n := len(ct.Points)
	if n < 3 {
		return geom.Point{}, 0
	}
	var raw geom.Point
	for _, pt := range ct.Points {
		raw = raw.Add(pt.P)
	}
	raw = raw.Scale(1.0 / float64(n))
	centroid := raw
	if proj, ok := geom.HyperboloidProject(a, b, raw); ok {
		centroid = proj
	}
	area := 0.0
	for i := 0; i < n; i++ {
		p0 := ct.Points[i].P
		p1 := ct.Points[(i+1)%n].P
		area += triangleArea(centroid, p0, p1)
	}
	return centroid, area
}

func triangleArea(a, b, c geom.Point) float64 {
	return 0.5 * b.Sub(a).Cross(c.Sub(a)).Norm()
}

// VerticesAroundPair extracts the Voronoi vertex centers surrounding the
// (aID,bID) pair from the triangulation's vertices vector -- any vertex
// whose quadruple contains both ids.
func VerticesAroundPair(vertices []apollonius.VertexEntry, aID, bID int) []geom.Point {
	var out []geom.Point
	for _, v := range vertices {
		if v.Q.Contains(aID) && v.Q.Contains(bID) {
			out = append(out, v.TS.C)
		}
	}
	return out
}
