// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apollonius

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/apollon/geom"
)

// regularTetrahedron returns the four unit-radius balls of spec.md's
// Scenario A: edge length 3, one vertex at the origin.
func regularTetrahedron() []geom.Ball {
	return []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(3, 0, 0, 1),
		geom.NewBall(1.5, math.Sqrt(6.75), 0, 1),
		geom.NewBall(1.5, math.Sqrt(6.75)/3, math.Sqrt(9-9.0/3.0), 1),
	}
}

func TestTriangulateRegularTetrahedronSingleQuadruple(tst *testing.T) {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			tst.Fail()
		}
	}()
	chk.PrintTitle("TriangulateRegularTetrahedronSingleQuadruple")

	balls := regularTetrahedron()
	tri, err := Triangulate(balls, 5.0, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(tri.Quadruples) != 1 {
		tst.Fatalf("expected exactly one quadruple, got %d", len(tri.Quadruples))
	}

	validateTriangulation(tst, balls, tri)
}

func TestTriangulateHiddenBallExcluded(tst *testing.T) {
	chk.PrintTitle("TriangulateHiddenBallExcluded")
	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 2),
		geom.NewBall(0, 0, 0, 1),
	}
	tri, err := Triangulate(balls, 3.0, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !tri.Hidden[1] || tri.Hidden[0] {
		tst.Fatalf("expected ball 1 hidden, got hidden=%v", tri.Hidden)
	}
	if len(tri.Quadruples) != 0 {
		tst.Fatalf("expected no quadruples with one ball remaining, got %d", len(tri.Quadruples))
	}
}

func TestTriangulateCollinearBallsProduceNoQuadruples(tst *testing.T) {
	chk.PrintTitle("TriangulateCollinearBallsProduceNoQuadruples")
	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(3, 0, 0, 1),
		geom.NewBall(6, 0, 0, 1),
	}
	tri, err := Triangulate(balls, 5.0, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(tri.Quadruples) != 0 {
		tst.Fatalf("expected no quadruples among 3 collinear balls, got %d", len(tri.Quadruples))
	}
	for i := 0; i < 3; i++ {
		if !tri.Ignored[i] {
			tst.Fatalf("expected ball %d to be reported ignored", i)
		}
	}
}

// validateTriangulation checks the touching and emptiness invariants of
// spec.md §8, properties 1 and 2, and the vertex-graph symmetry of
// property 4.
func validateTriangulation(tst *testing.T, balls []geom.Ball, tri *Triangulation) {
	tol := geom.DefaultTolerance
	for _, v := range tri.Vertices {
		for _, bi := range v.Q {
			d := geom.Distance(v.TS.C, balls[bi].C)
			chk.Scalar(tst, "touching residual", 1e-6, d-(v.TS.R+balls[bi].R), 0)
		}
		for i, b := range balls {
			if v.Q.Contains(i) {
				continue
			}
			if tol.IntersectsBall(v.TS, b) {
				tst.Fatalf("tangent sphere for %v overlaps ball %d", v.Q, i)
			}
		}
	}
	for idx, v := range tri.Vertices {
		for k := 0; k < 4; k++ {
			nb := tri.Graph[idx][k]
			if nb == NoNeighbor {
				continue
			}
			t := v.Q.Exclude(k)
			found := false
			for kk := 0; kk < 4; kk++ {
				if tri.Graph[nb][kk] == idx && tri.Vertices[nb].Q.Exclude(kk) == t {
					found = true
				}
			}
			if !found {
				tst.Fatalf("graph asymmetry between vertices %d and %d", idx, nb)
			}
		}
	}
}
