// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/apollon/geom"
)

func defaultParams() Params {
	return Params{Probe: 0.5, Step: 0.2, Projections: 3, Tol: geom.DefaultTolerance}
}

// TestContourTwoBallsCircleArea is Scenario D: two unit balls 1.8 apart,
// probe 0.5. The two probe-expanded spheres (radius 1.5 each) meet in a
// circle of radius sqrt(1.5^2-0.9^2)=1.2 in the mid-plane; the fan-triangle
// area of the sampled contour should approach pi*1.2^2.
func TestContourTwoBallsCircleArea(tst *testing.T) {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			tst.Fail()
		}
	}()
	chk.PrintTitle("ContourTwoBallsCircleArea")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(1.8, 0, 0, 1),
	}
	p := defaultParams()
	contours := ContourOf(balls, 0, 1, nil, nil, p)
	if len(contours) != 1 {
		tst.Fatalf("expected one contour, got %d", len(contours))
	}
	_, area := CentroidAndArea(contours[0], balls[0], balls[1])
	want := math.Pi * (1.5*1.5 - 0.9*0.9)
	// the fan-triangulated polygon underestimates the continuum circle by
	// O(1/n^2); a generous tolerance accounts for the sampling, not a
	// formula error.
	chk.Scalar(tst, "contour area", 0.05, area, want)
}

// TestContourIdempotentUnderResampling checks spec.md §8 property 6: running
// the construction twice on the same input produces the same area.
func TestContourIdempotentUnderResampling(tst *testing.T) {
	chk.PrintTitle("ContourIdempotentUnderResampling")
	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(1.8, 0, 0, 1),
	}
	p := defaultParams()
	c1 := ContourOf(balls, 0, 1, nil, nil, p)
	c2 := ContourOf(balls, 0, 1, nil, nil, p)
	if len(c1) != len(c2) {
		tst.Fatalf("contour count changed across runs: %d vs %d", len(c1), len(c2))
	}
	_, a1 := CentroidAndArea(c1[0], balls[0], balls[1])
	_, a2 := CentroidAndArea(c2[0], balls[0], balls[1])
	chk.Scalar(tst, "repeat-run area", 1e-12, a1, a2)
}

// TestContourThirdBallCutsIt verifies a third, closer neighbor actually
// trims the contour: the resulting area must be strictly smaller than the
// uncut two-ball circle.
func TestContourThirdBallCutsIt(tst *testing.T) {
	chk.PrintTitle("ContourThirdBallCutsIt")
	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(1.8, 0, 0, 1),
		geom.NewBall(0.9, 1.0, 0, 1),
	}
	p := defaultParams()
	uncut := ContourOf(balls[:2], 0, 1, nil, nil, p)
	_, areaUncut := CentroidAndArea(uncut[0], balls[0], balls[1])

	cut := ContourOf(balls, 0, 1, []int{2}, nil, p)
	if len(cut) == 0 {
		tst.Fatalf("expected at least one contour after cutting")
	}
	total := 0.0
	for _, ct := range cut {
		_, a := CentroidAndArea(ct, balls[0], balls[1])
		total += a
	}
	if total >= areaUncut {
		tst.Fatalf("expected cutting neighbor to reduce contour area: %v vs %v", total, areaUncut)
	}
}
