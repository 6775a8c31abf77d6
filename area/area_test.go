// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package area

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/apollon/apollonius"
	"github.com/cpmech/apollon/contact"
	"github.com/cpmech/apollon/geom"
)

// TestSummarizeIsolatedBallFullSphere is spec.md §8 property 7: an isolated
// ball (no other balls at all) gets the full probe-expanded sphere area as
// its solvent-accessible area, and no contacts.
func TestSummarizeIsolatedBallFullSphere(tst *testing.T) {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			tst.Fail()
		}
	}()
	chk.PrintTitle("SummarizeIsolatedBallFullSphere")

	balls := []geom.Ball{geom.NewBall(0, 0, 0, 1)}
	tri := &apollonius.Triangulation{
		Quadruples: map[geom.Quadruple][]geom.TangentSphere{},
		Hidden:     []bool{false},
	}
	p := contact.Params{Probe: 0.5, Step: 0.2, Projections: 3, Tol: geom.DefaultTolerance}
	s := Summarize(balls, tri, p, 4)

	want := 4 * math.Pi * 1.5 * 1.5
	chk.Scalar(tst, "isolated ball solvent area", want*0.01, s.SolventArea[0], want)
	if len(s.Contacts) != 0 {
		tst.Fatalf("expected no contacts for an isolated ball, got %d", len(s.Contacts))
	}
}

// TestSummarizeHiddenBallSkipped checks that a hidden ball contributes
// neither a solvent area nor any contact entries.
func TestSummarizeHiddenBallSkipped(tst *testing.T) {
	chk.PrintTitle("SummarizeHiddenBallSkipped")
	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 2),
		geom.NewBall(0, 0, 0, 1),
	}
	tri := &apollonius.Triangulation{
		Quadruples: map[geom.Quadruple][]geom.TangentSphere{},
		Hidden:     []bool{false, true},
	}
	p := contact.Params{Probe: 0.5, Step: 0.2, Projections: 3, Tol: geom.DefaultTolerance}
	s := Summarize(balls, tri, p, 3)
	if s.SolventArea[1] != 0 {
		tst.Fatalf("expected hidden ball to have zero recorded solvent area, got %v", s.SolventArea[1])
	}
}

// TestPairsOfDeduplicatesAcrossVertices checks the internal pair collector
// used to drive contact-area summation never reports the same unordered
// pair twice even when several vertices share it.
func TestPairsOfDeduplicatesAcrossVertices(tst *testing.T) {
	chk.PrintTitle("PairsOfDeduplicatesAcrossVertices")
	vertices := []apollonius.VertexEntry{
		{Q: geom.NewQuadruple(0, 1, 2, 3)},
		{Q: geom.NewQuadruple(0, 1, 2, 4)},
	}
	pairs := pairsOf(vertices)
	count := 0
	for _, pr := range pairs {
		if pr == [2]int{0, 1} {
			count++
		}
	}
	if count != 1 {
		tst.Fatalf("expected pair (0,1) exactly once, got %d", count)
	}
}
