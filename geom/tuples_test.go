// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestTuplesOrdering(tst *testing.T) {
	chk.PrintTitle("TuplesOrdering")

	p := NewPair(5, 2)
	if p != (Pair{2, 5}) {
		tst.Fatalf("bad pair ordering: %v", p)
	}

	t := NewTriple(9, 1, 4)
	if t != (Triple{1, 4, 9}) {
		tst.Fatalf("bad triple ordering: %v", t)
	}

	q := NewQuadruple(3, 1, 4, 1)
	if q != (Quadruple{1, 1, 3, 4}) {
		tst.Fatalf("bad quadruple ordering: %v", q)
	}
	if !q.HasRepetitions() {
		tst.Fatal("expected repetition to be detected")
	}
}

func TestQuadrupleMapKey(tst *testing.T) {
	chk.PrintTitle("QuadrupleMapKey")
	m := map[Quadruple]int{}
	m[NewQuadruple(1, 2, 3, 4)] = 7
	if v, ok := m[NewQuadruple(4, 3, 2, 1)]; !ok || v != 7 {
		tst.Fatal("quadruple must be usable as a stable map key regardless of input order")
	}
}

func TestQuadrupleExclude(tst *testing.T) {
	chk.PrintTitle("QuadrupleExclude")
	q := NewQuadruple(1, 2, 3, 4)
	got := q.Exclude(q.IndexOf(3))
	if got != (Triple{1, 2, 4}) {
		tst.Fatalf("bad exclude: %v", got)
	}
}

func TestTripleExclude(tst *testing.T) {
	chk.PrintTitle("TripleExclude")
	t := NewTriple(1, 2, 3)
	got := t.Exclude(1)
	if got != (Pair{1, 3}) {
		tst.Fatalf("bad exclude: %v", got)
	}
}
