// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/apollon/bsh"
	"github.com/cpmech/apollon/geom"
)

func TestAllOverlapping(tst *testing.T) {
	chk.PrintTitle("AllOverlapping")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(1.5, 0, 0, 1),
		geom.NewBall(10, 0, 0, 1),
	}
	h := bsh.New(balls, 2.0)

	got := AllOverlapping(h, balls[0], geom.DefaultTolerance)
	sort.Ints(got)
	chk.Ints(tst, "overlapping", got, []int{0, 1})
}

func TestAnyOverlappingFastExit(tst *testing.T) {
	chk.PrintTitle("AnyOverlappingFastExit")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(1.5, 0, 0, 1),
	}
	h := bsh.New(balls, 2.0)

	id, ok := AnyOverlapping(h, geom.NewBall(0, 0, 0, 1), geom.DefaultTolerance)
	if !ok {
		tst.Fatal("expected an overlap")
	}
	if id != 0 && id != 1 {
		tst.Fatalf("unexpected id %d", id)
	}
}

func TestHiddenBalls(tst *testing.T) {
	chk.PrintTitle("HiddenBalls")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 2),
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(10, 0, 0, 1),
	}
	h := bsh.New(balls, 3.0)

	hidden := HiddenBalls(h, geom.DefaultTolerance)
	chk.IntAssert(len(hidden), 3)
	if !hidden[1] {
		tst.Fatal("expected ball 1 to be hidden inside ball 0")
	}
	if hidden[0] || hidden[2] {
		tst.Fatal("expected only ball 1 to be hidden")
	}
}
