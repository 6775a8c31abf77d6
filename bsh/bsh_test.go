// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsh

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/apollon/geom"
)

func TestSearchFindsOverlapping(tst *testing.T) {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			tst.Fail()
		}
	}()
	chk.PrintTitle("SearchFindsOverlapping")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(10, 0, 0, 1),
		geom.NewBall(20, 0, 0, 1),
		geom.NewBall(0.5, 0, 0, 1),
	}
	h := New(balls, 2.0)

	query := geom.NewBall(0, 0, 0, 2)
	got := h.Search(
		func(b geom.Ball) bool { return geom.Distance(b.C, query.C) < b.R+query.R },
		func(id int, b geom.Ball) (bool, bool) {
			return geom.Distance(b.C, query.C) < b.R+query.R, false
		},
	)
	sort.Ints(got)
	chk.Ints(tst, "overlapping ids", got, []int{0, 3})
}

func TestIgnoreRemovesLeafFromSearch(tst *testing.T) {
	chk.PrintTitle("IgnoreRemovesLeafFromSearch")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(0.5, 0, 0, 0.5),
	}
	h := New(balls, 2.0)
	h.Ignore(1)

	got := h.Search(
		func(geom.Ball) bool { return true },
		func(id int, b geom.Ball) (bool, bool) { return true, false },
	)
	chk.Ints(tst, "surviving ids", got, []int{0})
}

func TestSearchStopsEarly(tst *testing.T) {
	chk.PrintTitle("SearchStopsEarly")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(1, 0, 0, 1),
		geom.NewBall(2, 0, 0, 1),
	}
	h := New(balls, 5.0)

	count := 0
	got := h.Search(
		func(geom.Ball) bool { return true },
		func(id int, b geom.Ball) (bool, bool) {
			count++
			return true, true
		},
	)
	if len(got) != 1 {
		tst.Fatalf("expected exactly one consumed id, got %v", got)
	}
}

func TestSingleBucketAtTopLevel(tst *testing.T) {
	chk.PrintTitle("SingleBucketAtTopLevel")

	balls := []geom.Ball{
		geom.NewBall(0, 0, 0, 1),
		geom.NewBall(100, 100, 100, 1),
	}
	h := New(balls, 1.0)
	top := h.Levels[len(h.Levels)-1]
	if len(top) != 1 {
		tst.Fatalf("expected the top level to collapse to one bucket, got %d", len(top))
	}
}
